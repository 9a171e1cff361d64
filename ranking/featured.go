package ranking

import (
	"bytes"
	"sort"

	"github.com/sharecare/share-care-api/schema"
)

// FeaturedSize is the fixed number of listings on the featured surface
const FeaturedSize = 6

// Featured orders foods by numeric quantity descending, breaking ties by
// descending id, and keeps at most FeaturedSize of them. The input slice is
// not modified.
func Featured(foods []schema.Food) []schema.Food {
	return TopByQuantity(foods, FeaturedSize)
}

// TopByQuantity is Featured with an arbitrary limit
func TopByQuantity(foods []schema.Food, limit int) []schema.Food {
	type ranked struct {
		food     schema.Food
		quantity int64
	}

	items := make([]ranked, len(foods))
	for i, f := range foods {
		items[i] = ranked{food: f, quantity: ParseQuantity(f.Quantity)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].quantity != items[j].quantity {
			return items[i].quantity > items[j].quantity
		}
		return bytes.Compare(items[i].food.ID[:], items[j].food.ID[:]) > 0
	})

	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}

	result := make([]schema.Food, len(items))
	for i, item := range items {
		result[i] = item.food
	}
	return result
}
