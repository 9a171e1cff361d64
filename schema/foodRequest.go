package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FoodRequestCollection = "foodRequests"
)

// FoodRequest - a user's interest in a listing. FoodID refers to a listing
// by value and may dangle after the listing is removed.
type FoodRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FoodID      string             `bson:"foodId" json:"foodId" binding:"required,objectid"`
	UID         string             `bson:"uid" json:"uid"`
	RequestedAt time.Time          `bson:"requestedAt" json:"requestedAt"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

// JoinedFoodRequest - a request along with the listing it refers to.
// FoodData is nil when the listing could not be resolved.
type JoinedFoodRequest struct {
	FoodData    *Food       `json:"foodData"`
	RequestData FoodRequest `json:"requestData"`
}
