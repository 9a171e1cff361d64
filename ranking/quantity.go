package ranking

import (
	"strconv"
	"strings"
)

// ParseQuantity converts the textual quantity of a listing into an integer.
// Surrounding spaces are ignored. Anything that is not a non-negative base-10
// integer, including values that overflow, ranks as 0.
func ParseQuantity(q string) int64 {
	n, ok := ParseQuantityStrict(q)
	if !ok {
		return 0
	}
	return n
}

// ParseQuantityStrict is ParseQuantity which also reports whether the input
// was a valid quantity
func ParseQuantityStrict(q string) (int64, bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(q, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}
