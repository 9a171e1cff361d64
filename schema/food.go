package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FoodCollection = "foods"
)

const (
	FoodAvailable   = "Available"
	FoodRequested   = "Requested"
	FoodUnavailable = "Unavailable"
)

// Food - a food-sharing listing
type Food struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UID            string             `bson:"uid" json:"uid"`
	Status         string             `bson:"status" json:"status" binding:"omitempty,oneof=Available Requested Unavailable"`
	Quantity       string             `bson:"quantity" json:"quantity" binding:"required,quantity"`
	ExpireDate     time.Time          `bson:"expireDate" json:"expireDate" binding:"required"`
	FoodName       string             `bson:"foodName" json:"foodName" binding:"required"`
	FoodImage      string             `bson:"foodImage,omitempty" json:"foodImage,omitempty"`
	PickupLocation string             `bson:"pickupLocation,omitempty" json:"pickupLocation,omitempty"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	DonorName      string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail     string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty" binding:"omitempty,email"`
	DonorImage     string             `bson:"donorImage,omitempty" json:"donorImage,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// FoodUpdate - fields of a listing which could be replaced by its owner.
// Nil fields are left untouched.
type FoodUpdate struct {
	Status         *string    `bson:"status,omitempty" json:"status" binding:"omitempty,oneof=Available Requested Unavailable"`
	Quantity       *string    `bson:"quantity,omitempty" json:"quantity" binding:"omitempty,quantity"`
	ExpireDate     *time.Time `bson:"expireDate,omitempty" json:"expireDate"`
	FoodName       *string    `bson:"foodName,omitempty" json:"foodName"`
	FoodImage      *string    `bson:"foodImage,omitempty" json:"foodImage"`
	PickupLocation *string    `bson:"pickupLocation,omitempty" json:"pickupLocation"`
	Notes          *string    `bson:"notes,omitempty" json:"notes"`
	DonorName      *string    `bson:"donorName,omitempty" json:"donorName"`
	DonorEmail     *string    `bson:"donorEmail,omitempty" json:"donorEmail" binding:"omitempty,email"`
	DonorImage     *string    `bson:"donorImage,omitempty" json:"donorImage"`
}

// Empty reports whether the update carries no field at all
func (u FoodUpdate) Empty() bool {
	return u.Status == nil && u.Quantity == nil && u.ExpireDate == nil &&
		u.FoodName == nil && u.FoodImage == nil && u.PickupLocation == nil &&
		u.Notes == nil && u.DonorName == nil && u.DonorEmail == nil && u.DonorImage == nil
}

// FoodFilter - supported filters for listing queries
type FoodFilter struct {
	UID    string `form:"uid"`
	Status string `form:"status" binding:"omitempty,oneof=Available Requested Unavailable"`
}

// UpdateResult - acknowledgement of a listing update
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
