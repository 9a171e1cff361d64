package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sharecare/share-care-api/ranking"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("quantity", validQuantity)
		_ = v.RegisterValidation("objectid", validObjectID)
	}
}

// validQuantity accepts a non-negative integer written in decimal
func validQuantity(fl validator.FieldLevel) bool {
	_, ok := ranking.ParseQuantityStrict(fl.Field().String())
	return ok
}

func validObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}
