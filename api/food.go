package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sharecare/share-care-api/schema"
	"github.com/sharecare/share-care-api/store"
)

// foodID parses the `:id` path parameter of a listing route
func foodID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidFoodID, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (s *Server) availableFoods(c *gin.Context) {
	foods, err := s.store.AvailableFoods(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (s *Server) myAddedFoods(c *gin.Context) {
	var filter schema.FoodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	foods, err := s.store.MyFoods(c.Request.Context(), filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (s *Server) foodsByExpireDate(c *gin.Context) {
	foods, err := s.store.FoodsByExpireDate(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (s *Server) featuredFoods(c *gin.Context) {
	foods, err := s.store.FeaturedFoods(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, foods)
}

func (s *Server) getFood(c *gin.Context) {
	id, ok := foodID(c)
	if !ok {
		return
	}

	food, err := s.store.GetFood(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, food)
}

func (s *Server) createFood(c *gin.Context) {
	var food schema.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// identifiers and timestamps are assigned by the store
	food.ID = primitive.NilObjectID
	food.CreatedAt = time.Time{}

	if !claimOwner(c, &food.UID) {
		return
	}
	if food.UID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	id, err := s.store.CreateFood(c.Request.Context(), food)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"insertedId":   id,
	})
}

func (s *Server) updateFood(c *gin.Context) {
	id, ok := foodID(c)
	if !ok {
		return
	}

	var update schema.FoodUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if update.Empty() {
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyFoodUpdate)
		return
	}

	if s.protectMutations && !s.ownsFood(c, id) {
		return
	}

	result, err := s.store.UpdateFood(c.Request.Context(), id, update)
	if err == store.ErrEmptyFoodUpdate {
		abortWithEncoding(c, http.StatusBadRequest, errorEmptyFoodUpdate)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

func (s *Server) deleteFood(c *gin.Context) {
	id, ok := foodID(c)
	if !ok {
		return
	}

	if s.protectMutations && !s.ownsFood(c, id) {
		return
	}

	deleted, err := s.store.DeleteFood(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"deletedCount": deleted,
	})
}

// ownsFood makes sure the listing exists and belongs to the requester
func (s *Server) ownsFood(c *gin.Context, id primitive.ObjectID) bool {
	food, err := s.store.GetFood(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return false
	}

	if food.UID != c.GetString("requester") {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return false
	}
	return true
}
