package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sharecare/share-care-api/schema"
)

func (s *Server) createFoodRequest(c *gin.Context) {
	var req schema.FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	req.ID = primitive.NilObjectID

	if !claimOwner(c, &req.UID) {
		return
	}
	if req.UID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	id, err := s.store.CreateFoodRequest(c.Request.Context(), req)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"insertedId":   id,
	})
}

// listFoodRequests returns the requests made by a user together with the
// listing each one refers to
func (s *Server) listFoodRequests(c *gin.Context) {
	requests, err := s.store.ListFoodRequests(c.Request.Context(), c.Param("id"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}
