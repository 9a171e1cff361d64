package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sharecare/share-care-api/schema"
)

type FoodRequest interface {
	CreateFoodRequest(ctx context.Context, req schema.FoodRequest) (primitive.ObjectID, error)
	ListFoodRequests(ctx context.Context, uid string) ([]schema.FoodRequest, error)
}

// CreateFoodRequest inserts a request as is. The referenced listing is not checked.
func (m *mongoDB) CreateFoodRequest(ctx context.Context, req schema.FoodRequest) (primitive.ObjectID, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodRequestCollection)

	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}

	if _, err := c.InsertOne(ctx, req); err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"food ID": req.FoodID,
			"error":   err,
		}).Error("insert food request")
		return primitive.NilObjectID, storeError(err)
	}

	return req.ID, nil
}

// ListFoodRequests returns requests whose uid matches, oldest first
func (m *mongoDB) ListFoodRequests(ctx context.Context, uid string) ([]schema.FoodRequest, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodRequestCollection)

	opts := options.Find().SetSort(bson.M{"_id": 1})
	cursor, err := c.Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query food requests with error: %s", err)
		return nil, storeError(err)
	}

	requests := make([]schema.FoodRequest, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, storeError(err)
	}

	return requests, nil
}
