package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sharecare/share-care-api/schema"
)

var (
	ErrFoodNotFound    = fmt.Errorf("food not found")
	ErrEmptyFoodUpdate = fmt.Errorf("no field to update")
)

type Food interface {
	ListFoods(ctx context.Context, filter schema.FoodFilter) ([]schema.Food, error)
	ListFoodsByExpireDate(ctx context.Context) ([]schema.Food, error)
	GetFood(ctx context.Context, id primitive.ObjectID) (*schema.Food, error)

	CreateFood(ctx context.Context, food schema.Food) (primitive.ObjectID, error)
	UpdateFood(ctx context.Context, id primitive.ObjectID, update schema.FoodUpdate) (*schema.UpdateResult, error)
	DeleteFood(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// foodFilterQuery turns supported filters into a mongo query. Empty fields
// are not part of the query.
func foodFilterQuery(filter schema.FoodFilter) bson.M {
	query := bson.M{}
	if filter.UID != "" {
		query["uid"] = filter.UID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return query
}

// ListFoods returns every listing matching the filter
func (m *mongoDB) ListFoods(ctx context.Context, filter schema.FoodFilter) ([]schema.Food, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodCollection)

	cursor, err := c.Find(ctx, foodFilterQuery(filter))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query foods with error: %s", err)
		return nil, storeError(err)
	}

	foods := make([]schema.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, storeError(err)
	}

	return foods, nil
}

// ListFoodsByExpireDate returns all listings, the earliest expiration first.
// Listings expiring at the same time are ordered by id.
func (m *mongoDB) ListFoodsByExpireDate(ctx context.Context) ([]schema.Food, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodCollection)

	opts := options.Find().SetSort(bson.D{
		{Key: "expireDate", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query foods by expire date with error: %s", err)
		return nil, storeError(err)
	}

	foods := make([]schema.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, storeError(err)
	}

	return foods, nil
}

// GetFood finds a listing by its id
func (m *mongoDB) GetFood(ctx context.Context, id primitive.ObjectID) (*schema.Food, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodCollection)

	var food schema.Food
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&food); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFoodNotFound
		}
		return nil, storeError(err)
	}

	return &food, nil
}

// CreateFood inserts a new listing and returns its id
func (m *mongoDB) CreateFood(ctx context.Context, food schema.Food) (primitive.ObjectID, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodCollection)

	if food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	if food.CreatedAt.IsZero() {
		food.CreatedAt = time.Now().UTC()
	}

	if _, err := c.InsertOne(ctx, food); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"uid":    food.UID,
			"error":  err,
		}).Error("insert food")
		return primitive.NilObjectID, storeError(err)
	}

	return food.ID, nil
}

// UpdateFood replaces the provided fields of a listing. Other fields are kept.
func (m *mongoDB) UpdateFood(ctx context.Context, id primitive.ObjectID, update schema.FoodUpdate) (*schema.UpdateResult, error) {
	if update.Empty() {
		return nil, ErrEmptyFoodUpdate
	}

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodCollection)

	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"food ID": id.Hex(),
			"error":   err,
		}).Error("update food")
		return nil, storeError(err)
	}

	return &schema.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// DeleteFood removes a listing and returns the number of removed documents
func (m *mongoDB) DeleteFood(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	c := m.collection(schema.FoodCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, storeError(err)
	}

	return result.DeletedCount, nil
}
