package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/sharecare/share-care-api/ranking"
	"github.com/sharecare/share-care-api/schema"
)

// joinConcurrency bounds the listing lookups in flight for one request listing
const joinConcurrency = 8

// ShareCareCore is the main datastore of the food sharing service
type ShareCareCore interface {
	Ping(ctx context.Context) error

	// Food
	AvailableFoods(ctx context.Context) ([]schema.Food, error)
	MyFoods(ctx context.Context, filter schema.FoodFilter) ([]schema.Food, error)
	FoodsByExpireDate(ctx context.Context) ([]schema.Food, error)
	FeaturedFoods(ctx context.Context) ([]schema.Food, error)
	GetFood(ctx context.Context, id primitive.ObjectID) (*schema.Food, error)
	CreateFood(ctx context.Context, food schema.Food) (primitive.ObjectID, error)
	UpdateFood(ctx context.Context, id primitive.ObjectID, update schema.FoodUpdate) (*schema.UpdateResult, error)
	DeleteFood(ctx context.Context, id primitive.ObjectID) (int64, error)

	// Food request
	CreateFoodRequest(ctx context.Context, req schema.FoodRequest) (primitive.ObjectID, error)
	ListFoodRequests(ctx context.Context, uid string) ([]schema.JoinedFoodRequest, error)
}

// ShareCareStore is an implementation of ShareCareCore
type ShareCareStore struct {
	mongo MongoStore
}

func NewShareCareStore(mongo MongoStore) *ShareCareStore {
	return &ShareCareStore{
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *ShareCareStore) Ping(ctx context.Context) error {
	return s.mongo.Ping(ctx)
}

// AvailableFoods lists the listings still open for requests
func (s *ShareCareStore) AvailableFoods(ctx context.Context) ([]schema.Food, error) {
	return s.mongo.ListFoods(ctx, schema.FoodFilter{Status: schema.FoodAvailable})
}

// MyFoods lists the listings of an owner. The owner must be set so that the
// query never turns into a full collection scan.
func (s *ShareCareStore) MyFoods(ctx context.Context, filter schema.FoodFilter) ([]schema.Food, error) {
	if filter.UID == "" {
		return []schema.Food{}, nil
	}
	return s.mongo.ListFoods(ctx, filter)
}

func (s *ShareCareStore) FoodsByExpireDate(ctx context.Context) ([]schema.Food, error) {
	return s.mongo.ListFoodsByExpireDate(ctx)
}

// FeaturedFoods ranks all listings by their numeric quantity
func (s *ShareCareStore) FeaturedFoods(ctx context.Context) ([]schema.Food, error) {
	foods, err := s.mongo.ListFoods(ctx, schema.FoodFilter{})
	if err != nil {
		return nil, err
	}

	return ranking.Featured(foods), nil
}

func (s *ShareCareStore) GetFood(ctx context.Context, id primitive.ObjectID) (*schema.Food, error) {
	return s.mongo.GetFood(ctx, id)
}

func (s *ShareCareStore) CreateFood(ctx context.Context, food schema.Food) (primitive.ObjectID, error) {
	if food.Status == "" {
		food.Status = schema.FoodAvailable
	}
	return s.mongo.CreateFood(ctx, food)
}

func (s *ShareCareStore) UpdateFood(ctx context.Context, id primitive.ObjectID, update schema.FoodUpdate) (*schema.UpdateResult, error) {
	return s.mongo.UpdateFood(ctx, id, update)
}

func (s *ShareCareStore) DeleteFood(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.mongo.DeleteFood(ctx, id)
}

func (s *ShareCareStore) CreateFoodRequest(ctx context.Context, req schema.FoodRequest) (primitive.ObjectID, error) {
	return s.mongo.CreateFoodRequest(ctx, req)
}

// ListFoodRequests finds the requests of a uid and resolves the listing of
// each one concurrently. A request whose listing can not be resolved is
// returned with empty food data; only the request query itself fails the call.
func (s *ShareCareStore) ListFoodRequests(ctx context.Context, uid string) ([]schema.JoinedFoodRequest, error) {
	requests, err := s.mongo.ListFoodRequests(ctx, uid)
	if err != nil {
		return nil, err
	}

	result := make([]schema.JoinedFoodRequest, len(requests))

	var g errgroup.Group
	sem := make(chan struct{}, joinConcurrency)
	for i, req := range requests {
		i, req := i, req
		result[i].RequestData = req

		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			result[i].FoodData = s.resolveFood(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	return result, nil
}

func (s *ShareCareStore) resolveFood(ctx context.Context, req schema.FoodRequest) *schema.Food {
	logger := log.WithFields(log.Fields{
		"prefix":     mongoLogPrefix,
		"request ID": req.ID.Hex(),
		"food ID":    req.FoodID,
	})

	foodID, err := primitive.ObjectIDFromHex(req.FoodID)
	if err != nil {
		logger.Warn("malformed food id in request")
		return nil
	}

	food, err := s.mongo.GetFood(ctx, foodID)
	if err != nil {
		if err == ErrFoodNotFound {
			logger.Info("requested food no longer exists")
		} else {
			logger.WithError(err).Error("resolve requested food")
		}
		return nil
	}

	return food
}
