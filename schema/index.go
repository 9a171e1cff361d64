package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexFoodCollection())
	panicIfError(m.IndexFoodRequestCollection())
}

// Close disconnects the indexer's own client
func (m *MongoDBIndexer) Close() error {
	return m.Client.Disconnect(m.ctx)
}

func (m *MongoDBIndexer) IndexFoodCollection() error {
	if err := m.createIndex(FoodCollection, mongo.IndexModel{
		Keys: bson.M{
			"status": 1,
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(FoodCollection, mongo.IndexModel{
		Keys: bson.M{
			"uid": 1,
		},
	}); err != nil {
		return err
	}

	// backs the expiration ordering including its tie-break
	return m.createIndex(FoodCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "expireDate", Value: 1},
			{Key: "_id", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexFoodRequestCollection() error {
	if err := m.createIndex(FoodRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"uid": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(FoodRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"foodId": 1,
		},
	})
}
