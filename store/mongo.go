package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrStoreUnavailable = fmt.Errorf("store unavailable")
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Food
	FoodRequest
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping(ctx context.Context) error
}

type mongoDB struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
}

// Ping - ping mongo db
func (m mongoDB) Ping(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	return storeError(m.client.Ping(ctx, nil))
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// withTimeout bounds a single call against the database
func (m mongoDB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, m.timeout)
}

// NewMongoStore - return mongo db operations. A non-positive timeout falls
// back to the default per-call timeout.
func NewMongoStore(client *mongo.Client, database string, timeout time.Duration) MongoStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &mongoDB{
		client:   client,
		database: database,
		timeout:  timeout,
	}
}

// storeError marks errors caused by an unreachable or slow database so that
// callers can tell them apart from query failures
func storeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, mongo.ErrClientDisconnected) {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	var commandErr mongo.CommandError
	if errors.As(err, &commandErr) && commandErr.HasErrorLabel("NetworkError") {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
	}

	return err
}
