package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository call against the database.
const defaultTimeout = 10 * time.Second

// resultLimit caps every list query. There is no pagination cursor; clients
// get at most this many documents per call.
const resultLimit = 1000

// Config carries the MongoDB connection settings.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens a MongoDB client, pings it, and returns the client together
// with the configured database handle. The ping makes a bad URI fail at
// startup instead of on the first query.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
