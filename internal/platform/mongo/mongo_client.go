// Package mongo provides the MongoDB client bootstrap.
package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// NewClient connects to MongoDB using the given connection string and
// verifies the connection with a ping.
func NewClient(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		slog.Error("MongoDB connection failed", "error", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		slog.Error("MongoDB ping failed", "error", err)
		return nil, err
	}

	slog.Info("MongoDB connection successful")
	return client, nil
}
