package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// OpenMongo connects to the document store and verifies the connection
func OpenMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	return client.Database(dbName), nil
}

// EnsureIndexes creates the indexes the service relies on. The unique
// email index is the actual uniqueness guarantee for registration; the
// pre-insert existence check only improves the error message.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection("users")

	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique email index: %w", err)
	}

	_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	return nil
}
