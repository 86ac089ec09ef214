package main

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pos-platform/inventory-service/pkg/logging"
	"github.com/pos-platform/inventory-service/pkg/mongodb"
)

// Index migrations for the collections the inventory service owns or
// reads. Safe to run repeatedly: CreateMany is a no-op for indexes that
// already exist.
var migrations = map[string][]mongo.IndexModel{
	"products": {
		{
			Keys:    bson.D{{Key: "SKU", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "currentStock", Value: 1}}},
	},
	"stock_movements": {
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "movementType", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	"adjustments": {
		{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	"sales": {
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "paymentStatus", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	"audit_logs": {
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
}

func main() {
	logger := logging.New(logging.DefaultConfig("inventory-migrate"))

	cfg := mongodb.DefaultConfig()
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		cfg.URI = uri
	}
	if db := os.Getenv("MONGODB_DATABASE"); db != "" {
		cfg.Database = db
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = client.Close(context.Background())
	}()

	for collection, indexes := range migrations {
		names, err := client.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			logger.Error("Failed to create indexes", "collection", collection, "error", err)
			os.Exit(1)
		}
		logger.Info("Created indexes", "collection", collection, "indexes", names)
	}

	logger.Info("Migration complete", "database", cfg.Database)
}
