package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pos-platform/inventory-service/pkg/metrics"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// AdjustmentRepository persists adjustment reason records in the
// adjustments collection
type AdjustmentRepository struct {
	collection *mongo.Collection
	metrics    *metrics.Metrics
}

// NewAdjustmentRepository creates a new AdjustmentRepository
func NewAdjustmentRepository(db *mongo.Database, m *metrics.Metrics) *AdjustmentRepository {
	repo := &AdjustmentRepository{
		collection: db.Collection("adjustments"),
		metrics:    m,
	}
	repo.ensureIndexes(context.Background())

	return repo
}

func (r *AdjustmentRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "createdAt", Value: -1},
		}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Insert stores an adjustment record and backfills its generated ID so
// the ledger entry can reference it
func (r *AdjustmentRepository) Insert(ctx context.Context, adjustment *domain.Adjustment) error {
	start := time.Now()

	if adjustment.ID.IsZero() {
		adjustment.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, adjustment)
	if r.metrics != nil {
		r.metrics.RecordMongoDBOperation("adjustments", "insertOne", err == nil, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("failed to insert adjustment: %w", err)
	}
	return nil
}
