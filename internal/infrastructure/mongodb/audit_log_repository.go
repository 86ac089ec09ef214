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

// AuditLogRepository writes audit trail entries to the audit_logs
// collection. It implements domain.AuditRecorder.
type AuditLogRepository struct {
	collection *mongo.Collection
	metrics    *metrics.Metrics
}

// NewAuditLogRepository creates a new AuditLogRepository
func NewAuditLogRepository(db *mongo.Database, m *metrics.Metrics) *AuditLogRepository {
	repo := &AuditLogRepository{
		collection: db.Collection("audit_logs"),
		metrics:    m,
	}
	repo.ensureIndexes(context.Background())

	return repo
}

func (r *AuditLogRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "createdAt", Value: -1},
		}},
		{Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Record stores an audit entry
func (r *AuditLogRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	start := time.Now()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	if r.metrics != nil {
		r.metrics.RecordMongoDBOperation("audit_logs", "insertOne", err == nil, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}
