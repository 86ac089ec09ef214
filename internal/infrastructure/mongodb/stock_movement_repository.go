package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pos-platform/inventory-service/pkg/metrics"
	pkgmongo "github.com/pos-platform/inventory-service/pkg/mongodb"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// StockMovementRepository persists the append-only stock ledger in the
// stock_movements collection
type StockMovementRepository struct {
	collection *mongo.Collection
	metrics    *metrics.Metrics
}

// NewStockMovementRepository creates a new StockMovementRepository
func NewStockMovementRepository(db *mongo.Database, m *metrics.Metrics) *StockMovementRepository {
	repo := &StockMovementRepository{
		collection: db.Collection("stock_movements"),
		metrics:    m,
	}
	repo.ensureIndexes(context.Background())

	return repo
}

func (r *StockMovementRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "createdAt", Value: -1},
		}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{
			{Key: "movementType", Value: 1},
			{Key: "createdAt", Value: -1},
		}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// Insert appends a ledger entry. Entries are immutable; there is no
// update path on this repository.
func (r *StockMovementRepository) Insert(ctx context.Context, movement *domain.StockMovement) error {
	start := time.Now()

	if movement.ID.IsZero() {
		movement.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, movement)
	r.record("insertOne", err == nil, start)

	if err != nil {
		return fmt.Errorf("failed to insert stock movement: %w", err)
	}
	return nil
}

// Find returns ledger entries newest first, each joined with its current
// product document
func (r *StockMovementRepository) Find(ctx context.Context, filter domain.MovementFilter) ([]*domain.StockMovement, error) {
	start := time.Now()

	match := bson.M{}
	if filter.ProductID != nil {
		match["productId"] = *filter.ProductID
	}
	match = pkgmongo.DateRangeFilter(match, filter.From, filter.To)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "productId",
			"foreignField": "_id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$product",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.record("aggregate", false, start)
		return nil, fmt.Errorf("failed to query stock movements: %w", err)
	}
	defer cursor.Close(ctx)

	movements := make([]*domain.StockMovement, 0)
	err = cursor.All(ctx, &movements)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stock movements: %w", err)
	}

	return movements, nil
}

// SummarizeByType groups ledger entries per movement type over an
// optional period, busiest type first
func (r *StockMovementRepository) SummarizeByType(ctx context.Context, from, to *time.Time) ([]*domain.MovementTypeSummary, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: pkgmongo.DateRangeFilter(bson.M{}, from, to)}},
		{{Key: "$group", Value: bson.M{
			"_id":                 "$movementType",
			"totalMovements":      bson.M{"$sum": 1},
			"totalQuantityChange": bson.M{"$sum": "$quantityChange"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalMovements", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":                 0,
			"movementType":        "$_id",
			"totalMovements":      1,
			"totalQuantityChange": 1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.record("aggregate", false, start)
		return nil, fmt.Errorf("failed to summarize movements by type: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := make([]*domain.MovementTypeSummary, 0)
	err = cursor.All(ctx, &summaries)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode movement type summaries: %w", err)
	}

	return summaries, nil
}

// SummarizeByProduct groups ledger entries per product over an optional
// period. Deductions keep their negative sign so netChange is always
// totalReceived + totalDeducted.
func (r *StockMovementRepository) SummarizeByProduct(ctx context.Context, from, to *time.Time) ([]*domain.ProductMovementSummary, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: pkgmongo.DateRangeFilter(bson.M{}, from, to)}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$productId",
			"productName":    bson.M{"$first": "$productName"},
			"totalMovements": bson.M{"$sum": 1},
			"totalReceived": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$gt": bson.A{"$quantityChange", 0}}, "$quantityChange", 0},
			}},
			"totalDeducted": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$lt": bson.A{"$quantityChange", 0}}, "$quantityChange", 0},
			}},
			"netChange": bson.M{"$sum": "$quantityChange"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalMovements", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"productName":    1,
			"totalMovements": 1,
			"totalReceived":  1,
			"totalDeducted":  1,
			"netChange":      1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.record("aggregate", false, start)
		return nil, fmt.Errorf("failed to summarize movements by product: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := make([]*domain.ProductMovementSummary, 0)
	err = cursor.All(ctx, &summaries)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode product movement summaries: %w", err)
	}

	return summaries, nil
}

func (r *StockMovementRepository) record(operation string, success bool, start time.Time) {
	if r.metrics != nil {
		r.metrics.RecordMongoDBOperation("stock_movements", operation, success, time.Since(start))
	}
}
