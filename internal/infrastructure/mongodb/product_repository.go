package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pos-platform/inventory-service/pkg/metrics"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// lowStockFilter matches active products at or below their reorder level
func lowStockFilter() bson.M {
	return bson.M{
		"$expr":    bson.M{"$lte": bson.A{"$currentStock", "$reorderLevel"}},
		"isActive": true,
	}
}

// ProductRepository persists products in the products collection
type ProductRepository struct {
	collection *mongo.Collection
	metrics    *metrics.Metrics
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *mongo.Database, m *metrics.Metrics) *ProductRepository {
	repo := &ProductRepository{
		collection: db.Collection("products"),
		metrics:    m,
	}
	repo.ensureIndexes(context.Background())

	return repo
}

func (r *ProductRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "SKU", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{
			{Key: "isActive", Value: 1},
			{Key: "currentStock", Value: 1},
		}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// FindByID loads a product by its ObjectID
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	start := time.Now()

	var product domain.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	r.record("findOne", err == nil || errors.Is(err, mongo.ErrNoDocuments), start)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// Save upserts the product document
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	start := time.Now()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	filter := bson.M{"_id": product.ID}
	update := bson.M{"$set": product}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	r.record("updateOne", err == nil, start)

	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// FindLowStock returns active products at or below their reorder level
func (r *ProductRepository) FindLowStock(ctx context.Context) ([]*domain.Product, error) {
	start := time.Now()

	cursor, err := r.collection.Find(ctx, lowStockFilter())
	if err != nil {
		r.record("find", false, start)
		return nil, fmt.Errorf("failed to find low stock products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*domain.Product, 0)
	err = cursor.All(ctx, &products)
	r.record("find", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode low stock products: %w", err)
	}

	return products, nil
}

// FindReorderAlerts returns the trimmed low-stock projection for the dashboard
func (r *ProductRepository) FindReorderAlerts(ctx context.Context) ([]*domain.ReorderAlert, error) {
	start := time.Now()

	opts := options.Find().SetProjection(bson.M{
		"name":         1,
		"currentStock": 1,
		"reorderLevel": 1,
	})

	cursor, err := r.collection.Find(ctx, lowStockFilter(), opts)
	if err != nil {
		r.record("find", false, start)
		return nil, fmt.Errorf("failed to find reorder alerts: %w", err)
	}
	defer cursor.Close(ctx)

	alerts := make([]*domain.ReorderAlert, 0)
	err = cursor.All(ctx, &alerts)
	r.record("find", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode reorder alerts: %w", err)
	}

	return alerts, nil
}

// CountLowStock counts active products at or below their reorder level
func (r *ProductRepository) CountLowStock(ctx context.Context) (int64, error) {
	start := time.Now()

	count, err := r.collection.CountDocuments(ctx, lowStockFilter())
	r.record("countDocuments", err == nil, start)
	if err != nil {
		return 0, fmt.Errorf("failed to count low stock products: %w", err)
	}

	return count, nil
}

func (r *ProductRepository) record(operation string, success bool, start time.Time) {
	if r.metrics != nil {
		r.metrics.RecordMongoDBOperation("products", operation, success, time.Since(start))
	}
}
