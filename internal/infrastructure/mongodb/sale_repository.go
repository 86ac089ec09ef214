package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pos-platform/inventory-service/pkg/metrics"
	pkgmongo "github.com/pos-platform/inventory-service/pkg/mongodb"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// SaleRepository reads sale documents for the dashboard and reports.
// Sales are written by the checkout flow, never from here.
type SaleRepository struct {
	collection *mongo.Collection
	metrics    *metrics.Metrics
}

// NewSaleRepository creates a new SaleRepository
func NewSaleRepository(db *mongo.Database, m *metrics.Metrics) *SaleRepository {
	return &SaleRepository{
		collection: db.Collection("sales"),
		metrics:    m,
	}
}

// FindRecent returns the latest sales, newest first, trimmed to the
// dashboard fields
func (r *SaleRepository) FindRecent(ctx context.Context, limit int64) ([]*domain.RecentSale, error) {
	start := time.Now()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{
			"invoiceId":        1,
			"grandTotal":       1,
			"paymentStatus":    1,
			"customerSnapshot": 1,
			"createdAt":        1,
		})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.record("find", false, start)
		return nil, fmt.Errorf("failed to find recent sales: %w", err)
	}
	defer cursor.Close(ctx)

	sales := make([]*domain.RecentSale, 0)
	err = cursor.All(ctx, &sales)
	r.record("find", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode recent sales: %w", err)
	}

	return sales, nil
}

// TotalSalesBetween sums grand totals over an inclusive period
func (r *SaleRepository) TotalSalesBetween(ctx context.Context, from, to time.Time) (float64, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$grandTotal"},
		}}},
	}

	total, err := r.aggregateSingleTotal(ctx, pipeline)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return 0, fmt.Errorf("failed to total sales: %w", err)
	}

	return total, nil
}

// CashCollectedBetween sums cash payments tendered over an inclusive
// period. A sale paid partly in cash only contributes its cash part.
func (r *SaleRepository) CashCollectedBetween(ctx context.Context, from, to time.Time) (float64, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": from, "$lte": to}}}},
		{{Key: "$unwind", Value: "$payments"}},
		{{Key: "$match", Value: bson.M{"payments.method": domain.PaymentCash}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$payments.amount"},
		}}},
	}

	total, err := r.aggregateSingleTotal(ctx, pipeline)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return 0, fmt.Errorf("failed to total cash payments: %w", err)
	}

	return total, nil
}

// CountUnsettled counts sales that still have money outstanding,
// whenever they happened
func (r *SaleRepository) CountUnsettled(ctx context.Context) (int64, error) {
	start := time.Now()

	filter := bson.M{"paymentStatus": bson.M{
		"$in": bson.A{domain.PaymentStatusPartial, domain.PaymentStatusPending},
	}}

	count, err := r.collection.CountDocuments(ctx, filter)
	r.record("countDocuments", err == nil, start)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsettled sales: %w", err)
	}

	return count, nil
}

// SummarizeSales totals sales over an optional period and breaks them
// down per calendar day, newest day first. Returns a nil summary when
// the period matched nothing.
func (r *SaleRepository) SummarizeSales(ctx context.Context, from, to *time.Time) (*domain.SalesSummary, []*domain.DailySales, error) {
	start := time.Now()
	match := pkgmongo.DateRangeFilter(bson.M{}, from, to)

	summaryPipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":                      nil,
			"totalSale":                bson.M{"$sum": "$grandTotal"},
			"totalTransactions":        bson.M{"$sum": 1},
			"averageTransactionsValue": bson.M{"$avg": "$grandTotal"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, summaryPipeline)
	if err != nil {
		r.record("aggregate", false, start)
		return nil, nil, fmt.Errorf("failed to summarize sales: %w", err)
	}

	var summaries []*domain.SalesSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		r.record("aggregate", false, start)
		return nil, nil, fmt.Errorf("failed to decode sales summary: %w", err)
	}

	var summary *domain.SalesSummary
	if len(summaries) > 0 {
		summary = summaries[0]
	}

	dailyPipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"totalSale":                bson.M{"$sum": "$grandTotal"},
			"totalTransactions":        bson.M{"$sum": 1},
			"averageTransactionsValue": bson.M{"$avg": "$grandTotal"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":                      0,
			"date":                     "$_id",
			"totalSale":                1,
			"totalTransactions":        1,
			"averageTransactionsValue": 1,
		}}},
	}

	cursor, err = r.collection.Aggregate(ctx, dailyPipeline)
	if err != nil {
		r.record("aggregate", false, start)
		return nil, nil, fmt.Errorf("failed to summarize daily sales: %w", err)
	}

	daily := make([]*domain.DailySales, 0)
	err = cursor.All(ctx, &daily)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode daily sales: %w", err)
	}

	return summary, daily, nil
}

// SummarizeProductSales ranks products by units sold over an optional
// period
func (r *SaleRepository) SummarizeProductSales(ctx context.Context, from, to *time.Time) ([]*domain.ProductSales, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: pkgmongo.DateRangeFilter(bson.M{}, from, to)}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":               "$items.productId",
			"productName":       bson.M{"$first": "$items.productName"},
			"totalQuantitySold": bson.M{"$sum": "$items.quantity"},
			"totalTransactions": bson.M{"$sum": 1},
			"totalRevenue":      bson.M{"$sum": "$items.total"},
			"avgValue":          bson.M{"$avg": "$items.total"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalQuantitySold", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":               0,
			"productName":       1,
			"totalQuantitySold": 1,
			"totalTransactions": 1,
			"totalRevenue":      1,
			"avgValue":          1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.record("aggregate", false, start)
		return nil, fmt.Errorf("failed to summarize product sales: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*domain.ProductSales, 0)
	err = cursor.All(ctx, &products)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode product sales: %w", err)
	}

	return products, nil
}

// SummarizePaymentMethods totals tendered payments per method over an
// optional period, largest first
func (r *SaleRepository) SummarizePaymentMethods(ctx context.Context, from, to *time.Time) ([]*domain.PaymentMethodTotals, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: pkgmongo.DateRangeFilter(bson.M{}, from, to)}},
		{{Key: "$unwind", Value: "$payments"}},
		{{Key: "$group", Value: bson.M{
			"_id":               "$payments.method",
			"totalAmount":       bson.M{"$sum": "$payments.amount"},
			"totalTransactions": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalAmount", Value: -1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":               0,
			"method":            "$_id",
			"totalAmount":       1,
			"totalTransactions": 1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		r.record("aggregate", false, start)
		return nil, fmt.Errorf("failed to summarize payment methods: %w", err)
	}
	defer cursor.Close(ctx)

	methods := make([]*domain.PaymentMethodTotals, 0)
	err = cursor.All(ctx, &methods)
	r.record("aggregate", err == nil, start)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payment method totals: %w", err)
	}

	return methods, nil
}

// aggregateSingleTotal runs a pipeline whose result is at most one
// document with a numeric "total" field; no match yields zero
func (r *SaleRepository) aggregateSingleTotal(ctx context.Context, pipeline mongo.Pipeline) (float64, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *SaleRepository) record(operation string, success bool, start time.Time) {
	if r.metrics != nil {
		r.metrics.RecordMongoDBOperation("sales", operation, success, time.Since(start))
	}
}
