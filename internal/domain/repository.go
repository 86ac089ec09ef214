package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	Save(ctx context.Context, product *Product) error
	FindLowStock(ctx context.Context) ([]*Product, error)
	FindReorderAlerts(ctx context.Context) ([]*ReorderAlert, error)
	CountLowStock(ctx context.Context) (int64, error)
}

// StockMovementRepository defines the interface for the stock ledger.
// The ledger is append-only: entries are inserted, never updated.
type StockMovementRepository interface {
	Insert(ctx context.Context, movement *StockMovement) error
	Find(ctx context.Context, filter MovementFilter) ([]*StockMovement, error)
	SummarizeByType(ctx context.Context, from, to *time.Time) ([]*MovementTypeSummary, error)
	SummarizeByProduct(ctx context.Context, from, to *time.Time) ([]*ProductMovementSummary, error)
}

// AdjustmentRepository defines the interface for adjustment reason records
type AdjustmentRepository interface {
	Insert(ctx context.Context, adjustment *Adjustment) error
}

// SaleRepository defines the read-only interface over sale documents
// used by the dashboard and reports
type SaleRepository interface {
	FindRecent(ctx context.Context, limit int64) ([]*RecentSale, error)
	TotalSalesBetween(ctx context.Context, from, to time.Time) (float64, error)
	CashCollectedBetween(ctx context.Context, from, to time.Time) (float64, error)
	CountUnsettled(ctx context.Context) (int64, error)
	SummarizeSales(ctx context.Context, from, to *time.Time) (*SalesSummary, []*DailySales, error)
	SummarizeProductSales(ctx context.Context, from, to *time.Time) ([]*ProductSales, error)
	SummarizePaymentMethods(ctx context.Context, from, to *time.Time) ([]*PaymentMethodTotals, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
