package application

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pos-platform/inventory-service/pkg/logging"

	"github.com/pos-platform/inventory-service/internal/domain"
)

func testLogger() *logging.Logger {
	return logging.New(&logging.Config{
		Level:       logging.LevelError,
		ServiceName: "test",
		Output:      io.Discard,
	})
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*domain.Product
	findErr  error
	saveErr  error
	countErr error
	saved    []*domain.Product
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[primitive.ObjectID]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) Save(ctx context.Context, product *domain.Product) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.products[product.ID] = product
	f.saved = append(f.saved, product)
	return nil
}

func (f *fakeProductRepo) FindLowStock(ctx context.Context) ([]*domain.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	results := make([]*domain.Product, 0)
	for _, p := range f.products {
		if p.IsLowStock() && p.IsActive {
			results = append(results, p)
		}
	}
	return results, nil
}

func (f *fakeProductRepo) FindReorderAlerts(ctx context.Context) ([]*domain.ReorderAlert, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	alerts := make([]*domain.ReorderAlert, 0)
	for _, p := range f.products {
		if p.IsLowStock() && p.IsActive {
			alerts = append(alerts, &domain.ReorderAlert{
				ID:           p.ID,
				Name:         p.Name,
				CurrentStock: p.CurrentStock,
				ReorderLevel: p.ReorderLevel,
			})
		}
	}
	return alerts, nil
}

func (f *fakeProductRepo) CountLowStock(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, p := range f.products {
		if p.IsLowStock() && p.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeMovementRepo struct {
	movements []*domain.StockMovement
	insertErr error
	findErr   error

	byType    []*domain.MovementTypeSummary
	byProduct []*domain.ProductMovementSummary
}

func (f *fakeMovementRepo) Insert(ctx context.Context, movement *domain.StockMovement) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if movement.ID.IsZero() {
		movement.ID = primitive.NewObjectID()
	}
	f.movements = append(f.movements, movement)
	return nil
}

func (f *fakeMovementRepo) Find(ctx context.Context, filter domain.MovementFilter) ([]*domain.StockMovement, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	results := make([]*domain.StockMovement, 0)
	for _, m := range f.movements {
		if filter.ProductID != nil && m.ProductID != *filter.ProductID {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		results = append(results, m)
	}
	return results, nil
}

func (f *fakeMovementRepo) SummarizeByType(ctx context.Context, from, to *time.Time) ([]*domain.MovementTypeSummary, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byType, nil
}

func (f *fakeMovementRepo) SummarizeByProduct(ctx context.Context, from, to *time.Time) ([]*domain.ProductMovementSummary, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byProduct, nil
}

type fakeAdjustmentRepo struct {
	adjustments []*domain.Adjustment
	insertErr   error
}

func (f *fakeAdjustmentRepo) Insert(ctx context.Context, adjustment *domain.Adjustment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if adjustment.ID.IsZero() {
		adjustment.ID = primitive.NewObjectID()
	}
	f.adjustments = append(f.adjustments, adjustment)
	return nil
}

type fakeAuditRecorder struct {
	entries   []*domain.AuditEntry
	recordErr error
}

func (f *fakeAuditRecorder) Record(ctx context.Context, entry *domain.AuditEntry) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

type fakePublisher struct {
	events     []domain.DomainEvent
	publishErr error
}

func (f *fakePublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, event)
	return nil
}

type fakeSaleRepo struct {
	recent     []*domain.RecentSale
	totalSales float64
	cash       float64
	unsettled  int64

	summary        *domain.SalesSummary
	daily          []*domain.DailySales
	productSales   []*domain.ProductSales
	paymentMethods []*domain.PaymentMethodTotals

	err error

	recentLimit int64
}

func (f *fakeSaleRepo) FindRecent(ctx context.Context, limit int64) ([]*domain.RecentSale, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recentLimit = limit
	return f.recent, nil
}

func (f *fakeSaleRepo) TotalSalesBetween(ctx context.Context, from, to time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.totalSales, nil
}

func (f *fakeSaleRepo) CashCollectedBetween(ctx context.Context, from, to time.Time) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.cash, nil
}

func (f *fakeSaleRepo) CountUnsettled(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.unsettled, nil
}

func (f *fakeSaleRepo) SummarizeSales(ctx context.Context, from, to *time.Time) (*domain.SalesSummary, []*domain.DailySales, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.summary, f.daily, nil
}

func (f *fakeSaleRepo) SummarizeProductSales(ctx context.Context, from, to *time.Time) ([]*domain.ProductSales, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.productSales, nil
}

func (f *fakeSaleRepo) SummarizePaymentMethods(ctx context.Context, from, to *time.Time) ([]*domain.PaymentMethodTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.paymentMethods, nil
}
