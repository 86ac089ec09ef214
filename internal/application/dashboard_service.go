package application

import (
	"context"
	"fmt"
	"time"

	"github.com/pos-platform/inventory-service/pkg/logging"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// recentTransactionsLimit caps the dashboard's recent sales list
const recentTransactionsLimit = 10

// DashboardService serves the back-office landing page: today's sales
// figures, low stock alerts and the latest transactions
type DashboardService struct {
	sales    domain.SaleRepository
	products domain.ProductRepository
	logger   *logging.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(sales domain.SaleRepository, products domain.ProductRepository, logger *logging.Logger) *DashboardService {
	return &DashboardService{
		sales:    sales,
		products: products,
		logger:   logger,
	}
}

// Summary computes today's headline figures. "Today" runs from local
// midnight to 23:59:59.999; the pending payments count ignores the date
// entirely because an unsettled sale stays unsettled regardless of age.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummaryDTO, error) {
	start, end := todayBounds(time.Now())

	todaySales, err := s.sales.TotalSalesBetween(ctx, start, end)
	if err != nil {
		s.logger.Error("Failed to total today's sales", "error", err)
		return nil, fmt.Errorf("failed to total today's sales: %w", err)
	}

	cashInRegister, err := s.sales.CashCollectedBetween(ctx, start, end)
	if err != nil {
		s.logger.Error("Failed to total today's cash payments", "error", err)
		return nil, fmt.Errorf("failed to total today's cash payments: %w", err)
	}

	pendingPayments, err := s.sales.CountUnsettled(ctx)
	if err != nil {
		s.logger.Error("Failed to count unsettled sales", "error", err)
		return nil, fmt.Errorf("failed to count unsettled sales: %w", err)
	}

	lowStock, err := s.products.CountLowStock(ctx)
	if err != nil {
		s.logger.Error("Failed to count low stock products", "error", err)
		return nil, fmt.Errorf("failed to count low stock products: %w", err)
	}

	return &DashboardSummaryDTO{
		TodaySales:           todaySales,
		CashInRegister:       cashInRegister,
		PendingPaymentsCount: pendingPayments,
		LowStockCount:        lowStock,
	}, nil
}

// RecentTransactions returns the latest sales, newest first
func (s *DashboardService) RecentTransactions(ctx context.Context) ([]*domain.RecentSale, error) {
	sales, err := s.sales.FindRecent(ctx, recentTransactionsLimit)
	if err != nil {
		s.logger.Error("Failed to list recent transactions", "error", err)
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return sales, nil
}

// ReorderAlerts returns the trimmed low-stock view for the dashboard
func (s *DashboardService) ReorderAlerts(ctx context.Context) ([]*domain.ReorderAlert, error) {
	alerts, err := s.products.FindReorderAlerts(ctx)
	if err != nil {
		s.logger.Error("Failed to list reorder alerts", "error", err)
		return nil, fmt.Errorf("failed to list reorder alerts: %w", err)
	}
	return alerts, nil
}

// todayBounds returns the inclusive bounds of the local calendar day
// containing now
func todayBounds(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	end := time.Date(year, month, day, 23, 59, 59, 999_000_000, now.Location())
	return start, end
}
