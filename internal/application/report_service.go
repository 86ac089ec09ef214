package application

import (
	"context"
	"fmt"
	"math"

	"github.com/pos-platform/inventory-service/pkg/logging"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// ReportService generates the back-office reports from sale documents
// and the stock ledger
type ReportService struct {
	sales     domain.SaleRepository
	movements domain.StockMovementRepository
	logger    *logging.Logger
}

// NewReportService creates a new ReportService
func NewReportService(sales domain.SaleRepository, movements domain.StockMovementRepository, logger *logging.Logger) *ReportService {
	return &ReportService{
		sales:     sales,
		movements: movements,
		logger:    logger,
	}
}

// SalesAnalysis totals sales over the period and breaks them down per
// calendar day, newest day first
func (s *ReportService) SalesAnalysis(ctx context.Context, query ReportPeriodQuery) (*SalesAnalysisReport, error) {
	summary, daily, err := s.sales.SummarizeSales(ctx, query.From, query.To)
	if err != nil {
		s.logger.Error("Failed to summarize sales", "error", err)
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}

	if summary == nil {
		summary = &domain.SalesSummary{}
	}
	if daily == nil {
		daily = []*domain.DailySales{}
	}

	return &SalesAnalysisReport{
		Summary:        summary,
		DailyBreakdown: daily,
	}, nil
}

// ProductAnalysis ranks products by units sold over the period. The
// summary repeats the top seller so the client can show a headline
// without digging through the list.
func (s *ReportService) ProductAnalysis(ctx context.Context, query ReportPeriodQuery) (*ProductAnalysisReport, error) {
	products, err := s.sales.SummarizeProductSales(ctx, query.From, query.To)
	if err != nil {
		s.logger.Error("Failed to summarize product sales", "error", err)
		return nil, fmt.Errorf("failed to summarize product sales: %w", err)
	}

	if products == nil {
		products = []*domain.ProductSales{}
	}

	summary := &domain.ProductSales{}
	if len(products) > 0 {
		summary = products[0]
	}

	return &ProductAnalysisReport{
		Summary:  summary,
		Products: products,
	}, nil
}

// PaymentMethods totals tendered payments per method over the period and
// works out each method's share of the grand total
func (s *ReportService) PaymentMethods(ctx context.Context, query ReportPeriodQuery) (*PaymentMethodReport, error) {
	methods, err := s.sales.SummarizePaymentMethods(ctx, query.From, query.To)
	if err != nil {
		s.logger.Error("Failed to summarize payment methods", "error", err)
		return nil, fmt.Errorf("failed to summarize payment methods: %w", err)
	}

	if methods == nil {
		methods = []*domain.PaymentMethodTotals{}
	}

	var grandTotal float64
	for _, m := range methods {
		grandTotal += m.TotalAmount
	}

	for _, m := range methods {
		if grandTotal > 0 {
			m.Percentage = math.Round(m.TotalAmount/grandTotal*100*100) / 100
		} else {
			m.Percentage = 0
		}
	}

	return &PaymentMethodReport{
		GrandTotal:     grandTotal,
		PaymentMethods: methods,
	}, nil
}

// StockMovements summarizes the ledger over the period, both per
// movement type and per product
func (s *ReportService) StockMovements(ctx context.Context, query ReportPeriodQuery) (*StockMovementReport, error) {
	byType, err := s.movements.SummarizeByType(ctx, query.From, query.To)
	if err != nil {
		s.logger.Error("Failed to summarize movements by type", "error", err)
		return nil, fmt.Errorf("failed to summarize movements by type: %w", err)
	}

	byProduct, err := s.movements.SummarizeByProduct(ctx, query.From, query.To)
	if err != nil {
		s.logger.Error("Failed to summarize movements by product", "error", err)
		return nil, fmt.Errorf("failed to summarize movements by product: %w", err)
	}

	if byType == nil {
		byType = []*domain.MovementTypeSummary{}
	}
	if byProduct == nil {
		byProduct = []*domain.ProductMovementSummary{}
	}

	return &StockMovementReport{
		ByType:    byType,
		ByProduct: byProduct,
	}, nil
}
