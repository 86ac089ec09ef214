package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos-platform/inventory-service/internal/domain"
)

func TestReportService_SalesAnalysis(t *testing.T) {
	sales := &fakeSaleRepo{
		summary: &domain.SalesSummary{TotalSale: 4500, TotalTransactions: 3, AverageTransactionsValue: 1500},
		daily: []*domain.DailySales{
			{Date: "2025-03-15", TotalSale: 3000, TotalTransactions: 2, AverageTransactionsValue: 1500},
			{Date: "2025-03-14", TotalSale: 1500, TotalTransactions: 1, AverageTransactionsValue: 1500},
		},
	}
	svc := NewReportService(sales, &fakeMovementRepo{}, testLogger())

	report, err := svc.SalesAnalysis(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	assert.Equal(t, 4500.0, report.Summary.TotalSale)
	require.Len(t, report.DailyBreakdown, 2)
	assert.Equal(t, "2025-03-15", report.DailyBreakdown[0].Date)
}

func TestReportService_SalesAnalysis_EmptyPeriod(t *testing.T) {
	svc := NewReportService(&fakeSaleRepo{}, &fakeMovementRepo{}, testLogger())

	report, err := svc.SalesAnalysis(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	require.NotNil(t, report.Summary)
	assert.Zero(t, report.Summary.TotalSale)
	assert.Zero(t, report.Summary.TotalTransactions)
	assert.NotNil(t, report.DailyBreakdown)
	assert.Empty(t, report.DailyBreakdown)
}

func TestReportService_ProductAnalysis(t *testing.T) {
	sales := &fakeSaleRepo{productSales: []*domain.ProductSales{
		{ProductName: "Rice 5kg", TotalQuantitySold: 40, TotalTransactions: 12, TotalRevenue: 9000, AvgValue: 750},
		{ProductName: "Beans 1kg", TotalQuantitySold: 25, TotalTransactions: 9, TotalRevenue: 3000, AvgValue: 333.33},
	}}
	svc := NewReportService(sales, &fakeMovementRepo{}, testLogger())

	report, err := svc.ProductAnalysis(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	// summary repeats the top seller
	assert.Equal(t, "Rice 5kg", report.Summary.ProductName)
	assert.Equal(t, int64(40), report.Summary.TotalQuantitySold)
	assert.Len(t, report.Products, 2)
}

func TestReportService_ProductAnalysis_EmptyPeriod(t *testing.T) {
	svc := NewReportService(&fakeSaleRepo{}, &fakeMovementRepo{}, testLogger())

	report, err := svc.ProductAnalysis(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	require.NotNil(t, report.Summary)
	assert.Empty(t, report.Summary.ProductName)
	assert.Zero(t, report.Summary.TotalQuantitySold)
	assert.Empty(t, report.Products)
}

func TestReportService_PaymentMethods(t *testing.T) {
	sales := &fakeSaleRepo{paymentMethods: []*domain.PaymentMethodTotals{
		{Method: domain.PaymentCash, TotalAmount: 3000, TotalTransactions: 12},
		{Method: domain.PaymentPOS, TotalAmount: 1000, TotalTransactions: 4},
	}}
	svc := NewReportService(sales, &fakeMovementRepo{}, testLogger())

	report, err := svc.PaymentMethods(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	assert.Equal(t, 4000.0, report.GrandTotal)
	require.Len(t, report.PaymentMethods, 2)
	assert.Equal(t, 75.0, report.PaymentMethods[0].Percentage)
	assert.Equal(t, 25.0, report.PaymentMethods[1].Percentage)
}

func TestReportService_PaymentMethods_PercentageRounding(t *testing.T) {
	sales := &fakeSaleRepo{paymentMethods: []*domain.PaymentMethodTotals{
		{Method: domain.PaymentCash, TotalAmount: 100},
		{Method: domain.PaymentPOS, TotalAmount: 100},
		{Method: domain.PaymentBankTransfer, TotalAmount: 100},
	}}
	svc := NewReportService(sales, &fakeMovementRepo{}, testLogger())

	report, err := svc.PaymentMethods(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	// one third rounds to two decimal places
	for _, m := range report.PaymentMethods {
		assert.Equal(t, 33.33, m.Percentage)
	}
}

func TestReportService_PaymentMethods_ZeroGrandTotal(t *testing.T) {
	sales := &fakeSaleRepo{paymentMethods: []*domain.PaymentMethodTotals{
		{Method: domain.PaymentCash, TotalAmount: 0},
	}}
	svc := NewReportService(sales, &fakeMovementRepo{}, testLogger())

	report, err := svc.PaymentMethods(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	assert.Zero(t, report.GrandTotal)
	require.Len(t, report.PaymentMethods, 1)
	assert.Zero(t, report.PaymentMethods[0].Percentage)
}

func TestReportService_StockMovements(t *testing.T) {
	movements := &fakeMovementRepo{
		byType: []*domain.MovementTypeSummary{
			{MovementType: domain.MovementReceive, TotalMovements: 5, TotalQuantityChange: 120},
			{MovementType: domain.MovementAdjustment, TotalMovements: 2, TotalQuantityChange: -8},
		},
		byProduct: []*domain.ProductMovementSummary{
			{ProductName: "Rice 5kg", TotalMovements: 4, TotalReceived: 80, TotalDeducted: -5, NetChange: 75},
		},
	}
	svc := NewReportService(&fakeSaleRepo{}, movements, testLogger())

	report, err := svc.StockMovements(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	require.Len(t, report.ByType, 2)
	assert.Equal(t, domain.MovementReceive, report.ByType[0].MovementType)
	require.Len(t, report.ByProduct, 1)
	assert.Equal(t, int64(75), report.ByProduct[0].NetChange)
}

func TestReportService_StockMovements_EmptyPeriod(t *testing.T) {
	svc := NewReportService(&fakeSaleRepo{}, &fakeMovementRepo{}, testLogger())

	report, err := svc.StockMovements(context.Background(), ReportPeriodQuery{})

	require.NoError(t, err)
	assert.NotNil(t, report.ByType)
	assert.Empty(t, report.ByType)
	assert.NotNil(t, report.ByProduct)
	assert.Empty(t, report.ByProduct)
}
