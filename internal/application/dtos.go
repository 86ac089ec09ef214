package application

import (
	"time"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// ProductSummaryDTO is the trimmed product view embedded in mutation responses
type ProductSummaryDTO struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"currentStock"`
}

// StockMovementDTO represents a stock ledger entry in API responses
type StockMovementDTO struct {
	ID             string             `json:"_id"`
	ProductID      string             `json:"productId"`
	ProductName    string             `json:"productName"`
	MovementType   string             `json:"movementType"`
	QuantityChange int                `json:"quantityChange"`
	StockBefore    int                `json:"stockBefore"`
	StockAfter     int                `json:"stockAfter"`
	ReferenceID    string             `json:"referenceId,omitempty"`
	ReferenceModel string             `json:"referenceModel,omitempty"`
	PerformedBy    string             `json:"performedBy"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	Product        *domain.Product    `json:"product,omitempty"`
}

// AdjustmentDTO represents an adjustment reason record in API responses
type AdjustmentDTO struct {
	ID             string    `json:"_id"`
	ProductID      string    `json:"productId"`
	AdjustmentType string    `json:"adjustmentType"`
	QuantityChange int       `json:"quantityChange"`
	Reason         string    `json:"reason"`
	PerformedBy    string    `json:"performedBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ReceiveStockResult is the payload returned after receiving stock
type ReceiveStockResult struct {
	Product  ProductSummaryDTO `json:"product"`
	Movement *StockMovementDTO `json:"movement"`
}

// AdjustStockResult is the payload returned after adjusting stock
type AdjustStockResult struct {
	Product    ProductSummaryDTO `json:"product"`
	Adjustment *AdjustmentDTO    `json:"adjustment"`
}

// DashboardSummaryDTO is the payload of the dashboard summary view
type DashboardSummaryDTO struct {
	TodaySales           float64 `json:"todaySales"`
	CashInRegister       float64 `json:"cashInRegister"`
	PendingPaymentsCount int64   `json:"pendingPaymentsCount"`
	LowStockCount        int64   `json:"lowStockCount"`
}

// SalesAnalysisReport is the payload of the sales analysis report
type SalesAnalysisReport struct {
	Summary        *domain.SalesSummary `json:"summary"`
	DailyBreakdown []*domain.DailySales `json:"dailyBreakdown"`
}

// ProductAnalysisReport is the payload of the product analysis report.
// Summary repeats the top seller, or zero values when the period is empty.
type ProductAnalysisReport struct {
	Summary  *domain.ProductSales   `json:"summary"`
	Products []*domain.ProductSales `json:"products"`
}

// PaymentMethodReport is the payload of the payment method report
type PaymentMethodReport struct {
	GrandTotal     float64                       `json:"grandTotal"`
	PaymentMethods []*domain.PaymentMethodTotals `json:"paymentMethods"`
}

// StockMovementReport is the payload of the stock movement report
type StockMovementReport struct {
	ByType    []*domain.MovementTypeSummary    `json:"byType"`
	ByProduct []*domain.ProductMovementSummary `json:"byProduct"`
}
