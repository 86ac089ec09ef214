package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethod is how a sale (or part of one) was paid
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentPOS          PaymentMethod = "pos"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid reports whether the payment method is one of the known values
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentPOS, PaymentBankTransfer:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a sale
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPending PaymentStatus = "pending"
)

// SaleItem is one line of a sale, with the product name and price frozen
// at the time of sale
type SaleItem struct {
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	UnitPrice   float64            `bson:"unitPrice" json:"unitPrice"`
	Total       float64            `bson:"total" json:"total"`
}

// Payment is one tender against a sale; a sale can carry several
type Payment struct {
	Method    PaymentMethod `bson:"method" json:"method"`
	Amount    float64       `bson:"amount" json:"amount"`
	Reference string        `bson:"reference,omitempty" json:"reference,omitempty"`
}

// CustomerSnapshot freezes the customer identity on the sale document
type CustomerSnapshot struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
}

// Sale is the checkout document. The inventory subsystem only reads
// sales, for the dashboard and reports; writing them belongs to the
// checkout flow.
type Sale struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	InvoiceID        string              `bson:"invoiceId" json:"invoiceId"`
	SalesPersonID    primitive.ObjectID  `bson:"salesPersonId" json:"salesPersonId"`
	CustomerID       *primitive.ObjectID `bson:"customerId,omitempty" json:"customerId,omitempty"`
	CustomerSnapshot CustomerSnapshot    `bson:"customerSnapshot" json:"customerSnapshot"`
	Items            []SaleItem          `bson:"items" json:"items"`
	Payments         []Payment           `bson:"payments" json:"payments"`
	SubTotal         float64             `bson:"subTotal" json:"subTotal"`
	DiscountAmount   float64             `bson:"discountAmount" json:"discountAmount"`
	VATRate          float64             `bson:"vatRate" json:"vatRate"`
	VATAmount        float64             `bson:"vatAmount" json:"vatAmount"`
	GrandTotal       float64             `bson:"grandTotal" json:"grandTotal"`
	AmountPaid       float64             `bson:"amountPaid" json:"amountPaid"`
	PaymentStatus    PaymentStatus       `bson:"paymentStatus" json:"paymentStatus"`
	Notes            string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// RecentSale is the trimmed sale view shown on the dashboard
type RecentSale struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	InvoiceID        string             `bson:"invoiceId" json:"invoiceId"`
	GrandTotal       float64            `bson:"grandTotal" json:"grandTotal"`
	PaymentStatus    PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	CustomerSnapshot CustomerSnapshot   `bson:"customerSnapshot" json:"customerSnapshot"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// SalesSummary aggregates sales over a period
type SalesSummary struct {
	TotalSale                float64 `bson:"totalSale" json:"totalSale"`
	TotalTransactions        int64   `bson:"totalTransactions" json:"totalTransactions"`
	AverageTransactionsValue float64 `bson:"averageTransactionsValue" json:"averageTransactionsValue"`
}

// DailySales is one day's slice of the sales summary
type DailySales struct {
	Date                     string  `bson:"date" json:"date"`
	TotalSale                float64 `bson:"totalSale" json:"totalSale"`
	TotalTransactions        int64   `bson:"totalTransactions" json:"totalTransactions"`
	AverageTransactionsValue float64 `bson:"averageTransactionsValue" json:"averageTransactionsValue"`
}

// ProductSales aggregates sold line items per product
type ProductSales struct {
	ProductName       string  `bson:"productName" json:"productName,omitempty"`
	TotalQuantitySold int64   `bson:"totalQuantitySold" json:"totalQuantitySold"`
	TotalTransactions int64   `bson:"totalTransactions" json:"totalTransactions"`
	TotalRevenue      float64 `bson:"totalRevenue" json:"totalRevenue"`
	AvgValue          float64 `bson:"avgValue" json:"avgValue"`
}

// PaymentMethodTotals aggregates tendered payments per method.
// Percentage is filled in after aggregation, against the grand total of
// all methods in the period.
type PaymentMethodTotals struct {
	Method            PaymentMethod `bson:"method" json:"method"`
	TotalAmount       float64       `bson:"totalAmount" json:"totalAmount"`
	TotalTransactions int64         `bson:"totalTransactions" json:"totalTransactions"`
	Percentage        float64       `bson:"-" json:"percentage"`
}

// MovementTypeSummary aggregates ledger entries per movement type
type MovementTypeSummary struct {
	MovementType        MovementType `bson:"movementType" json:"movementType"`
	TotalMovements      int64        `bson:"totalMovements" json:"totalMovements"`
	TotalQuantityChange int64        `bson:"totalQuantityChange" json:"totalQuantityChange"`
}

// ProductMovementSummary aggregates ledger entries per product.
// TotalDeducted keeps its negative sign so NetChange is always
// TotalReceived + TotalDeducted.
type ProductMovementSummary struct {
	ProductName    string `bson:"productName" json:"productName"`
	TotalMovements int64  `bson:"totalMovements" json:"totalMovements"`
	TotalReceived  int64  `bson:"totalReceived" json:"totalReceived"`
	TotalDeducted  int64  `bson:"totalDeducted" json:"totalDeducted"`
	NetChange      int64  `bson:"netChange" json:"netChange"`
}
