package application

import "time"

// ReceiveStockCommand represents the command to receive stock from a supplier
type ReceiveStockCommand struct {
	ProductID   string
	Quantity    int
	SupplierID  string
	Notes       string
	PerformedBy string
}

// AdjustStockCommand represents the command to manually correct a stock level.
// QuantityChange is signed; zero is a valid no-op correction.
type AdjustStockCommand struct {
	ProductID      string
	AdjustmentType string
	QuantityChange int
	Reason         string
	Notes          string
	PerformedBy    string
}

// ListMovementsQuery represents the query over the stock ledger. All
// fields are optional; both date bounds are inclusive.
type ListMovementsQuery struct {
	ProductID string
	From      *time.Time
	To        *time.Time
}

// ReportPeriodQuery represents the optional date range shared by all reports
type ReportPeriodQuery struct {
	From *time.Time
	To   *time.Time
}
