package domain

import "time"

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	EventType() string
	Subject() string
	OccurredAt() time.Time
}

// StockReceivedEvent is published after stock is received from a supplier
type StockReceivedEvent struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	StockBefore int       `json:"stockBefore"`
	StockAfter  int       `json:"stockAfter"`
	SupplierID  string    `json:"supplierId"`
	MovementID  string    `json:"movementId"`
	ReceivedAt  time.Time `json:"receivedAt"`
}

func (e *StockReceivedEvent) EventType() string     { return "pos.inventory.stock-received" }
func (e *StockReceivedEvent) Subject() string       { return e.ProductID }
func (e *StockReceivedEvent) OccurredAt() time.Time { return e.ReceivedAt }

// StockAdjustedEvent is published after a manual stock correction
type StockAdjustedEvent struct {
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	AdjustmentID   string    `json:"adjustmentId"`
	AdjustmentType string    `json:"adjustmentType"`
	QuantityChange int       `json:"quantityChange"`
	StockBefore    int       `json:"stockBefore"`
	StockAfter     int       `json:"stockAfter"`
	Reason         string    `json:"reason"`
	AdjustedAt     time.Time `json:"adjustedAt"`
}

func (e *StockAdjustedEvent) EventType() string     { return "pos.inventory.stock-adjusted" }
func (e *StockAdjustedEvent) Subject() string       { return e.ProductID }
func (e *StockAdjustedEvent) OccurredAt() time.Time { return e.AdjustedAt }

// LowStockAlertEvent is published when a stock change leaves a product
// at or below its reorder level
type LowStockAlertEvent struct {
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	CurrentStock int       `json:"currentStock"`
	ReorderLevel int       `json:"reorderLevel"`
	AlertedAt    time.Time `json:"alertedAt"`
}

func (e *LowStockAlertEvent) EventType() string     { return "pos.inventory.low-stock-alert" }
func (e *LowStockAlertEvent) Subject() string       { return e.ProductID }
func (e *LowStockAlertEvent) OccurredAt() time.Time { return e.AlertedAt }
