package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the catalog item whose stock level the inventory subsystem
// maintains. CurrentStock is only ever changed through Receive and Adjust
// so every change leaves a StockMovement behind.
type Product struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name                string              `bson:"name" json:"name"`
	Brand               string              `bson:"brand,omitempty" json:"brand,omitempty"`
	Location            string              `bson:"location,omitempty" json:"location,omitempty"`
	Unit                string              `bson:"unit" json:"unit"`
	SKU                 string              `bson:"SKU" json:"SKU"`
	CurrentStock        int                 `bson:"currentStock" json:"currentStock"`
	ReorderLevel        int                 `bson:"reorderLevel" json:"reorderLevel"`
	PreferredStockLevel int                 `bson:"preferredStockLevel" json:"preferredStockLevel"`
	PurchaseCost        float64             `bson:"purchaseCost" json:"purchaseCost"`
	SellingPrice        float64             `bson:"sellingPrice" json:"sellingPrice"`
	SupplierID          *primitive.ObjectID `bson:"supplierId,omitempty" json:"supplierId,omitempty"`
	IsActive            bool                `bson:"isActive" json:"isActive"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// IsLowStock reports whether the product is at or below its reorder level
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderLevel
}

// Receive increases the stock level by quantity and returns the stock
// before and after the change. Quantity must already be validated as
// positive by the caller.
func (p *Product) Receive(quantity int) (stockBefore, stockAfter int) {
	stockBefore = p.CurrentStock
	stockAfter = stockBefore + quantity
	p.CurrentStock = stockAfter
	p.UpdatedAt = time.Now()
	return stockBefore, stockAfter
}

// Adjust applies a signed stock change and returns the stock before and
// after. It fails with ErrInsufficientStock when the change would take
// the stock level below zero; zero-change adjustments are allowed, they
// still leave an audit trail.
func (p *Product) Adjust(quantityChange int) (stockBefore, stockAfter int, err error) {
	stockBefore = p.CurrentStock
	stockAfter = stockBefore + quantityChange

	if stockAfter < 0 {
		return stockBefore, stockBefore, ErrInsufficientStock
	}

	p.CurrentStock = stockAfter
	p.UpdatedAt = time.Now()
	return stockBefore, stockAfter, nil
}

// ProductSummary is the trimmed product view embedded in operation
// responses.
type ProductSummary struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	CurrentStock int                `bson:"currentStock" json:"currentStock"`
}

// Summary returns the trimmed view of the product
func (p *Product) Summary() ProductSummary {
	return ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		CurrentStock: p.CurrentStock,
	}
}

// ReorderAlert is the projection returned by the dashboard low-stock view
type ReorderAlert struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	CurrentStock int                `bson:"currentStock" json:"currentStock"`
	ReorderLevel int                `bson:"reorderLevel" json:"reorderLevel"`
}
