package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdjustmentType names why a manual stock correction happened
type AdjustmentType string

const (
	AdjustmentDamage         AdjustmentType = "damage"
	AdjustmentTheft          AdjustmentType = "theft"
	AdjustmentReturn         AdjustmentType = "return"
	AdjustmentCorrection     AdjustmentType = "correction"
	AdjustmentInitialCount   AdjustmentType = "initial_count"
	AdjustmentSupplierReturn AdjustmentType = "supplier_return"
)

// IsValid reports whether the adjustment type is one of the known values
func (t AdjustmentType) IsValid() bool {
	switch t {
	case AdjustmentDamage, AdjustmentTheft, AdjustmentReturn,
		AdjustmentCorrection, AdjustmentInitialCount, AdjustmentSupplierReturn:
		return true
	}
	return false
}

// Adjustment records why a manual stock correction was made. The
// matching StockMovement entry carries the before/after snapshots and
// points back at this record.
type Adjustment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID      primitive.ObjectID `bson:"productId" json:"productId"`
	AdjustmentType AdjustmentType     `bson:"adjustmentType" json:"adjustmentType"`
	QuantityChange int                `bson:"quantityChange" json:"quantityChange"`
	Reason         string             `bson:"reason" json:"reason"`
	PerformedBy    primitive.ObjectID `bson:"performedBy" json:"performedBy"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewAdjustment creates an adjustment reason record
func NewAdjustment(
	productID primitive.ObjectID,
	adjustmentType AdjustmentType,
	quantityChange int,
	reason string,
	performedBy primitive.ObjectID,
) *Adjustment {
	return &Adjustment{
		ProductID:      productID,
		AdjustmentType: adjustmentType,
		QuantityChange: quantityChange,
		Reason:         reason,
		PerformedBy:    performedBy,
		CreatedAt:      time.Now(),
	}
}
