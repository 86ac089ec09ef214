package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovementType classifies a stock ledger entry
type MovementType string

const (
	MovementSale       MovementType = "sale"
	MovementReceive    MovementType = "receive"
	MovementAdjustment MovementType = "adjustment"
	MovementReturn     MovementType = "return"
)

// IsValid reports whether the movement type is one of the known values
func (t MovementType) IsValid() bool {
	switch t {
	case MovementSale, MovementReceive, MovementAdjustment, MovementReturn:
		return true
	}
	return false
}

// Reference model names for movement back-links
const (
	ReferenceModelSale       = "Sale"
	ReferenceModelAdjustment = "Adjustment"
)

// MovementReference links a movement to the document that caused it.
// The zero value means the movement stands on its own.
type MovementReference struct {
	ID    primitive.ObjectID
	Model string
}

// SaleReference builds a reference to a sale document
func SaleReference(id primitive.ObjectID) MovementReference {
	return MovementReference{ID: id, Model: ReferenceModelSale}
}

// AdjustmentReference builds a reference to an adjustment document
func AdjustmentReference(id primitive.ObjectID) MovementReference {
	return MovementReference{ID: id, Model: ReferenceModelAdjustment}
}

// IsZero reports whether the reference is unset
func (r MovementReference) IsZero() bool {
	return r.Model == "" && r.ID.IsZero()
}

// StockMovement is one entry in the append-only stock ledger. Entries
// are never updated after creation; QuantityChange is signed and
// StockBefore/StockAfter snapshot the product's stock level around the
// change.
type StockMovement struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	ProductID      primitive.ObjectID  `bson:"productId" json:"productId"`
	ProductName    string              `bson:"productName" json:"productName"`
	MovementType   MovementType        `bson:"movementType" json:"movementType"`
	QuantityChange int                 `bson:"quantityChange" json:"quantityChange"`
	StockBefore    int                 `bson:"stockBefore" json:"stockBefore"`
	StockAfter     int                 `bson:"stockAfter" json:"stockAfter"`
	ReferenceID    *primitive.ObjectID `bson:"referenceId,omitempty" json:"referenceId,omitempty"`
	ReferenceModel string              `bson:"referenceModel,omitempty" json:"referenceModel,omitempty"`
	PerformedBy    primitive.ObjectID  `bson:"performedBy" json:"performedBy"`
	Notes          string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`

	// Product carries the joined product document on read paths. It is
	// never written to the movements collection.
	Product *Product `bson:"product,omitempty" json:"product,omitempty"`
}

// NewStockMovement creates a ledger entry. The reference may be the zero
// MovementReference for movements that stand on their own.
func NewStockMovement(
	product *Product,
	movementType MovementType,
	quantityChange int,
	stockBefore int,
	stockAfter int,
	ref MovementReference,
	performedBy primitive.ObjectID,
	notes string,
) *StockMovement {
	m := &StockMovement{
		ProductID:      product.ID,
		ProductName:    product.Name,
		MovementType:   movementType,
		QuantityChange: quantityChange,
		StockBefore:    stockBefore,
		StockAfter:     stockAfter,
		PerformedBy:    performedBy,
		Notes:          notes,
		CreatedAt:      time.Now(),
	}

	if !ref.IsZero() {
		id := ref.ID
		m.ReferenceID = &id
		m.ReferenceModel = ref.Model
	}

	return m
}

// MovementFilter narrows a ledger query. Nil fields are not applied;
// both date bounds are inclusive and each works on its own.
type MovementFilter struct {
	ProductID *primitive.ObjectID
	From      *time.Time
	To        *time.Time
}
