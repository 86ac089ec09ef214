package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMovementType_IsValid(t *testing.T) {
	for _, mt := range []MovementType{MovementSale, MovementReceive, MovementAdjustment, MovementReturn} {
		assert.True(t, mt.IsValid(), string(mt))
	}
	assert.False(t, MovementType("transfer").IsValid())
	assert.False(t, MovementType("").IsValid())
}

func TestNewStockMovement_WithoutReference(t *testing.T) {
	product := &Product{ID: primitive.NewObjectID(), Name: "Rice 5kg"}
	performedBy := primitive.NewObjectID()

	m := NewStockMovement(product, MovementReceive, 20, 10, 30, MovementReference{}, performedBy, "Received 20 units from supplier")

	assert.Equal(t, product.ID, m.ProductID)
	assert.Equal(t, "Rice 5kg", m.ProductName)
	assert.Equal(t, MovementReceive, m.MovementType)
	assert.Equal(t, 20, m.QuantityChange)
	assert.Equal(t, 10, m.StockBefore)
	assert.Equal(t, 30, m.StockAfter)
	assert.Nil(t, m.ReferenceID)
	assert.Empty(t, m.ReferenceModel)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestNewStockMovement_WithAdjustmentReference(t *testing.T) {
	product := &Product{ID: primitive.NewObjectID(), Name: "Rice 5kg"}
	adjustmentID := primitive.NewObjectID()

	m := NewStockMovement(product, MovementAdjustment, -5, 30, 25, AdjustmentReference(adjustmentID), primitive.NewObjectID(), "damaged in storage")

	require.NotNil(t, m.ReferenceID)
	assert.Equal(t, adjustmentID, *m.ReferenceID)
	assert.Equal(t, ReferenceModelAdjustment, m.ReferenceModel)
	assert.Equal(t, -5, m.QuantityChange)
}

func TestMovementReference_IsZero(t *testing.T) {
	assert.True(t, MovementReference{}.IsZero())
	assert.False(t, SaleReference(primitive.NewObjectID()).IsZero())
	assert.False(t, AdjustmentReference(primitive.NewObjectID()).IsZero())
}
