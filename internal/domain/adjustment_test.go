package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdjustmentType_IsValid(t *testing.T) {
	valid := []AdjustmentType{
		AdjustmentDamage,
		AdjustmentTheft,
		AdjustmentReturn,
		AdjustmentCorrection,
		AdjustmentInitialCount,
		AdjustmentSupplierReturn,
	}
	for _, at := range valid {
		assert.True(t, at.IsValid(), string(at))
	}
	assert.False(t, AdjustmentType("shrinkage").IsValid())
	assert.False(t, AdjustmentType("").IsValid())
}

func TestNewAdjustment(t *testing.T) {
	productID := primitive.NewObjectID()
	performedBy := primitive.NewObjectID()

	a := NewAdjustment(productID, AdjustmentDamage, -3, "dropped during restocking", performedBy)

	assert.Equal(t, productID, a.ProductID)
	assert.Equal(t, AdjustmentDamage, a.AdjustmentType)
	assert.Equal(t, -3, a.QuantityChange)
	assert.Equal(t, "dropped during restocking", a.Reason)
	assert.Equal(t, performedBy, a.PerformedBy)
	assert.False(t, a.CreatedAt.IsZero())
}
