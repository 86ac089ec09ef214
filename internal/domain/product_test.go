package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProduct_Receive(t *testing.T) {
	p := &Product{Name: "Rice 5kg", CurrentStock: 10}

	before, after := p.Receive(20)

	assert.Equal(t, 10, before)
	assert.Equal(t, 30, after)
	assert.Equal(t, 30, p.CurrentStock)
}

func TestProduct_Adjust(t *testing.T) {
	tests := []struct {
		name           string
		currentStock   int
		quantityChange int
		wantAfter      int
		wantErr        error
	}{
		{name: "negative adjustment", currentStock: 30, quantityChange: -5, wantAfter: 25},
		{name: "positive adjustment", currentStock: 25, quantityChange: 10, wantAfter: 35},
		{name: "zero change is a no-op", currentStock: 25, quantityChange: 0, wantAfter: 25},
		{name: "down to exactly zero", currentStock: 25, quantityChange: -25, wantAfter: 0},
		{name: "below zero rejected", currentStock: 25, quantityChange: -30, wantErr: ErrInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{CurrentStock: tt.currentStock}

			before, after, err := p.Adjust(tt.quantityChange)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				// stock level untouched on rejection
				assert.Equal(t, tt.currentStock, p.CurrentStock)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.currentStock, before)
			assert.Equal(t, tt.wantAfter, after)
			assert.Equal(t, tt.wantAfter, p.CurrentStock)
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	assert.True(t, (&Product{CurrentStock: 3, ReorderLevel: 5}).IsLowStock())
	assert.True(t, (&Product{CurrentStock: 5, ReorderLevel: 5}).IsLowStock())
	assert.False(t, (&Product{CurrentStock: 6, ReorderLevel: 5}).IsLowStock())
}

func TestProduct_Summary(t *testing.T) {
	id := primitive.NewObjectID()
	p := &Product{ID: id, Name: "Rice 5kg", SKU: "RICE-5KG", CurrentStock: 12}

	s := p.Summary()

	assert.Equal(t, id, s.ID)
	assert.Equal(t, "Rice 5kg", s.Name)
	assert.Equal(t, 12, s.CurrentStock)
}
