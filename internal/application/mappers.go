package application

import (
	"github.com/pos-platform/inventory-service/internal/domain"
)

// ToProductSummaryDTO converts a product to its trimmed response view
func ToProductSummaryDTO(p *domain.Product) ProductSummaryDTO {
	return ProductSummaryDTO{
		ID:           p.ID.Hex(),
		Name:         p.Name,
		CurrentStock: p.CurrentStock,
	}
}

// ToStockMovementDTO converts a stock movement to its response view
func ToStockMovementDTO(m *domain.StockMovement) *StockMovementDTO {
	dto := &StockMovementDTO{
		ID:             m.ID.Hex(),
		ProductID:      m.ProductID.Hex(),
		ProductName:    m.ProductName,
		MovementType:   string(m.MovementType),
		QuantityChange: m.QuantityChange,
		StockBefore:    m.StockBefore,
		StockAfter:     m.StockAfter,
		ReferenceModel: m.ReferenceModel,
		PerformedBy:    m.PerformedBy.Hex(),
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		Product:        m.Product,
	}

	if m.ReferenceID != nil {
		dto.ReferenceID = m.ReferenceID.Hex()
	}

	return dto
}

// ToStockMovementDTOs converts a slice of stock movements
func ToStockMovementDTOs(movements []*domain.StockMovement) []*StockMovementDTO {
	dtos := make([]*StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		dtos = append(dtos, ToStockMovementDTO(m))
	}
	return dtos
}

// ToAdjustmentDTO converts an adjustment to its response view
func ToAdjustmentDTO(a *domain.Adjustment) *AdjustmentDTO {
	return &AdjustmentDTO{
		ID:             a.ID.Hex(),
		ProductID:      a.ProductID.Hex(),
		AdjustmentType: string(a.AdjustmentType),
		QuantityChange: a.QuantityChange,
		Reason:         a.Reason,
		PerformedBy:    a.PerformedBy.Hex(),
		CreatedAt:      a.CreatedAt,
	}
}
