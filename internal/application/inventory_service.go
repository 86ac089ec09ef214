package application

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pos-platform/inventory-service/pkg/errors"
	"github.com/pos-platform/inventory-service/pkg/logging"
	"github.com/pos-platform/inventory-service/pkg/metrics"

	"github.com/pos-platform/inventory-service/internal/domain"
)

// InventoryService handles stock mutations and ledger queries. Writes
// are deliberately not transactional: the product update lands first and
// the ledger entry follows, mirroring how the back office has always
// operated. A crash between the two loses the paper trail entry, never
// the stock level.
type InventoryService struct {
	products    domain.ProductRepository
	movements   domain.StockMovementRepository
	adjustments domain.AdjustmentRepository
	audit       domain.AuditRecorder
	publisher   domain.EventPublisher
	metrics     *metrics.Metrics
	logger      *logging.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	products domain.ProductRepository,
	movements domain.StockMovementRepository,
	adjustments domain.AdjustmentRepository,
	audit domain.AuditRecorder,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
	logger *logging.Logger,
) *InventoryService {
	return &InventoryService{
		products:    products,
		movements:   movements,
		adjustments: adjustments,
		audit:       audit,
		publisher:   publisher,
		metrics:     m,
		logger:      logger,
	}
}

// ReceiveStock books a shipment from a supplier: increases the product's
// stock level and appends a receive entry to the ledger.
func (s *InventoryService) ReceiveStock(ctx context.Context, cmd ReceiveStockCommand) (*ReceiveStockResult, error) {
	if cmd.Quantity <= 0 {
		return nil, errors.ErrValidation("Quantity must be a positive number")
	}

	productID, err := primitive.ObjectIDFromHex(cmd.ProductID)
	if err != nil {
		return nil, errors.ErrNotFound("Product")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if err == domain.ErrProductNotFound {
			return nil, errors.ErrNotFound("Product")
		}
		s.logger.Error("Failed to load product", "productId", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	stockBefore, stockAfter := product.Receive(cmd.Quantity)

	if err := s.products.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", "productId", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	notes := cmd.Notes
	if notes == "" {
		notes = fmt.Sprintf("Received %d units from supplier", cmd.Quantity)
	}

	movement := domain.NewStockMovement(
		product,
		domain.MovementReceive,
		cmd.Quantity,
		stockBefore,
		stockAfter,
		domain.MovementReference{},
		s.performedBy(cmd.PerformedBy),
		notes,
	)

	if err := s.movements.Insert(ctx, movement); err != nil {
		s.logger.Error("Failed to append stock movement", "productId", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to append stock movement: %w", err)
	}

	s.recordAudit(ctx, domain.AuditActionReceiveStock,
		fmt.Sprintf("Received %d units of %s (%d → %d)", cmd.Quantity, product.Name, stockBefore, stockAfter))

	if s.metrics != nil {
		s.metrics.RecordStockReceived(cmd.Quantity)
	}

	s.publish(ctx, &domain.StockReceivedEvent{
		ProductID:   product.ID.Hex(),
		ProductName: product.Name,
		Quantity:    cmd.Quantity,
		StockBefore: stockBefore,
		StockAfter:  stockAfter,
		SupplierID:  cmd.SupplierID,
		MovementID:  movement.ID.Hex(),
		ReceivedAt:  movement.CreatedAt,
	})

	s.logger.Info("Received stock",
		"productId", cmd.ProductID,
		"quantity", cmd.Quantity,
		"stockBefore", stockBefore,
		"stockAfter", stockAfter,
	)

	return &ReceiveStockResult{
		Product:  ToProductSummaryDTO(product),
		Movement: ToStockMovementDTO(movement),
	}, nil
}

// AdjustStock books a manual stock correction: records the reason, moves
// the stock level and appends an adjustment entry to the ledger. The
// change is rejected when it would take the stock level below zero; zero
// stays a valid floor, and a zero change still leaves a full trail.
func (s *InventoryService) AdjustStock(ctx context.Context, cmd AdjustStockCommand) (*AdjustStockResult, error) {
	adjustmentType := domain.AdjustmentType(cmd.AdjustmentType)
	if !adjustmentType.IsValid() {
		return nil, errors.ErrValidation("Product ID, adjustment type, quantity change, and reason are required")
	}

	productID, err := primitive.ObjectIDFromHex(cmd.ProductID)
	if err != nil {
		return nil, errors.ErrNotFound("Product")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if err == domain.ErrProductNotFound {
			return nil, errors.ErrNotFound("Product")
		}
		s.logger.Error("Failed to load product", "productId", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	stockBefore, stockAfter, err := product.Adjust(cmd.QuantityChange)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordStockRejection("insufficient_stock")
		}
		return nil, errors.ErrInsufficientStock("Insufficient stock for this adjustment")
	}

	performedBy := s.performedBy(cmd.PerformedBy)

	// The reason record goes in first so the ledger entry can point at it
	adjustment := domain.NewAdjustment(product.ID, adjustmentType, cmd.QuantityChange, cmd.Reason, performedBy)
	if err := s.adjustments.Insert(ctx, adjustment); err != nil {
		s.logger.Error("Failed to insert adjustment", "productId", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to insert adjustment: %w", err)
	}

	if err := s.products.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", "productId", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	notes := cmd.Notes
	if notes == "" {
		notes = cmd.Reason
	}

	movement := domain.NewStockMovement(
		product,
		domain.MovementAdjustment,
		cmd.QuantityChange,
		stockBefore,
		stockAfter,
		domain.AdjustmentReference(adjustment.ID),
		performedBy,
		notes,
	)

	if err := s.movements.Insert(ctx, movement); err != nil {
		s.logger.Error("Failed to append stock movement", "productId", cmd.ProductID, "error", err)
		return nil, fmt.Errorf("failed to append stock movement: %w", err)
	}

	s.recordAudit(ctx, domain.AuditActionAdjustStock,
		fmt.Sprintf("Adjusted %s: %s units (%s) — %s", product.Name, signed(cmd.QuantityChange), cmd.AdjustmentType, cmd.Reason))

	if s.metrics != nil {
		s.metrics.RecordStockAdjusted(cmd.AdjustmentType, cmd.QuantityChange)
	}

	s.publish(ctx, &domain.StockAdjustedEvent{
		ProductID:      product.ID.Hex(),
		ProductName:    product.Name,
		AdjustmentID:   adjustment.ID.Hex(),
		AdjustmentType: cmd.AdjustmentType,
		QuantityChange: cmd.QuantityChange,
		StockBefore:    stockBefore,
		StockAfter:     stockAfter,
		Reason:         cmd.Reason,
		AdjustedAt:     adjustment.CreatedAt,
	})

	if product.IsLowStock() {
		s.publish(ctx, &domain.LowStockAlertEvent{
			ProductID:    product.ID.Hex(),
			ProductName:  product.Name,
			CurrentStock: product.CurrentStock,
			ReorderLevel: product.ReorderLevel,
			AlertedAt:    time.Now(),
		})
	}

	s.logger.Info("Adjusted stock",
		"productId", cmd.ProductID,
		"adjustmentType", cmd.AdjustmentType,
		"quantityChange", cmd.QuantityChange,
		"stockBefore", stockBefore,
		"stockAfter", stockAfter,
	)

	return &AdjustStockResult{
		Product:    ToProductSummaryDTO(product),
		Adjustment: ToAdjustmentDTO(adjustment),
	}, nil
}

// ListMovements returns ledger entries newest first, optionally narrowed
// by product and an inclusive date range
func (s *InventoryService) ListMovements(ctx context.Context, query ListMovementsQuery) ([]*StockMovementDTO, error) {
	filter := domain.MovementFilter{From: query.From, To: query.To}

	if query.ProductID != "" {
		productID, err := primitive.ObjectIDFromHex(query.ProductID)
		if err != nil {
			// an unknown product simply matches nothing
			return []*StockMovementDTO{}, nil
		}
		filter.ProductID = &productID
	}

	movements, err := s.movements.Find(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list stock movements", "error", err)
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}

	return ToStockMovementDTOs(movements), nil
}

// ListLowStock returns active products at or below their reorder level
func (s *InventoryService) ListLowStock(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.products.FindLowStock(ctx)
	if err != nil {
		s.logger.Error("Failed to list low stock products", "error", err)
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}

// performedBy resolves the acting user, falling back to a generated
// system actor when none was supplied
func (s *InventoryService) performedBy(raw string) primitive.ObjectID {
	if raw != "" {
		if id, err := primitive.ObjectIDFromHex(raw); err == nil {
			return id
		}
	}
	return primitive.NewObjectID()
}

// recordAudit writes an audit trail entry. Failures are logged and
// counted but never fail the stock operation.
func (s *InventoryService) recordAudit(ctx context.Context, action, details string) {
	if s.audit == nil {
		return
	}

	entry := domain.NewAuditEntry(nil, "System", action, details, domain.AuditCategoryInventory)
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Warn("Failed to record audit entry", "action", action, "error", err)
		if s.metrics != nil {
			s.metrics.RecordAuditFailure()
		}
	}
}

// publish sends a domain event. Publishing is fire and forget; a broker
// outage must not fail the stock operation.
func (s *InventoryService) publish(ctx context.Context, event domain.DomainEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "eventType", event.EventType(), "error", err)
	}
}

// signed formats a quantity change the way the audit trail shows it:
// positive changes carry an explicit plus sign, zero and negatives don't
func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
