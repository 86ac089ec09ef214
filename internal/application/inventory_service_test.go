package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/pos-platform/inventory-service/pkg/errors"

	"github.com/pos-platform/inventory-service/internal/domain"
)

func newTestService(products *fakeProductRepo, movements *fakeMovementRepo, adjustments *fakeAdjustmentRepo, audit *fakeAuditRecorder, publisher *fakePublisher) *InventoryService {
	return NewInventoryService(products, movements, adjustments, audit, publisher, nil, testLogger())
}

func testProduct(stock, reorderLevel int) *domain.Product {
	return &domain.Product{
		ID:           primitive.NewObjectID(),
		Name:         "Rice 5kg",
		SKU:          "RICE-5KG",
		CurrentStock: stock,
		ReorderLevel: reorderLevel,
		IsActive:     true,
	}
}

func TestInventoryService_ReceiveStock(t *testing.T) {
	product := testProduct(10, 5)
	products := newFakeProductRepo(product)
	movements := &fakeMovementRepo{}
	audit := &fakeAuditRecorder{}
	publisher := &fakePublisher{}
	svc := newTestService(products, movements, &fakeAdjustmentRepo{}, audit, publisher)

	result, err := svc.ReceiveStock(context.Background(), ReceiveStockCommand{
		ProductID:  product.ID.Hex(),
		Quantity:   20,
		SupplierID: primitive.NewObjectID().Hex(),
	})

	require.NoError(t, err)
	assert.Equal(t, 30, result.Product.CurrentStock)
	assert.Equal(t, "Rice 5kg", result.Product.Name)

	require.Len(t, movements.movements, 1)
	m := movements.movements[0]
	assert.Equal(t, domain.MovementReceive, m.MovementType)
	assert.Equal(t, 20, m.QuantityChange)
	assert.Equal(t, 10, m.StockBefore)
	assert.Equal(t, 30, m.StockAfter)
	assert.Nil(t, m.ReferenceID)
	assert.Equal(t, "Received 20 units from supplier", m.Notes)

	require.NotNil(t, result.Movement)
	assert.Equal(t, m.ID.Hex(), result.Movement.ID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.AuditActionReceiveStock, audit.entries[0].Action)
	assert.Equal(t, "Received 20 units of Rice 5kg (10 → 30)", audit.entries[0].Details)
	assert.Equal(t, domain.AuditCategoryInventory, audit.entries[0].Category)

	require.Len(t, publisher.events, 1)
	received, ok := publisher.events[0].(*domain.StockReceivedEvent)
	require.True(t, ok)
	assert.Equal(t, 20, received.Quantity)
	assert.Equal(t, 30, received.StockAfter)
}

func TestInventoryService_ReceiveStock_CustomNotes(t *testing.T) {
	product := testProduct(0, 5)
	movements := &fakeMovementRepo{}
	svc := newTestService(newFakeProductRepo(product), movements, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, &fakePublisher{})

	_, err := svc.ReceiveStock(context.Background(), ReceiveStockCommand{
		ProductID:  product.ID.Hex(),
		Quantity:   5,
		SupplierID: primitive.NewObjectID().Hex(),
		Notes:      "shipment PO-1042",
	})

	require.NoError(t, err)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, "shipment PO-1042", movements.movements[0].Notes)
}

func TestInventoryService_ReceiveStock_InvalidQuantity(t *testing.T) {
	product := testProduct(10, 5)
	svc := newTestService(newFakeProductRepo(product), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, &fakePublisher{})

	for _, quantity := range []int{0, -5} {
		_, err := svc.ReceiveStock(context.Background(), ReceiveStockCommand{
			ProductID:  product.ID.Hex(),
			Quantity:   quantity,
			SupplierID: primitive.NewObjectID().Hex(),
		})

		require.Error(t, err, fmt.Sprintf("quantity %d", quantity))
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
		assert.Equal(t, "Quantity must be a positive number", appErr.Message)
	}

	// stock level untouched
	assert.Equal(t, 10, product.CurrentStock)
}

func TestInventoryService_ReceiveStock_ProductNotFound(t *testing.T) {
	svc := newTestService(newFakeProductRepo(), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, &fakePublisher{})

	for _, productID := range []string{primitive.NewObjectID().Hex(), "not-a-hex-id"} {
		_, err := svc.ReceiveStock(context.Background(), ReceiveStockCommand{
			ProductID:  productID,
			Quantity:   5,
			SupplierID: primitive.NewObjectID().Hex(),
		})

		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
		assert.Equal(t, "Product not found", appErr.Message)
	}
}

func TestInventoryService_AdjustStock_NegativeChange(t *testing.T) {
	product := testProduct(30, 5)
	products := newFakeProductRepo(product)
	movements := &fakeMovementRepo{}
	adjustments := &fakeAdjustmentRepo{}
	audit := &fakeAuditRecorder{}
	publisher := &fakePublisher{}
	svc := newTestService(products, movements, adjustments, audit, publisher)

	result, err := svc.AdjustStock(context.Background(), AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "damage",
		QuantityChange: -5,
		Reason:         "dropped during restocking",
	})

	require.NoError(t, err)
	assert.Equal(t, 25, result.Product.CurrentStock)
	assert.Equal(t, "damage", result.Adjustment.AdjustmentType)
	assert.Equal(t, -5, result.Adjustment.QuantityChange)

	require.Len(t, adjustments.adjustments, 1)
	adjustment := adjustments.adjustments[0]

	require.Len(t, movements.movements, 1)
	m := movements.movements[0]
	assert.Equal(t, domain.MovementAdjustment, m.MovementType)
	assert.Equal(t, -5, m.QuantityChange)
	assert.Equal(t, 30, m.StockBefore)
	assert.Equal(t, 25, m.StockAfter)
	require.NotNil(t, m.ReferenceID)
	assert.Equal(t, adjustment.ID, *m.ReferenceID)
	assert.Equal(t, domain.ReferenceModelAdjustment, m.ReferenceModel)
	// notes default to the reason
	assert.Equal(t, "dropped during restocking", m.Notes)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.AuditActionAdjustStock, audit.entries[0].Action)
	assert.Equal(t, "Adjusted Rice 5kg: -5 units (damage) — dropped during restocking", audit.entries[0].Details)
}

func TestInventoryService_AdjustStock_PositiveChangeAuditSign(t *testing.T) {
	product := testProduct(25, 5)
	audit := &fakeAuditRecorder{}
	svc := newTestService(newFakeProductRepo(product), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, audit, &fakePublisher{})

	_, err := svc.AdjustStock(context.Background(), AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "correction",
		QuantityChange: 10,
		Reason:         "recount after stocktake",
	})

	require.NoError(t, err)
	assert.Equal(t, 35, product.CurrentStock)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "Adjusted Rice 5kg: +10 units (correction) — recount after stocktake", audit.entries[0].Details)
}

func TestInventoryService_AdjustStock_ZeroChange(t *testing.T) {
	product := testProduct(25, 5)
	movements := &fakeMovementRepo{}
	adjustments := &fakeAdjustmentRepo{}
	svc := newTestService(newFakeProductRepo(product), movements, adjustments, &fakeAuditRecorder{}, &fakePublisher{})

	result, err := svc.AdjustStock(context.Background(), AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "correction",
		QuantityChange: 0,
		Reason:         "count verified, no change",
	})

	require.NoError(t, err)
	assert.Equal(t, 25, result.Product.CurrentStock)
	// a zero-change correction still leaves a full paper trail
	assert.Len(t, adjustments.adjustments, 1)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, 25, movements.movements[0].StockBefore)
	assert.Equal(t, 25, movements.movements[0].StockAfter)
}

func TestInventoryService_AdjustStock_InsufficientStock(t *testing.T) {
	product := testProduct(25, 5)
	movements := &fakeMovementRepo{}
	adjustments := &fakeAdjustmentRepo{}
	svc := newTestService(newFakeProductRepo(product), movements, adjustments, &fakeAuditRecorder{}, &fakePublisher{})

	_, err := svc.AdjustStock(context.Background(), AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "theft",
		QuantityChange: -30,
		Reason:         "suspected theft",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInsufficientStock, appErr.Code)
	assert.Equal(t, "Insufficient stock for this adjustment", appErr.Message)

	// nothing written, stock level untouched
	assert.Equal(t, 25, product.CurrentStock)
	assert.Empty(t, adjustments.adjustments)
	assert.Empty(t, movements.movements)
}

// The reason record goes in ahead of the product save and the ledger
// entry; if it can't be written, nothing else may be either.
func TestInventoryService_AdjustStock_AdjustmentInsertFailure(t *testing.T) {
	product := testProduct(25, 5)
	products := newFakeProductRepo(product)
	movements := &fakeMovementRepo{}
	adjustments := &fakeAdjustmentRepo{insertErr: fmt.Errorf("adjustments collection unavailable")}
	audit := &fakeAuditRecorder{}
	publisher := &fakePublisher{}
	svc := newTestService(products, movements, adjustments, audit, publisher)

	_, err := svc.AdjustStock(context.Background(), AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "damage",
		QuantityChange: -5,
		Reason:         "dropped during restocking",
	})

	require.Error(t, err)

	// no product save, no ledger entry, no trail of any kind
	assert.Empty(t, products.saved)
	assert.Empty(t, movements.movements)
	assert.Empty(t, audit.entries)
	assert.Empty(t, publisher.events)
}

func TestInventoryService_AdjustStock_InvalidType(t *testing.T) {
	product := testProduct(25, 5)
	svc := newTestService(newFakeProductRepo(product), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, &fakePublisher{})

	_, err := svc.AdjustStock(context.Background(), AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "shrinkage",
		QuantityChange: -1,
		Reason:         "unknown type",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationError, appErr.Code)
}

func TestInventoryService_AdjustStock_LowStockAlert(t *testing.T) {
	product := testProduct(10, 8)
	publisher := &fakePublisher{}
	svc := newTestService(newFakeProductRepo(product), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, publisher)

	_, err := svc.AdjustStock(context.Background(), AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "damage",
		QuantityChange: -4,
		Reason:         "water damage",
	})

	require.NoError(t, err)
	require.Len(t, publisher.events, 2)
	alert, ok := publisher.events[1].(*domain.LowStockAlertEvent)
	require.True(t, ok)
	assert.Equal(t, 6, alert.CurrentStock)
	assert.Equal(t, 8, alert.ReorderLevel)
}

func TestInventoryService_AuditFailureDoesNotFailOperation(t *testing.T) {
	product := testProduct(10, 5)
	audit := &fakeAuditRecorder{recordErr: fmt.Errorf("audit store down")}
	svc := newTestService(newFakeProductRepo(product), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, audit, &fakePublisher{})

	_, err := svc.ReceiveStock(context.Background(), ReceiveStockCommand{
		ProductID:  product.ID.Hex(),
		Quantity:   5,
		SupplierID: primitive.NewObjectID().Hex(),
	})

	require.NoError(t, err)
	assert.Equal(t, 15, product.CurrentStock)
}

func TestInventoryService_PublishFailureDoesNotFailOperation(t *testing.T) {
	product := testProduct(10, 5)
	publisher := &fakePublisher{publishErr: fmt.Errorf("broker unreachable")}
	svc := newTestService(newFakeProductRepo(product), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, publisher)

	_, err := svc.ReceiveStock(context.Background(), ReceiveStockCommand{
		ProductID:  product.ID.Hex(),
		Quantity:   5,
		SupplierID: primitive.NewObjectID().Hex(),
	})

	require.NoError(t, err)
}

// A receive followed by two adjustments, the second of which overdraws
// the stock and must bounce without touching anything.
func TestInventoryService_ReceiveAdjustSequence(t *testing.T) {
	product := testProduct(10, 5)
	movements := &fakeMovementRepo{}
	svc := newTestService(newFakeProductRepo(product), movements, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, &fakePublisher{})
	ctx := context.Background()

	_, err := svc.ReceiveStock(ctx, ReceiveStockCommand{
		ProductID:  product.ID.Hex(),
		Quantity:   20,
		SupplierID: primitive.NewObjectID().Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, product.CurrentStock)

	_, err = svc.AdjustStock(ctx, AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "damage",
		QuantityChange: -5,
		Reason:         "damaged in transit",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, product.CurrentStock)

	_, err = svc.AdjustStock(ctx, AdjustStockCommand{
		ProductID:      product.ID.Hex(),
		AdjustmentType: "theft",
		QuantityChange: -30,
		Reason:         "stock check discrepancy",
	})
	require.Error(t, err)
	assert.Equal(t, 25, product.CurrentStock)

	// ledger: one receive, one adjustment, nothing for the rejection
	require.Len(t, movements.movements, 2)
	assert.Equal(t, domain.MovementReceive, movements.movements[0].MovementType)
	assert.Equal(t, domain.MovementAdjustment, movements.movements[1].MovementType)
	assert.Equal(t, 25, movements.movements[1].StockAfter)
}

func TestInventoryService_ListMovements(t *testing.T) {
	productA := testProduct(10, 5)
	productB := testProduct(10, 5)
	productB.Name = "Beans 1kg"

	now := time.Now()
	earliest := now.Add(-48 * time.Hour)
	boundary := now.Add(-time.Hour)
	movements := &fakeMovementRepo{movements: []*domain.StockMovement{
		{ID: primitive.NewObjectID(), ProductID: productA.ID, MovementType: domain.MovementReceive, CreatedAt: earliest},
		{ID: primitive.NewObjectID(), ProductID: productB.ID, MovementType: domain.MovementReceive, CreatedAt: boundary},
		{ID: primitive.NewObjectID(), ProductID: productA.ID, MovementType: domain.MovementAdjustment, CreatedAt: now},
		{ID: primitive.NewObjectID(), ProductID: productB.ID, MovementType: domain.MovementReceive, CreatedAt: now},
	}}
	svc := newTestService(newFakeProductRepo(productA, productB), movements, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, &fakePublisher{})

	all, err := svc.ListMovements(context.Background(), ListMovementsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	byProduct, err := svc.ListMovements(context.Background(), ListMovementsQuery{ProductID: productA.ID.Hex()})
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	// a movement stamped exactly on the from bound is included
	recent, err := svc.ListMovements(context.Background(), ListMovementsQuery{From: &boundary})
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	// both window bounds are inclusive: the earliest and boundary entries
	// sit exactly on from and to
	window, err := svc.ListMovements(context.Background(), ListMovementsQuery{From: &earliest, To: &boundary})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	// malformed product ids match nothing rather than erroring
	none, err := svc.ListMovements(context.Background(), ListMovementsQuery{ProductID: "not-an-id"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInventoryService_ListLowStock(t *testing.T) {
	low := testProduct(3, 5)
	healthy := testProduct(50, 5)
	inactive := testProduct(2, 5)
	inactive.IsActive = false

	svc := newTestService(newFakeProductRepo(low, healthy, inactive), &fakeMovementRepo{}, &fakeAdjustmentRepo{}, &fakeAuditRecorder{}, &fakePublisher{})

	products, err := svc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, low.ID, products[0].ID)
}
