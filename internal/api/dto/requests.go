package dto

// ReceiveStockRequest is the body of POST /api/v1/inventory/receive.
// Quantity is required-nonzero; zero counts as missing, the way the
// counter staff's form treats an empty field.
type ReceiveStockRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	SupplierID  string `json:"supplierId" binding:"required"`
	Notes       string `json:"notes"`
	PerformedBy string `json:"performedBy"`
}

// AdjustStockRequest is the body of POST /api/v1/inventory/adjust.
// QuantityChange is a pointer so an explicit zero is distinguishable
// from an absent field: zero is a valid no-op correction, absent is a
// validation error.
type AdjustStockRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	AdjustmentType string `json:"adjustmentType" binding:"required,adjustment_type"`
	QuantityChange *int   `json:"quantityChange" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
	Notes          string `json:"notes"`
	PerformedBy    string `json:"performedBy"`
}
