package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pos-platform/inventory-service/pkg/api"
	"github.com/pos-platform/inventory-service/pkg/logging"
	"github.com/pos-platform/inventory-service/pkg/middleware"

	"github.com/pos-platform/inventory-service/internal/api/dto"
	"github.com/pos-platform/inventory-service/internal/application"
)

// Messages returned by the inventory endpoints
const (
	msgStockReceived       = "Stock received successfully"
	msgStockAdjusted       = "Stock adjusted successfully"
	msgFetched             = "Fetched successfully"
	msgNoInventory         = "No inventory found"
	msgMissingReceiveField = "Product ID, quantity, and supplier ID are required"
	msgMissingAdjustField  = "Product ID, adjustment type, quantity change, and reason are required"
	msgReorderAlerts       = "Reorder alerts fetched successfully"
	msgDashboardSummary    = "Dashboard summary fetched successfully"
	msgRecentTransactions  = "Recent transactions fetched successfully"
	msgSalesReport         = "Sales analysis report generated successfully"
	msgProductReport       = "Product analysis report generated successfully"
	msgPaymentReport       = "Payment method report generated successfully"
	msgMovementReport      = "Stock movement report generated successfully"
)

// Handlers contains the HTTP handlers for the inventory back office
type Handlers struct {
	inventory *application.InventoryService
	dashboard *application.DashboardService
	reports   *application.ReportService
	logger    *logging.Logger
}

// NewHandlers creates new HTTP handlers
func NewHandlers(
	inventory *application.InventoryService,
	dashboard *application.DashboardService,
	reports *application.ReportService,
	logger *logging.Logger,
) *Handlers {
	return &Handlers{
		inventory: inventory,
		dashboard: dashboard,
		reports:   reports,
		logger:    logger,
	}
}

// ReceiveStock handles POST /api/v1/inventory/receive
func (h *Handlers) ReceiveStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		var req dto.ReceiveStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responder.RespondValidationError(msgMissingReceiveField)
			return
		}

		middleware.AddSpanAttributes(c, map[string]interface{}{
			"product.id":     req.ProductID,
			"stock.quantity": req.Quantity,
		})

		result, err := h.inventory.ReceiveStock(c.Request.Context(), application.ReceiveStockCommand{
			ProductID:   req.ProductID,
			Quantity:    req.Quantity,
			SupplierID:  req.SupplierID,
			Notes:       req.Notes,
			PerformedBy: req.PerformedBy,
		})
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		api.SendSuccess(c, http.StatusCreated, msgStockReceived, result)
	}
}

// AdjustStock handles POST /api/v1/inventory/adjust
func (h *Handlers) AdjustStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		var req dto.AdjustStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responder.RespondValidationError(msgMissingAdjustField)
			return
		}

		middleware.AddSpanAttributes(c, map[string]interface{}{
			"product.id":      req.ProductID,
			"adjustment.type": req.AdjustmentType,
		})

		result, err := h.inventory.AdjustStock(c.Request.Context(), application.AdjustStockCommand{
			ProductID:      req.ProductID,
			AdjustmentType: req.AdjustmentType,
			QuantityChange: *req.QuantityChange,
			Reason:         req.Reason,
			Notes:          req.Notes,
			PerformedBy:    req.PerformedBy,
		})
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		api.SendSuccess(c, http.StatusOK, msgStockAdjusted, result)
	}
}

// GetMovements handles GET /api/v1/inventory/movements
func (h *Handlers) GetMovements() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		query := application.ListMovementsQuery{
			ProductID: c.Query("productId"),
		}

		var err error
		if query.From, err = parseTimeQuery(c, "from"); err != nil {
			responder.RespondValidationError("Invalid from date")
			return
		}
		if query.To, err = parseTimeQuery(c, "to"); err != nil {
			responder.RespondValidationError("Invalid to date")
			return
		}

		movements, err := h.inventory.ListMovements(c.Request.Context(), query)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		message := msgFetched
		if len(movements) == 0 {
			message = msgNoInventory
		}

		api.SendSuccess(c, http.StatusOK, message, movements)
	}
}

// GetLowStock handles GET /api/v1/inventory/low-stock
func (h *Handlers) GetLowStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		products, err := h.inventory.ListLowStock(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		api.SendSuccess(c, http.StatusOK, msgReorderAlerts, products)
	}
}

// GetDashboardAnalysis handles GET /api/v1/dashboard/analysis
func (h *Handlers) GetDashboardAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		summary, err := h.dashboard.Summary(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		api.SendSuccess(c, http.StatusOK, msgDashboardSummary, summary)
	}
}

// GetDashboardLowStock handles GET /api/v1/dashboard/low-stock
func (h *Handlers) GetDashboardLowStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		alerts, err := h.dashboard.ReorderAlerts(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		api.SendSuccess(c, http.StatusOK, msgReorderAlerts, alerts)
	}
}

// GetRecentTransactions handles GET /api/v1/dashboard/recent-transactions
func (h *Handlers) GetRecentTransactions() gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		recent, err := h.dashboard.RecentTransactions(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		api.SendSuccess(c, http.StatusOK, msgRecentTransactions, recent)
	}
}

// GetSalesAnalysisReport handles GET /api/v1/reports/sales-analysis
func (h *Handlers) GetSalesAnalysisReport() gin.HandlerFunc {
	return h.reportHandler(msgSalesReport, func(c *gin.Context, query application.ReportPeriodQuery) (interface{}, error) {
		return h.reports.SalesAnalysis(c.Request.Context(), query)
	})
}

// GetProductAnalysisReport handles GET /api/v1/reports/product-analysis
func (h *Handlers) GetProductAnalysisReport() gin.HandlerFunc {
	return h.reportHandler(msgProductReport, func(c *gin.Context, query application.ReportPeriodQuery) (interface{}, error) {
		return h.reports.ProductAnalysis(c.Request.Context(), query)
	})
}

// GetPaymentMethodReport handles GET /api/v1/reports/payment-method
func (h *Handlers) GetPaymentMethodReport() gin.HandlerFunc {
	return h.reportHandler(msgPaymentReport, func(c *gin.Context, query application.ReportPeriodQuery) (interface{}, error) {
		return h.reports.PaymentMethods(c.Request.Context(), query)
	})
}

// GetStockMovementReport handles GET /api/v1/reports/stock-movement
func (h *Handlers) GetStockMovementReport() gin.HandlerFunc {
	return h.reportHandler(msgMovementReport, func(c *gin.Context, query application.ReportPeriodQuery) (interface{}, error) {
		return h.reports.StockMovements(c.Request.Context(), query)
	})
}

// reportHandler wraps the shared from/to parsing around a report call
func (h *Handlers) reportHandler(message string, generate func(*gin.Context, application.ReportPeriodQuery) (interface{}, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, h.logger.Logger)

		var query application.ReportPeriodQuery
		var err error
		if query.From, err = parseTimeQuery(c, "from"); err != nil {
			responder.RespondValidationError("Invalid from date")
			return
		}
		if query.To, err = parseTimeQuery(c, "to"); err != nil {
			responder.RespondValidationError("Invalid to date")
			return
		}

		report, err := generate(c, query)
		if err != nil {
			responder.RespondWithError(err)
			return
		}

		api.SendSuccess(c, http.StatusOK, message, report)
	}
}

// parseTimeQuery reads an optional date query parameter, accepting both
// RFC 3339 timestamps and bare dates
func parseTimeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, &time.ParseError{Layout: time.RFC3339, Value: raw}
}
