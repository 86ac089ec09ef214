package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all inventory back-office routes
func RegisterRoutes(router *gin.Engine, handlers *Handlers) {
	inventoryAPI := router.Group("/api/v1/inventory")
	{
		inventoryAPI.POST("/receive", handlers.ReceiveStock())
		inventoryAPI.POST("/adjust", handlers.AdjustStock())
		inventoryAPI.GET("/movements", handlers.GetMovements())
		inventoryAPI.GET("/low-stock", handlers.GetLowStock())
	}

	dashboardAPI := router.Group("/api/v1/dashboard")
	{
		dashboardAPI.GET("/analysis", handlers.GetDashboardAnalysis())
		dashboardAPI.GET("/low-stock", handlers.GetDashboardLowStock())
		dashboardAPI.GET("/recent-transactions", handlers.GetRecentTransactions())
	}

	reportsAPI := router.Group("/api/v1/reports")
	{
		reportsAPI.GET("/sales-analysis", handlers.GetSalesAnalysisReport())
		reportsAPI.GET("/product-analysis", handlers.GetProductAnalysisReport())
		reportsAPI.GET("/payment-method", handlers.GetPaymentMethodReport())
		reportsAPI.GET("/stock-movement", handlers.GetStockMovementReport())
	}
}
