package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/farmtrace/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Transfer workflow
		v1.POST("/transfer/request", auth, handler.RequestTransfer)
		v1.POST("/transfer/:id/accept", auth, handler.AcceptTransfer)
		v1.POST("/transfer/:id/reject", auth, handler.RejectTransfer)
		v1.GET("/transfer/:id", handler.GetTransfer)

		// Products and their ownership chain
		v1.POST("/product", auth, handler.RegisterProduct)
		v1.GET("/products", handler.ListProducts)
		v1.GET("/product/batch/:batchId", handler.GetProductByBatchID)
		v1.GET("/product/:id", handler.GetProduct)
		v1.GET("/product/:id/chain", handler.GetProductChain)
		v1.GET("/product/:id/verify", handler.VerifyProductChain)
		v1.GET("/product/:id/owners", handler.GetProductOwners)
		v1.GET("/product/:id/events", handler.GetProductEvents)
		v1.PATCH("/product/:id/attributes", auth, handler.UpdateProductAttributes)
		v1.GET("/product/:id/quality-checks", handler.GetProductQualityChecks)

		// Inspections, scans and dashboard counters
		v1.POST("/quality-check", auth, handler.RecordQualityCheck)
		v1.POST("/scan", auth, handler.RecordScan)
		v1.GET("/scans/recent", handler.ListRecentScans)
		v1.GET("/stats", handler.GetStats)

		// Users
		v1.POST("/user", auth, handler.RegisterUser)
		v1.GET("/users", handler.ListUsers)
		v1.GET("/user/:id", handler.GetUser)
		v1.GET("/user/:id/transfers", handler.ListUserTransfers)
		v1.GET("/user/:id/notifications", handler.ListUserNotifications)

		// Notifications
		v1.POST("/notification/:id/read", auth, handler.MarkNotificationRead)
	}
}
