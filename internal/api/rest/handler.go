package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/api/middleware"
	"github.com/feral-file/farmtrace/internal/api/shared/dto"
	"github.com/feral-file/farmtrace/internal/directory"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/ledger"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/notify"
	"github.com/feral-file/farmtrace/internal/product"
	"github.com/feral-file/farmtrace/internal/transfer"
)

const healthCheckTimeout = 2 * time.Second

// Pinger checks the reachability of a dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RequestTransfer proposes a custody change
	// POST /api/v1/transfer/request
	RequestTransfer(c *gin.Context)

	// AcceptTransfer accepts a pending transfer and appends the next block
	// POST /api/v1/transfer/:id/accept
	AcceptTransfer(c *gin.Context)

	// RejectTransfer rejects a pending transfer
	// POST /api/v1/transfer/:id/reject
	RejectTransfer(c *gin.Context)

	// GetTransfer retrieves a transfer
	// GET /api/v1/transfer/:id
	GetTransfer(c *gin.Context)

	// ListUserTransfers retrieves the transfers of a user
	// GET /api/v1/user/:id/transfers?direction=incoming|outgoing|all&status=<status>&limit=<limit>&offset=<offset>
	ListUserTransfers(c *gin.Context)

	// RegisterProduct registers a product batch together with its genesis block
	// POST /api/v1/product
	RegisterProduct(c *gin.Context)

	// GetProduct retrieves a product
	// GET /api/v1/product/:id
	GetProduct(c *gin.Context)

	// GetProductByBatchID retrieves a product by its batch ID
	// GET /api/v1/product/batch/:batchId
	GetProductByBatchID(c *gin.Context)

	// ListProducts retrieves products
	// GET /api/v1/products?owner=<user_id>&category=<category>&limit=<limit>&offset=<offset>
	ListProducts(c *gin.Context)

	// GetProductChain retrieves the ownership chain in ascending order
	// GET /api/v1/product/:id/chain
	GetProductChain(c *gin.Context)

	// VerifyProductChain verifies the ownership chain
	// GET /api/v1/product/:id/verify
	VerifyProductChain(c *gin.Context)

	// GetProductOwners retrieves the distinct custody holders in chain order
	// GET /api/v1/product/:id/owners
	GetProductOwners(c *gin.Context)

	// GetProductEvents retrieves the product history
	// GET /api/v1/product/:id/events
	GetProductEvents(c *gin.Context)

	// UpdateProductAttributes changes the attributes the current owner may edit
	// PATCH /api/v1/product/:id/attributes
	UpdateProductAttributes(c *gin.Context)

	// RecordQualityCheck records an inspection result for a product
	// POST /api/v1/quality-check
	RecordQualityCheck(c *gin.Context)

	// GetProductQualityChecks retrieves the quality checks of a product, newest first
	// GET /api/v1/product/:id/quality-checks
	GetProductQualityChecks(c *gin.Context)

	// RecordScan records a read of a product QR code
	// POST /api/v1/scan
	RecordScan(c *gin.Context)

	// ListRecentScans retrieves the latest scans with their product
	// GET /api/v1/scans/recent?user=<user_id>&limit=<limit>
	ListRecentScans(c *gin.Context)

	// GetStats retrieves the dashboard counters
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// RegisterUser registers a user
	// POST /api/v1/user
	RegisterUser(c *gin.Context)

	// GetUser retrieves a user
	// GET /api/v1/user/:id
	GetUser(c *gin.Context)

	// ListUsers retrieves users
	// GET /api/v1/users?role=<role>&limit=<limit>
	ListUsers(c *gin.Context)

	// ListUserNotifications retrieves the notifications of a user
	// GET /api/v1/user/:id/notifications?unread=true&limit=<limit>
	ListUserNotifications(c *gin.Context)

	// MarkNotificationRead marks a notification as read
	// POST /api/v1/notification/:id/read
	MarkNotificationRead(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	products  product.Service
	workflow  transfer.Workflow
	ledger    ledger.Ledger
	directory directory.Directory
	inbox     notify.Inbox
	db        Pinger
}

// NewHandler creates a new REST API handler
func NewHandler(
	products product.Service,
	workflow transfer.Workflow,
	ledger ledger.Ledger,
	directory directory.Directory,
	inbox notify.Inbox,
	db Pinger,
) Handler {
	return &handler{
		products:  products,
		workflow:  workflow,
		ledger:    ledger,
		directory: directory,
		inbox:     inbox,
		db:        db,
	}
}

// RequestTransfer proposes a custody change
func (h *handler) RequestTransfer(c *gin.Context) {
	var req dto.RequestTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}
	if !middleware.ActingUserAllowed(c, req.FromUserID) {
		respondForbidden(c, "Token subject does not match fromUserId")
		return
	}

	t, err := h.workflow.RequestTransfer(c.Request.Context(), transfer.RequestTransferInput{
		ProductID:    req.ProductID,
		FromUserID:   req.FromUserID,
		ToUserID:     req.ToUserID,
		TransferType: req.TransferType,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RequestTransferResponse{
		TransferID: t.ID,
		Status:     t.Status,
	})
}

// AcceptTransfer accepts a pending transfer
func (h *handler) AcceptTransfer(c *gin.Context) {
	transferID := c.Param("id")

	actingUserID, ok := h.bindActingUser(c)
	if !ok {
		return
	}

	result, err := h.workflow.AcceptTransfer(c.Request.Context(), transferID, actingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RejectTransfer rejects a pending transfer
func (h *handler) RejectTransfer(c *gin.Context) {
	transferID := c.Param("id")

	actingUserID, ok := h.bindActingUser(c)
	if !ok {
		return
	}

	t, err := h.workflow.RejectTransfer(c.Request.Context(), transferID, actingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferStatusResponse{Status: t.Status})
}

// GetTransfer retrieves a transfer
func (h *handler) GetTransfer(c *gin.Context) {
	t, err := h.workflow.GetTransfer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransferToDTO(t))
}

// ListUserTransfers retrieves the transfers of a user
func (h *handler) ListUserTransfers(c *gin.Context) {
	params, err := ParseListUserTransfersQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	transfers, err := h.workflow.ListTransfers(c.Request.Context(), params.Filter(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransfersToDTO(transfers))
}

// RegisterProduct registers a product batch
func (h *handler) RegisterProduct(c *gin.Context) {
	var req dto.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}
	if !middleware.ActingUserAllowed(c, req.OwnerID) {
		respondForbidden(c, "Token subject does not match ownerId")
		return
	}

	registered, err := h.products.RegisterProduct(c.Request.Context(), product.RegisterProductInput{
		OwnerID:    req.OwnerID,
		Name:       req.Name,
		Category:   req.Category,
		Attributes: req.Attributes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterProductResponse{
		Product: dto.MapProductToDTO(registered.Product),
		Genesis: dto.MapBlockToDTO(registered.Genesis),
	})
}

// GetProduct retrieves a product
func (h *handler) GetProduct(c *gin.Context) {
	p, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToDTO(p))
}

// GetProductByBatchID retrieves a product by its batch ID
func (h *handler) GetProductByBatchID(c *gin.Context) {
	p, err := h.products.GetProductByBatchID(c.Request.Context(), c.Param("batchId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToDTO(p))
}

// ListProducts retrieves products
func (h *handler) ListProducts(c *gin.Context) {
	params, err := ParseListProductsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	products, total, err := h.products.ListProducts(c.Request.Context(), params.Filter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{
		Products: dto.MapProductsToDTO(products),
		Total:    total,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// GetProductChain retrieves the ownership chain of a product
func (h *handler) GetProductChain(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("id")

	// Unknown products are a 404 rather than an empty chain
	if _, err := h.products.GetProduct(ctx, productID); err != nil {
		respondError(c, err)
		return
	}

	blocks, err := h.ledger.GetChain(ctx, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapBlocksToDTO(blocks))
}

// VerifyProductChain verifies the ownership chain of a product
func (h *handler) VerifyProductChain(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("id")

	if _, err := h.products.GetProduct(ctx, productID); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.ledger.VerifyChain(ctx, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.Valid {
		logger.WarnCtx(ctx, "Ownership chain failed verification",
			zap.String("productID", productID),
			zap.Any("violations", result.Errors),
		)
	}

	c.JSON(http.StatusOK, result)
}

// GetProductOwners retrieves the custody holders of a product
func (h *handler) GetProductOwners(c *gin.Context) {
	owners, err := h.products.GetOwners(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, owners)
}

// GetProductEvents retrieves the history of a product
func (h *handler) GetProductEvents(c *gin.Context) {
	events, err := h.products.GetEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductEventsToDTO(events))
}

// UpdateProductAttributes changes product attributes on behalf of the current owner
func (h *handler) UpdateProductAttributes(c *gin.Context) {
	var req dto.UpdateAttributesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}
	if !middleware.ActingUserAllowed(c, req.ActingUserID) {
		respondForbidden(c, "Token subject does not match actingUserId")
		return
	}

	p, err := h.products.UpdateAttributes(c.Request.Context(), product.UpdateAttributesInput{
		ProductID:    c.Param("id"),
		ActingUserID: req.ActingUserID,
		Attributes:   req.Attributes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToDTO(p))
}

// RecordQualityCheck records an inspection result for a product
func (h *handler) RecordQualityCheck(c *gin.Context) {
	var req dto.RecordQualityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}
	if !middleware.ActingUserAllowed(c, req.InspectorID) {
		respondForbidden(c, "Token subject does not match inspectorId")
		return
	}

	check, err := h.products.RecordQualityCheck(c.Request.Context(), product.RecordQualityCheckInput{
		ProductID:        req.ProductID,
		InspectorID:      req.InspectorID,
		CheckType:        req.CheckType,
		Score:            *req.Score,
		Notes:            req.Notes,
		CertificationURL: req.CertificationURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MapQualityCheckToDTO(check))
}

// GetProductQualityChecks retrieves the quality checks of a product
func (h *handler) GetProductQualityChecks(c *gin.Context) {
	checks, err := h.products.GetQualityChecks(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapQualityChecksToDTO(checks))
}

// RecordScan records a read of a product QR code
func (h *handler) RecordScan(c *gin.Context) {
	var req dto.RecordScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if req.UserID != nil && !middleware.ActingUserAllowed(c, *req.UserID) {
		respondForbidden(c, "Token subject does not match userId")
		return
	}

	scan, err := h.products.RecordScan(c.Request.Context(), product.RecordScanInput{
		ProductID:   req.ProductID,
		UserID:      req.UserID,
		Location:    req.Location,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MapScanToDTO(scan))
}

// ListRecentScans retrieves the latest scans
func (h *handler) ListRecentScans(c *gin.Context) {
	params, err := ParseRecentScansQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	scans, err := h.products.RecentScans(c.Request.Context(), params.Filter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapScansToDTO(scans))
}

// GetStats retrieves the dashboard counters
func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.products.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapStatsToDTO(stats))
}

// RegisterUser registers a user
func (h *handler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.directory.RegisterUser(c.Request.Context(), directory.RegisterUserInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToDTO(user))
}

// GetUser retrieves a user
func (h *handler) GetUser(c *gin.Context) {
	user, err := h.directory.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToDTO(user))
}

// ListUsers retrieves users
func (h *handler) ListUsers(c *gin.Context) {
	params, err := ParseListUsersQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var role *domain.Role
	if params.Role != "" {
		role = &params.Role
	}

	users, err := h.directory.ListUsers(c.Request.Context(), role, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToDTO(users))
}

// ListUserNotifications retrieves the notifications of a user
func (h *handler) ListUserNotifications(c *gin.Context) {
	params, err := ParseListNotificationsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	notifications, err := h.inbox.List(c.Request.Context(), c.Param("id"), params.Unread, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapNotificationsToDTO(notifications))
}

// MarkNotificationRead marks a notification as read
func (h *handler) MarkNotificationRead(c *gin.Context) {
	actingUserID, ok := h.bindActingUser(c)
	if !ok {
		return
	}

	if err := h.inbox.MarkRead(c.Request.Context(), c.Param("id"), actingUserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.WarnCtx(ctx, "Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "ok",
	})
}

// bindActingUser reads the acting user from the body and checks it against the caller.
// It writes the error response itself and returns false when the request must stop.
func (h *handler) bindActingUser(c *gin.Context) (string, bool) {
	var req dto.ActingUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return "", false
	}
	if !middleware.ActingUserAllowed(c, req.ActingUserID) {
		respondForbidden(c, "Token subject does not match actingUserId")
		return "", false
	}
	return req.ActingUserID, true
}
