package dto

import (
	"time"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

// UserResponse represents a user
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ProductResponse represents a product batch
type ProductResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Category   string               `json:"category"`
	BatchID    string               `json:"batchId"`
	QRCode     string               `json:"qrCode"`
	OwnerID    string               `json:"ownerId"`
	Status     schema.ProductStatus `json:"status"`
	Attributes map[string]any       `json:"attributes"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// RegisterProductResponse represents a new product and its genesis block
type RegisterProductResponse struct {
	Product ProductResponse `json:"product"`
	Genesis BlockResponse   `json:"genesis"`
}

// ListProductsResponse represents a page of products
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// BlockResponse represents an ownership block
type BlockResponse struct {
	ID                string              `json:"id"`
	ProductID         string              `json:"productId"`
	BlockNumber       int64               `json:"blockNumber"`
	OwnerID           string              `json:"ownerId"`
	Role              domain.Role         `json:"role"`
	Username          string              `json:"username"`
	Name              string              `json:"name"`
	AddedBy           string              `json:"addedBy"`
	CanEditFields     []string            `json:"canEditFields"`
	TransferType      domain.TransferType `json:"transferType"`
	PreviousOwnerHash *string             `json:"previousOwnerHash"`
	OwnershipHash     string              `json:"ownershipHash"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// TransferResponse represents an ownership transfer
type TransferResponse struct {
	ID           string                `json:"id"`
	ProductID    string                `json:"productId"`
	FromUserID   string                `json:"fromUserId"`
	ToUserID     string                `json:"toUserId"`
	TransferType domain.TransferType   `json:"transferType"`
	Status       schema.TransferStatus `json:"status"`
	Notes        string                `json:"notes,omitempty"`
	BlockNumber  *int64                `json:"blockNumber,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	ResolvedAt   *time.Time            `json:"resolvedAt,omitempty"`
}

// RequestTransferResponse represents the response for proposing a transfer
type RequestTransferResponse struct {
	TransferID string                `json:"transferId"`
	Status     schema.TransferStatus `json:"status"`
}

// TransferStatusResponse represents the response for rejecting a transfer
type TransferStatusResponse struct {
	Status schema.TransferStatus `json:"status"`
}

// ProductEventResponse represents a product history entry
type ProductEventResponse struct {
	ID        string                  `json:"id"`
	ProductID string                  `json:"productId"`
	EventType schema.ProductEventType `json:"eventType"`
	UserID    string                  `json:"userId"`
	Message   string                  `json:"message"`
	Extra     map[string]any          `json:"extra,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}

// NotificationResponse represents a stored notification
type NotificationResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"userId"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      domain.NotificationType `json:"type"`
	ProductID *string                 `json:"productId,omitempty"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"createdAt"`
}

// QualityCheckResponse represents a recorded quality check
type QualityCheckResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"productId"`
	InspectorID      string    `json:"inspectorId"`
	CheckType        string    `json:"checkType"`
	Score            float64   `json:"score"`
	Notes            string    `json:"notes,omitempty"`
	CertificationURL string    `json:"certificationUrl,omitempty"`
	Verified         bool      `json:"verified"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ScanResponse represents a QR code scan, with its product when listed
type ScanResponse struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"productId"`
	UserID      *string          `json:"userId"`
	Location    string           `json:"location,omitempty"`
	Coordinates map[string]any   `json:"coordinates,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	Product     *ProductResponse `json:"product,omitempty"`
}

// StatsResponse represents the dashboard counters
type StatsResponse struct {
	TotalProducts       int64   `json:"totalProducts"`
	VerifiedBatches     int64   `json:"verifiedBatches"`
	ActiveShipments     int64   `json:"activeShipments"`
	AverageQualityScore float64 `json:"averageQualityScore"`
}
