package dto

import (
	"fmt"
	"strings"

	"github.com/feral-file/farmtrace/internal/api/shared/constants"
	apierrors "github.com/feral-file/farmtrace/internal/api/shared/errors"
	"github.com/feral-file/farmtrace/internal/domain"
)

// RequestTransferRequest represents the request body for proposing a transfer
type RequestTransferRequest struct {
	ProductID    string              `json:"productId" binding:"required"`
	FromUserID   string              `json:"fromUserId" binding:"required"`
	ToUserID     string              `json:"toUserId" binding:"required"`
	TransferType domain.TransferType `json:"transferType"`
	Notes        string              `json:"notes"`
}

// Validate validates the request body
func (r *RequestTransferRequest) Validate() error {
	if r.TransferType == "" {
		r.TransferType = domain.TransferTypeTransfer
	}
	if !domain.IsRequestableTransferType(r.TransferType) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid transferType: %s", r.TransferType))
	}
	if r.FromUserID == r.ToUserID {
		return apierrors.NewValidationError("fromUserId and toUserId must differ")
	}
	return nil
}

// ActingUserRequest represents a request body carrying only the acting user
type ActingUserRequest struct {
	ActingUserID string `json:"actingUserId" binding:"required"`
}

// RegisterProductRequest represents the request body for registering a product batch
type RegisterProductRequest struct {
	OwnerID    string         `json:"ownerId" binding:"required"`
	Name       string         `json:"name" binding:"required"`
	Category   string         `json:"category" binding:"required"`
	Attributes map[string]any `json:"attributes"`
}

// Validate validates the request body
func (r *RegisterProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		return apierrors.NewValidationError("category is required")
	}
	return nil
}

// UpdateAttributesRequest represents the request body for changing product attributes
type UpdateAttributesRequest struct {
	ActingUserID string         `json:"actingUserId" binding:"required"`
	Attributes   map[string]any `json:"attributes" binding:"required"`
}

// Validate validates the request body
func (r *UpdateAttributesRequest) Validate() error {
	if len(r.Attributes) == 0 {
		return apierrors.NewValidationError("attributes is required")
	}
	if len(r.Attributes) > constants.MAX_ATTRIBUTES_PER_UPDATE {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d attributes allowed", constants.MAX_ATTRIBUTES_PER_UPDATE))
	}
	return nil
}

// RegisterUserRequest represents the request body for registering a user
type RegisterUserRequest struct {
	Username string      `json:"username" binding:"required"`
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Role     domain.Role `json:"role" binding:"required"`
}

// Validate validates the request body
func (r *RegisterUserRequest) Validate() error {
	if !domain.IsValidRole(r.Role) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid role: %s", r.Role))
	}
	return nil
}

// RecordQualityCheckRequest represents the request body for recording a quality check
type RecordQualityCheckRequest struct {
	ProductID        string   `json:"productId" binding:"required"`
	InspectorID      string   `json:"inspectorId" binding:"required"`
	CheckType        string   `json:"checkType" binding:"required"`
	Score            *float64 `json:"score" binding:"required"`
	Notes            string   `json:"notes"`
	CertificationURL string   `json:"certificationUrl"`
}

// Validate validates the request body
func (r *RecordQualityCheckRequest) Validate() error {
	if strings.TrimSpace(r.CheckType) == "" {
		return apierrors.NewValidationError("checkType is required")
	}
	if *r.Score < 0 || *r.Score > constants.MAX_QUALITY_SCORE {
		return apierrors.NewValidationError(fmt.Sprintf("score must be between 0 and %d", constants.MAX_QUALITY_SCORE))
	}
	return nil
}

// RecordScanRequest represents the request body for recording a QR code scan
type RecordScanRequest struct {
	ProductID   string         `json:"productId" binding:"required"`
	UserID      *string        `json:"userId"`
	Location    string         `json:"location"`
	Coordinates map[string]any `json:"coordinates"`
}
