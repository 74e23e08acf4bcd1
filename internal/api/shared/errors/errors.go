package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/feral-file/farmtrace/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeChainIntegrity   ErrorCode = "chain_integrity"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeChainWrite    ErrorCode = "chain_write"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Envelope wraps an APIError the way it is written to the response body
type Envelope struct {
	Error *APIError `json:"error"`
}

// Error constructors for common error types
func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeTooManyRequests,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomainError classifies an error returned by the core packages.
// The boolean is false for unclassified errors, which callers treat as internal.
func FromDomainError(err error) (int, *APIError, bool) {
	switch {
	case stderrors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, NewValidationError(err.Error()), true

	case stderrors.Is(err, domain.ErrNotOwner),
		stderrors.Is(err, domain.ErrNotRecipient),
		stderrors.Is(err, domain.ErrFieldNotEditable):
		return http.StatusForbidden, NewForbiddenError(err.Error()), true

	case stderrors.Is(err, domain.ErrUnknownRecipient),
		stderrors.Is(err, domain.ErrProductNotFound),
		stderrors.Is(err, domain.ErrTransferNotFound),
		stderrors.Is(err, domain.ErrUserNotFound),
		stderrors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, NewNotFoundError(err.Error()), true

	case stderrors.Is(err, domain.ErrInvalidTransferState),
		stderrors.Is(err, domain.ErrTransferAlreadyPending),
		stderrors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict, NewConflictError(err.Error()), true

	case stderrors.Is(err, domain.ErrChainIntegrity):
		return http.StatusConflict, &APIError{
			Code:    ErrCodeChainIntegrity,
			Message: "Ownership chain failed verification; writes are refused until it is repaired",
			Details: err.Error(),
		}, true

	case stderrors.Is(err, domain.ErrChainWrite):
		return http.StatusServiceUnavailable, &APIError{
			Code:    ErrCodeChainWrite,
			Message: "Failed to write the ownership chain; the request can be retried",
		}, true
	}

	return http.StatusInternalServerError, NewInternalError("Internal server error"), false
}
