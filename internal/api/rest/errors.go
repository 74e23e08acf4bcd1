package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/api/shared/errors"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/logger"
)

// respond writes an API error inside the error envelope
func respond(c *gin.Context, status int, apiErr *errors.APIError) {
	c.JSON(status, errors.Envelope{Error: apiErr})
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, errors.NewValidationError(message))
}

// respondForbidden responds with a forbidden error
func respondForbidden(c *gin.Context, message string, details ...string) {
	respond(c, http.StatusForbidden, errors.NewForbiddenError(message, details...))
}

// respondError maps an error returned by the core packages to a response
func respondError(c *gin.Context, err error) {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		respond(c, http.StatusBadRequest, apiErr)
		return
	}

	status, apiErr, known := errors.FromDomainError(err)
	switch {
	case !known:
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
	case stderrors.Is(err, domain.ErrChainIntegrity):
		// Integrity failures are already reported where they are detected
	case stderrors.Is(err, domain.ErrChainWrite):
		logger.WarnCtx(c.Request.Context(), "Chain write failed after retries",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
	}

	respond(c, status, apiErr)
}
