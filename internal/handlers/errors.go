package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrLocked):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError logs err at a level matching its status and writes the
// error body. Internal errors are not echoed to the client.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + action})
		return
	}
	logger.Warn("Request rejected while trying to "+action,
		slog.Int("status", status),
		slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondBindError writes a 400 with per-field details when the validator produced them.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	if fields := dto.ProcessValidationErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what, "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + ": " + err.Error()})
}

// requestScope extracts the tenant path parameter and the authenticated user.
// It writes the error response itself and returns ok=false when either is missing.
func requestScope(c *gin.Context) (tenantID, userID string, logger *slog.Logger, ok bool) {
	logger = middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID = c.Param("tenant_id")
	if tenantID == "" {
		logger.Error("Tenant ID missing from path")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tenant ID required in path"})
		return "", "", logger, false
	}

	userID, found := middleware.GetUserIDFromContext(c)
	if !found {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", logger, false
	}

	logger = logger.With(slog.String("tenant_id", tenantID))
	return tenantID, userID, logger, true
}
