package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// postingHandler handles HTTP requests that ingest and read posting sets.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newPostingHandler(ps portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{postingService: ps}
}

func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPostingHandler(postingService)

	postings := rg.Group("/postings")
	{
		postings.POST("", h.recordPostings)
		postings.GET("/:operation_id", h.getOperationPostings)
		postings.PUT("/:operation_id", h.replacePostings)
		postings.GET("/:operation_id/history", h.getOperationHistory)
	}
	rg.GET("/verify-postings", h.verifyPostings)
}

// recordPostings godoc
// @Summary Record the postings of a new operation
// @Description Validates and writes a balanced posting set. Fails if the operation already has active postings.
// @Tags postings
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param postings body dto.RecordPostingsRequest true "Posting set"
// @Success 201 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced posting set"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Operation already recorded"
// @Failure 500 {object} map[string]string "Failed to record postings"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/postings [post]
func (h *postingHandler) recordPostings(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.RecordPostingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "posting set")
		return
	}
	logger = logger.With(slog.String("operation_id", req.OperationID))

	result, err := h.postingService.RecordPostings(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "record postings")
		return
	}

	logger.Info("Postings recorded",
		slog.String("transaction_id", result.TransactionID),
		slog.Int("postings", len(result.Postings)))
	c.JSON(http.StatusCreated, dto.ToOperationResponse(result))
}

// replacePostings godoc
// @Summary Replace the postings of an operation
// @Description Supersedes the active set and writes the new one with the original timestamp
// @Tags postings
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param operation_id path string true "Operation ID"
// @Param postings body dto.ReplacePostingsRequest true "Replacement posting set"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced posting set"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Operation is being replaced concurrently"
// @Failure 500 {object} map[string]string "Failed to replace postings"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/postings/{operation_id} [put]
func (h *postingHandler) replacePostings(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	operationID := c.Param("operation_id")
	logger = logger.With(slog.String("operation_id", operationID))

	var req dto.ReplacePostingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "posting set")
		return
	}

	result, err := h.postingService.ReplacePostings(c.Request.Context(), tenantID, operationID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "replace postings")
		return
	}

	logger.Info("Postings replaced",
		slog.Int("superseded", result.Superseded),
		slog.Int("postings", len(result.Postings)))
	c.JSON(http.StatusOK, dto.ToOperationResponse(result))
}

// getOperationPostings godoc
// @Summary Get the active postings of an operation
// @Tags postings
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param operation_id path string true "Operation ID"
// @Success 200 {object} dto.ListPostingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Operation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve postings"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/postings/{operation_id} [get]
func (h *postingHandler) getOperationPostings(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	operationID := c.Param("operation_id")

	postings, err := h.postingService.GetOperationPostings(c.Request.Context(), tenantID, operationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve postings")
		return
	}

	c.JSON(http.StatusOK, dto.ListPostingsResponse{OperationID: operationID, Postings: dto.ToListPostingResponse(postings)})
}

// getOperationHistory godoc
// @Summary Get the posting history of an operation
// @Description Returns every posting ever written for the operation, superseded ones included
// @Tags postings
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param operation_id path string true "Operation ID"
// @Success 200 {object} dto.ListPostingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Operation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve posting history"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/postings/{operation_id}/history [get]
func (h *postingHandler) getOperationHistory(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	operationID := c.Param("operation_id")

	postings, err := h.postingService.GetOperationHistory(c.Request.Context(), tenantID, operationID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve posting history")
		return
	}

	c.JSON(http.StatusOK, dto.ListPostingsResponse{OperationID: operationID, Postings: dto.ToListPostingResponse(postings)})
}

// verifyPostings godoc
// @Summary List unbalanced operations
// @Description Re-checks that every active operation's debits equal its credits
// @Tags postings
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.UnbalancedGroupResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to verify postings"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/verify-postings [get]
func (h *postingHandler) verifyPostings(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	groups, err := h.postingService.VerifyPostings(c.Request.Context(), tenantID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "verify postings")
		return
	}

	if len(groups) > 0 {
		logger.Warn("Unbalanced operations found", slog.Int("count", len(groups)))
	}
	c.JSON(http.StatusOK, dto.ToUnbalancedGroupResponses(groups))
}
