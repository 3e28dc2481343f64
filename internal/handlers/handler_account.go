package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	postingService portssvc.PostingWriterSvc
}

func newAccountHandler(as portssvc.AccountSvcFacade, ps portssvc.PostingWriterSvc) *accountHandler {
	return &accountHandler{accountService: as, postingService: ps}
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, postingService portssvc.PostingWriterSvc) {
	h := newAccountHandler(accountService, postingService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/seed", h.seedAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)
		accounts.PUT("/:account_id/opening-balance", h.setOpeningBalance)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account in the tenant's chart. The group, head and subhead must form a valid classification.
// @Tags accounts
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Account name already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "account")
		return
	}

	logger.Info("Received request to create account",
		slog.String("account_name", req.Name),
		slog.String("subhead", string(req.Subhead)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), tenantID, c.Param("account_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the tenant's accounts ordered by name. Pass nextToken from a previous page to continue.
// @Tags accounts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Param subhead query string false "Only accounts of this subhead"
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}
	if params.NextToken != "" {
		offset, err := pagination.DecodeOffsetToken(params.NextToken, params.Subhead)
		if err != nil {
			respondServiceError(c, logger, err, "list accounts")
			return
		}
		params.Offset = offset
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), tenantID, params, userID)
	if err != nil {
		respondServiceError(c, logger, err, "list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts:  dto.ToListAccountResponse(accounts),
		Limit:     params.Limit,
		Offset:    params.Offset,
		NextToken: pagination.NextOffsetToken(params.Offset, params.Limit, len(accounts), params.Subhead),
	})
}

// updateAccount godoc
// @Summary Update an account
// @Description Edits an account. Classification cannot change once the account is in use.
// @Tags accounts
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account in use or name taken"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "account update")
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), tenantID, accountID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update account")
		return
	}

	logger.Info("Account updated successfully", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account that has no postings and no child accounts
// @Tags accounts
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account in use"
// @Failure 500 {object} map[string]string "Failed to delete account"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	if err := h.accountService.DeleteAccount(c.Request.Context(), tenantID, accountID, userID); err != nil {
		respondServiceError(c, logger, err, "delete account")
		return
	}

	logger.Info("Account deleted successfully", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// seedAccounts godoc
// @Summary Seed the default chart of accounts
// @Description Creates the system accounts. Names that already exist are skipped.
// @Tags accounts
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 201 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to seed accounts"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/seed [post]
func (h *accountHandler) seedAccounts(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	created, err := h.accountService.SeedDefaultAccounts(c.Request.Context(), tenantID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "seed accounts")
		return
	}

	logger.Info("Default accounts seeded", slog.Int("created", len(created)))
	c.JSON(http.StatusCreated, dto.ToListAccountResponse(created))
}

// setOpeningBalance godoc
// @Summary Set an account's opening balance
// @Description Writes or replaces the opening balance, balanced against Opening Balance Adjustments
// @Tags accounts
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param account_id path string true "Account ID"
// @Param balance body dto.OpeningBalanceRequest true "Opening balance"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Opening balance is being written concurrently"
// @Failure 500 {object} map[string]string "Failed to set opening balance"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/accounts/{account_id}/opening-balance [put]
func (h *accountHandler) setOpeningBalance(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	accountID := c.Param("account_id")

	var req dto.OpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "opening balance")
		return
	}

	result, err := h.postingService.SetOpeningBalance(c.Request.Context(), tenantID, accountID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "set opening balance")
		return
	}

	logger.Info("Opening balance set", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, dto.ToOperationResponse(result))
}
