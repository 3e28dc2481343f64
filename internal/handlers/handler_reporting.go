package handlers

import (
	"log/slog"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/export"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	tenantService    portssvc.TenantReaderSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, ts portssvc.TenantReaderSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs, tenantService: ts}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, tenantService portssvc.TenantReaderSvc) {
	h := newReportingHandler(reportingService, tenantService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/day-book", h.getDayBook)
		reportingGroup.GET("/trading-account", h.getTradingAccount)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/receivable-aging", h.getReceivableAging)
		reportingGroup.GET("/payable-aging", h.getPayableAging)
	}
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Groups account activity by subhead and tenant-local month, with opening balances carried in
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param period query string true "YYYY-MM, YYYY or date..date"
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}
	logger = logger.With(slog.String("period", params.Period))

	report, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID, params.Period, userID)
	if err != nil {
		respondServiceError(c, logger, err, "generate trial balance report")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "generate trial balance report")
		return
	}

	if !report.IsBalanced {
		logger.Warn("Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	respondReport(c, logger, params.Format, "trial-balance",
		func() any { return dto.ToTrialBalanceResponse(report, dates) },
		func() (*excelize.File, error) { return export.TrialBalance(report) })
}

// getDayBook godoc
// @Summary Generate day book
// @Description Lists transactions between two tenant dates with running totals
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param startDate query string true "First day, in the tenant date format"
// @Param endDate query string true "Last day, in the tenant date format"
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.DayBookResponse
// @Failure 400 {object} map[string]string "Invalid dates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/day-book [get]
func (h *reportingHandler) getDayBook(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.DayBookParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	report, err := h.reportingService.DayBook(c.Request.Context(), tenantID, params.StartDate, params.EndDate, userID)
	if err != nil {
		respondServiceError(c, logger, err, "generate day book")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "generate day book")
		return
	}

	respondReport(c, logger, params.Format, "day-book",
		func() any { return dto.ToDayBookResponse(report, dates) },
		func() (*excelize.File, error) { return export.DayBook(report) })
}

// getTradingAccount godoc
// @Summary Generate trading account
// @Description Computes gross profit or loss including opening and closing stock
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param period query string true "YYYY-MM, YYYY or date..date"
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.TradingAccountResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/trading-account [get]
func (h *reportingHandler) getTradingAccount(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	report, err := h.reportingService.TradingAccount(c.Request.Context(), tenantID, params.Period, userID)
	if err != nil {
		respondServiceError(c, logger, err, "generate trading account")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "generate trading account")
		return
	}

	respondReport(c, logger, params.Format, "trading-account",
		func() any { return dto.ToTradingAccountResponse(report, dates) },
		func() (*excelize.File, error) { return export.TradingAccount(report) })
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Carries the trading result into indirect income and expense
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param period query string true "YYYY-MM, YYYY or date..date"
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), tenantID, params.Period, userID)
	if err != nil {
		respondServiceError(c, logger, err, "generate profit and loss report")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "generate profit and loss report")
		return
	}

	respondReport(c, logger, params.Format, "profit-and-loss",
		func() any { return dto.ToProfitAndLossResponse(report, dates) },
		func() (*excelize.File, error) { return export.ProfitAndLoss(report) })
}

// getBalanceSheet godoc
// @Summary Generate balance sheet
// @Description Position as of the end of the period, with the P&L carried into equity
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param period query string true "YYYY-MM, YYYY or date..date; only the end is used"
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), tenantID, params.Period, userID)
	if err != nil {
		respondServiceError(c, logger, err, "generate balance sheet")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "generate balance sheet")
		return
	}

	if !report.IsBalanced || report.NegativeStock {
		logger.Warn("Balance sheet has consistency problems",
			slog.Bool("is_balanced", report.IsBalanced),
			slog.String("difference", report.Difference.String()),
			slog.Bool("negative_stock", report.NegativeStock))
	}
	respondReport(c, logger, params.Format, "balance-sheet",
		func() any { return dto.ToBalanceSheetResponse(report, dates) },
		func() (*excelize.File, error) { return export.BalanceSheet(report) })
}

// getReceivableAging godoc
// @Summary Generate receivable aging
// @Description Buckets the outstanding sales invoices of a tenant-local calendar year by days overdue
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param year query int true "Calendar year"
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.ReceivableAgingResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/receivable-aging [get]
func (h *reportingHandler) getReceivableAging(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.AgingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	report, err := h.reportingService.ReceivableAging(c.Request.Context(), tenantID, params.Year, userID)
	if err != nil {
		respondServiceError(c, logger, err, "generate receivable aging")
		return
	}

	respondReport(c, logger, params.Format, "receivable-aging",
		func() any { return dto.ToReceivableAgingResponse(report) },
		func() (*excelize.File, error) { return export.ReceivableAging(report) })
}

// getPayableAging godoc
// @Summary Generate payable aging
// @Description Itemizes the outstanding purchase bills of a tenant-local calendar year by supplier and bucket
// @Tags reports
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param year query int true "Calendar year"
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.PayableAgingResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/payable-aging [get]
func (h *reportingHandler) getPayableAging(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}
	var params dto.AgingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	report, err := h.reportingService.PayableAging(c.Request.Context(), tenantID, params.Year, userID)
	if err != nil {
		respondServiceError(c, logger, err, "generate payable aging")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "generate payable aging")
		return
	}

	respondReport(c, logger, params.Format, "payable-aging",
		func() any { return dto.ToPayableAgingResponse(report, dates) },
		func() (*excelize.File, error) { return export.PayableAging(report) })
}
