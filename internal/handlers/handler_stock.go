package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/export"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// stockHandler handles HTTP requests for the item stock ledger.
type stockHandler struct {
	stockService  portssvc.StockSvcFacade
	tenantService portssvc.TenantReaderSvc
}

func newStockHandler(ss portssvc.StockSvcFacade, ts portssvc.TenantReaderSvc) *stockHandler {
	return &stockHandler{stockService: ss, tenantService: ts}
}

func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade, tenantService portssvc.TenantReaderSvc) {
	h := newStockHandler(stockService, tenantService)

	rg.POST("/stock-entries", h.recordStockEntry)
	rg.GET("/stock/valuation", h.getValuation)
}

// recordStockEntry godoc
// @Summary Record a stock movement
// @Description Appends an inward (debit) or outward (credit) quantity with its cost price
// @Tags stock
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param entry body dto.StockEntryRequest true "Stock movement"
// @Success 201 {object} dto.StockEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to record stock entry"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/stock-entries [post]
func (h *stockHandler) recordStockEntry(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.StockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "stock entry")
		return
	}

	entry, err := h.stockService.RecordStockEntry(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "record stock entry")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "record stock entry")
		return
	}

	logger.Info("Stock entry recorded", slog.String("item_id", entry.ItemID))
	c.JSON(http.StatusCreated, dto.ToStockEntryResponse(entry, dates))
}

// getValuation godoc
// @Summary Value the stock
// @Description Values every item at its last cost price. Opening excludes entries at asOf, closing includes them.
// @Tags stock
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tenant_id path string true "Tenant ID"
// @Param asOf query string true "Period token or tenant date"
// @Param side query string false "opening or closing" default(closing)
// @Param format query string false "json or xlsx"
// @Success 200 {object} dto.StockValuationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to value stock"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/stock/valuation [get]
func (h *stockHandler) getValuation(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.StockValuationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	valuation, err := h.stockService.Valuation(c.Request.Context(), tenantID, params.AsOf, domain.ValuationSide(params.Side), userID)
	if err != nil {
		respondServiceError(c, logger, err, "value stock")
		return
	}
	dates, err := tenantDates(c.Request.Context(), h.tenantService, tenantID)
	if err != nil {
		respondServiceError(c, logger, err, "value stock")
		return
	}

	if valuation.NegativeStock {
		logger.Warn("Stock valuation has oversold items", slog.Any("items", valuation.OversoldItems))
	}
	respondReport(c, logger, params.Format, "stock-valuation",
		func() any { return dto.ToStockValuationResponse(valuation, dates) },
		func() (*excelize.File, error) { return export.StockValuation(valuation) })
}
