package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests related to tenant settings.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService)

	rg.GET("", h.getTenant)
	rg.PUT("/settings", h.updateSettings)
}

// getTenant godoc
// @Summary Get tenant settings
// @Description Retrieves the tenant's name, timezone and date format
// @Tags tenants
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (not a member)"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve tenant"
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	tenant, err := h.tenantService.GetTenant(c.Request.Context(), tenantID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve tenant")
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateSettings godoc
// @Summary Update tenant date settings
// @Description Changes the timezone, date format or date separator. Admin only.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param settings body dto.UpdateTenantSettingsRequest true "New settings"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (admin only)"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to update tenant"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/settings [put]
func (h *tenantHandler) updateSettings(c *gin.Context) {
	tenantID, userID, logger, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateTenantSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "tenant settings")
		return
	}

	tenant, err := h.tenantService.UpdateTenantSettings(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "update tenant settings")
		return
	}

	logger.Info("Tenant settings updated",
		slog.String("timezone", tenant.Timezone),
		slog.String("date_format", tenant.DateFormat))
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}
