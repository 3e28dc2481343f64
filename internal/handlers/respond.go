package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/export"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const formatXLSX = "xlsx"

// workbookBuilder renders a report as a workbook.
type workbookBuilder func() (*excelize.File, error)

// respondReport writes either the JSON body or, for format=xlsx, the workbook built by build.
func respondReport(c *gin.Context, logger *slog.Logger, format, filename string, body func() any, build workbookBuilder) {
	if format != formatXLSX {
		c.JSON(http.StatusOK, body())
		return
	}

	f, err := build()
	if err != nil {
		respondServiceError(c, logger, err, "render workbook")
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("Failed to close workbook", slog.String("error", cerr.Error()))
		}
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondServiceError(c, logger, err, "render workbook")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// tenantDates returns the tenant's date formatter. It is only called after a
// service call has authorized the user for the tenant.
func tenantDates(ctx context.Context, tenants portssvc.TenantReaderSvc, tenantID string) (dto.DateFormatter, error) {
	resolver, err := tenants.ResolverForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return resolver, nil
}
