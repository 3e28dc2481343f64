package services

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/dto"
)

// StockSvcFacade defines operations over the item stock ledger
type StockSvcFacade interface {
	// RecordStockEntry appends a quantity movement.
	RecordStockEntry(ctx context.Context, tenantID string, req dto.StockEntryRequest, userID string) (*domain.StockEntry, error)

	// Valuation values inventory at the end of the period named by asOf.
	Valuation(ctx context.Context, tenantID, asOf string, side domain.ValuationSide, userID string) (*domain.StockValuation, error)
}
