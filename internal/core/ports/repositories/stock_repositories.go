package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// StockReader defines read operations over the item stock ledger
type StockReader interface {
	// ListStockEntries returns entries created at or before upTo, ordered by item and time.
	ListStockEntries(ctx context.Context, tenantID string, upTo time.Time) ([]domain.StockEntry, error)
}

// StockWriter defines write operations over the item stock ledger
type StockWriter interface {
	// SaveStockEntry appends an entry.
	SaveStockEntry(ctx context.Context, entry domain.StockEntry) error
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}
