package mapping

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
)

// ToModelStockEntry converts a domain StockEntry to a model StockEntry
func ToModelStockEntry(d domain.StockEntry) models.StockEntry {
	return models.StockEntry{
		EntryID:         d.EntryID,
		TenantID:        d.TenantID,
		ItemID:          d.ItemID,
		DebitQuantity:   d.DebitQuantity,
		CreditQuantity:  d.CreditQuantity,
		CostPrice:       d.CostPrice,
		CreatedDateTime: d.CreatedDateTime,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainStockEntrySlice converts a slice of model StockEntries to domain StockEntries
func ToDomainStockEntrySlice(ms []models.StockEntry) []domain.StockEntry {
	ds := make([]domain.StockEntry, len(ms))
	for i, m := range ms {
		ds[i] = domain.StockEntry{
			EntryID:         m.EntryID,
			TenantID:        m.TenantID,
			ItemID:          m.ItemID,
			DebitQuantity:   m.DebitQuantity,
			CreditQuantity:  m.CreditQuantity,
			CostPrice:       m.CostPrice,
			CreatedDateTime: m.CreatedDateTime.UTC(),
			CreatedBy:       m.CreatedBy,
		}
	}
	return ds
}
