package dto

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// StockEntryRequest appends one movement to the item stock ledger.
type StockEntryRequest struct {
	ItemID         string          `json:"itemID" binding:"required,max=100"`
	DebitQuantity  decimal.Decimal `json:"debitQuantity"`
	CreditQuantity decimal.Decimal `json:"creditQuantity"`
	CostPrice      decimal.Decimal `json:"costPrice"`
	// EntryDate is an optional tenant-formatted date; the entry is stamped now when empty.
	EntryDate string `json:"entryDate" binding:"omitempty,tenant_date"`
}

// StockEntryResponse defines the data returned for a stock entry.
type StockEntryResponse struct {
	EntryID         string          `json:"entryID"`
	ItemID          string          `json:"itemID"`
	DebitQuantity   decimal.Decimal `json:"debitQuantity"`
	CreditQuantity  decimal.Decimal `json:"creditQuantity"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	CreatedDateTime string          `json:"createdDateTime"`
}

// StockValuationParams are the query parameters of a valuation request.
type StockValuationParams struct {
	AsOf   string `form:"asOf" binding:"required,period_token"`
	Side   string `form:"side,default=closing" binding:"oneof=opening closing"`
	Format string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// ItemValuationResponse is one valued item.
type ItemValuationResponse struct {
	ItemID        string          `json:"itemID"`
	Quantity      decimal.Decimal `json:"quantity"`
	LastCostPrice decimal.Decimal `json:"lastCostPrice"`
	Value         decimal.Decimal `json:"value"`
	Oversold      bool            `json:"oversold"`
}

// StockValuationResponse is the valuation of the whole stock ledger at an instant.
type StockValuationResponse struct {
	AsOf          string                  `json:"asOf"`
	Side          string                  `json:"side"`
	Items         []ItemValuationResponse `json:"items"`
	Total         decimal.Decimal         `json:"total"`
	NegativeStock bool                    `json:"negativeStock"`
	OversoldItems []string                `json:"oversoldItems"`
}

// ToStockEntryResponse converts a stock entry, rendering its date in the tenant format.
func ToStockEntryResponse(e *domain.StockEntry, f DateFormatter) StockEntryResponse {
	return StockEntryResponse{
		EntryID:         e.EntryID,
		ItemID:          e.ItemID,
		DebitQuantity:   e.DebitQuantity,
		CreditQuantity:  e.CreditQuantity,
		CostPrice:       e.CostPrice,
		CreatedDateTime: f.FormatDate(e.CreatedDateTime),
	}
}

// ToStockValuationResponse rounds values and renders the valuation date.
func ToStockValuationResponse(v *domain.StockValuation, f DateFormatter) StockValuationResponse {
	res := StockValuationResponse{
		AsOf:          f.FormatDate(v.AsOf),
		Side:          string(v.Side),
		Items:         make([]ItemValuationResponse, len(v.Items)),
		Total:         accounting.Round2(v.Total),
		NegativeStock: v.NegativeStock,
		OversoldItems: nonNil(v.OversoldItems),
	}
	for i, it := range v.Items {
		res.Items[i] = ItemValuationResponse{
			ItemID:        it.ItemID,
			Quantity:      it.Quantity,
			LastCostPrice: it.LastCostPrice,
			Value:         accounting.Round2(it.Value),
			Oversold:      it.Oversold,
		}
	}
	return res
}
