package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry is one movement in the item quantity ledger. Debit is stock in, credit is stock out.
type StockEntry struct {
	EntryID         string          `json:"entryID"`
	TenantID        string          `json:"tenantID"`
	ItemID          string          `json:"itemID"`
	DebitQuantity   decimal.Decimal `json:"debitQuantity"`
	CreditQuantity  decimal.Decimal `json:"creditQuantity"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	CreatedDateTime time.Time       `json:"createdDateTime"`
	CreatedBy       string          `json:"createdBy"`
}

// ValuationSide selects the date predicate of a stock valuation.
type ValuationSide string

const (
	// SideOpening counts entries strictly before asOf.
	SideOpening ValuationSide = "opening"
	// SideClosing counts entries at or before asOf.
	SideClosing ValuationSide = "closing"
)

// Includes reports whether an entry at t is counted for a valuation at asOf.
func (s ValuationSide) Includes(t, asOf time.Time) bool {
	if s == SideOpening {
		return t.Before(asOf)
	}
	return !t.After(asOf)
}

// ItemValuation is the per-item line of a stock valuation.
type ItemValuation struct {
	ItemID string `json:"itemID"`
	// Quantity is signed: negative means more went out than came in.
	Quantity      decimal.Decimal `json:"quantity"`
	LastCostPrice decimal.Decimal `json:"lastCostPrice"`
	Value         decimal.Decimal `json:"value"`
	Oversold      bool            `json:"oversold"`
}

// StockValuation is the inventory value of a tenant at one instant.
type StockValuation struct {
	AsOf          time.Time       `json:"asOf"`
	Side          ValuationSide   `json:"side"`
	Items         []ItemValuation `json:"items"`
	Total         decimal.Decimal `json:"total"`
	NegativeStock bool            `json:"negativeStock"`
	OversoldItems []string        `json:"oversoldItems"`
}
