package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry is a row of the stock_entries table.
type StockEntry struct {
	EntryID         string          `db:"entry_id"`
	TenantID        string          `db:"tenant_id"`
	ItemID          string          `db:"item_id"`
	DebitQuantity   decimal.Decimal `db:"debit_quantity"`
	CreditQuantity  decimal.Decimal `db:"credit_quantity"`
	CostPrice       decimal.Decimal `db:"cost_price"`
	CreatedDateTime time.Time       `db:"created_date_time"`
	CreatedBy       string          `db:"created_by"`
}
