package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is a row of the postings table. Superseded rows are kept for history.
type Posting struct {
	PostingID       string          `db:"posting_id"`
	TenantID        string          `db:"tenant_id"`
	OperationID     string          `db:"operation_id"`
	TransactionID   string          `db:"transaction_id"`
	AccountID       string          `db:"account_id"`
	Action          string          `db:"action"`
	DebitAmount     decimal.Decimal `db:"debit_amount"`
	CreditAmount    decimal.Decimal `db:"credit_amount"`
	Remark          string          `db:"remark"`
	CreatedDateTime time.Time       `db:"created_date_time"`
	CreatedBy       string          `db:"created_by"`
	SupersededAt    *time.Time      `db:"superseded_at"`
	SupersededBy    *string         `db:"superseded_by"`
}

// LedgerRow is a posting joined to the classification of its account.
type LedgerRow struct {
	Posting
	AccountName    string `db:"account_name"`
	AccountGroup   string `db:"account_group"`
	AccountHead    string `db:"account_head"`
	AccountSubhead string `db:"account_subhead"`
}

// AccountTotal is an aggregate row of summed debits and credits per account.
type AccountTotal struct {
	AccountID      string          `db:"account_id"`
	AccountName    string          `db:"account_name"`
	AccountSubhead string          `db:"account_subhead"`
	TotalDebit     decimal.Decimal `db:"total_debit"`
	TotalCredit    decimal.Decimal `db:"total_credit"`
}

// UnbalancedGroup is an operation whose active sides differ.
type UnbalancedGroup struct {
	OperationID   string          `db:"operation_id"`
	TransactionID string          `db:"transaction_id"`
	TotalDebit    decimal.Decimal `db:"total_debit"`
	TotalCredit   decimal.Decimal `db:"total_credit"`
}
