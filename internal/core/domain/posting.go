package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalanceTransactionID is the transaction reference carried by every opening-balance posting.
const OpeningBalanceTransactionID = "OB"

// PostingAction tags the business origin of a posting.
type PostingAction string

const (
	ActionOpeningBalance PostingAction = "Opening Balance"
	ActionJournal        PostingAction = "Journal"
	ActionExpense        PostingAction = "Expense"
	ActionInvoice        PostingAction = "Invoice"
	ActionBill           PostingAction = "Bill"
	ActionPayment        PostingAction = "Payment"
)

// Posting is one debit/credit ledger row tied to a source operation.
type Posting struct {
	PostingID       string          `json:"postingID"`
	TenantID        string          `json:"tenantID"`
	OperationID     string          `json:"operationID"`
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	Action          PostingAction   `json:"action"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	Remark          string          `json:"remark"`
	CreatedDateTime time.Time       `json:"createdDateTime"`
	CreatedBy       string          `json:"createdBy"`
	SupersededAt    *time.Time      `json:"supersededAt,omitempty"`
	SupersededBy    *string         `json:"supersededBy,omitempty"`
}

// IsActive reports whether the posting has not been superseded by a replacement.
func (p Posting) IsActive() bool {
	return p.SupersededAt == nil
}

// PostingLine is a validated entry of an ingest request before it becomes a Posting.
type PostingLine struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
	Remark    string
}

// OperationWriteMode distinguishes first ingestion from replacement of an operation's postings.
type OperationWriteMode int

const (
	// WriteCreate fails when active postings already exist for the operation.
	WriteCreate OperationWriteMode = iota
	// WriteReplace supersedes existing active postings and keeps their timestamp.
	WriteReplace
)

// OperationWrite is the unit the posting store applies atomically.
type OperationWrite struct {
	TenantID      string
	OperationID   string
	TransactionID string
	// SequenceKey, when set and TransactionID is empty, numbers the transaction from the tenant counter.
	SequenceKey string
	Action      PostingAction
	Lines       []PostingLine
	Mode        OperationWriteMode
	UserID      string
	Now         time.Time
	// StampAt overrides the created timestamp, even on replace.
	StampAt *time.Time
}

// FormatSequence renders a counter value as a document number, e.g. JV-00042.
func FormatSequence(prefix string, n int64) string {
	return fmt.Sprintf("%s-%05d", prefix, n)
}

// OpeningBalanceOperationID is the operation that owns an account's opening balance.
func OpeningBalanceOperationID(accountID string) string {
	return "OB-" + accountID
}

// OperationResult is what the store wrote.
type OperationResult struct {
	OperationID   string
	TransactionID string
	CreatedAt     time.Time
	Postings      []Posting
	// Superseded counts rows that were marked superseded by this write.
	Superseded int
}

// LedgerRow is a posting joined to its account classification, the shape report derivers consume.
type LedgerRow struct {
	Posting
	AccountName string         `json:"accountName"`
	Subhead     AccountSubhead `json:"subhead"`
	Head        AccountHead    `json:"head"`
	Group       AccountGroup   `json:"group"`
}

// AccountTotal is Σdebit/Σcredit of one account over some predicate.
type AccountTotal struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Subhead     AccountSubhead  `json:"subhead"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// UnbalancedGroup describes an operation whose active postings do not balance.
type UnbalancedGroup struct {
	OperationID   string          `json:"operationID"`
	TransactionID string          `json:"transactionID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}
