package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the reports.
// Only active postings are ever returned.
type ReportingRepository interface {
	// ListLedgerRows returns postings joined to their accounts with start <= created <= end,
	// ordered by created time. A nil start means no lower bound.
	ListLedgerRows(ctx context.Context, tenantID string, start *time.Time, end time.Time) ([]domain.LedgerRow, error)

	// AccountTotalsBefore sums every account's postings created strictly before the instant.
	AccountTotalsBefore(ctx context.Context, tenantID string, before time.Time) ([]domain.AccountTotal, error)

	// SubheadAccountTotals sums postings of each account under one subhead within the range.
	SubheadAccountTotals(ctx context.Context, tenantID string, subhead domain.AccountSubhead, start *time.Time, end time.Time) ([]domain.AccountTotal, error)
}
