package services

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Period tokens and dates are interpreted in the tenant's timezone and date format.
type ReportingService interface {
	// TrialBalance generates the trial balance for a period.
	TrialBalance(ctx context.Context, tenantID, periodToken, userID string) (*domain.TrialBalanceReport, error)

	// DayBook lists transactions between two tenant dates.
	DayBook(ctx context.Context, tenantID, startDate, endDate, userID string) (*domain.DayBookReport, error)

	// TradingAccount computes gross profit or loss for a period.
	TradingAccount(ctx context.Context, tenantID, periodToken, userID string) (*domain.TradingAccount, error)

	// ProfitAndLoss computes net profit or loss for a period.
	ProfitAndLoss(ctx context.Context, tenantID, periodToken, userID string) (*domain.ProfitAndLoss, error)

	// BalanceSheet generates the balance sheet as of the end of the period.
	BalanceSheet(ctx context.Context, tenantID, periodToken, userID string) (*domain.BalanceSheet, error)

	// ReceivableAging buckets the sales invoices of a tenant-local calendar year.
	ReceivableAging(ctx context.Context, tenantID string, year int, userID string) (*domain.ReceivableAging, error)

	// PayableAging itemizes the purchase bills of a tenant-local calendar year.
	PayableAging(ctx context.Context, tenantID string, year int, userID string) (*domain.PayableAging, error)
}
