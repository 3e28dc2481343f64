package services

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account of the tenant.
	GetAccountByID(ctx context.Context, tenantID, accountID, userID string) (*domain.Account, error)

	// ListAccounts retrieves a page of accounts, optionally filtered by subhead.
	ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount validates the classification and persists a new account.
	CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount edits an account. Classification is frozen once the account is in use.
	UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeleteAccount removes an unused, childless account.
	DeleteAccount(ctx context.Context, tenantID, accountID, userID string) error

	// SeedDefaultAccounts inserts the default chart, skipping names that already exist.
	// It returns only the accounts it created.
	SeedDefaultAccounts(ctx context.Context, tenantID, userID string) ([]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
