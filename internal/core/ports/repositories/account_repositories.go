package repositories

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByID retrieves an account of the tenant by its identifier.
	FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error)

	// FindAccountByName retrieves an account of the tenant by its unique name.
	FindAccountByName(ctx context.Context, tenantID, name string) (*domain.Account, error)

	// FindAccountsByIDs retrieves the accounts that exist among accountIDs, keyed by id.
	FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a page of accounts ordered by name, optionally filtered by subhead.
	ListAccounts(ctx context.Context, tenantID string, subhead *domain.AccountSubhead, limit, offset int) ([]domain.Account, error)

	// CountChildAccounts counts accounts whose parent is accountID.
	CountChildAccounts(ctx context.Context, tenantID, accountID string) (int, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount persists a new account. A name already used in the tenant yields ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount overwrites the mutable fields of an account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, tenantID, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
