package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultAccountPageSize = 50

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

var FULL_ACCOUNT_SELECT_QUERY = `
SELECT
	a.account_id, a.tenant_id, a.name, a.code, a.description, a.parent_account_id,
	a.account_group, a.account_head, a.account_subhead, a.system_protected,
	a.bank_account_number, a.bank_ifsc,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM accounts a
`

// getAccounts runs the full account select with the given filter
func (r *PgxAccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, FULL_ACCOUNT_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect account rows", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (
			account_id, tenant_id, name, code, description, parent_account_id,
			account_group, account_head, account_subhead, system_protected,
			bank_account_number, bank_ifsc,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.TenantID,
		m.Name,
		m.Code,
		m.Description,
		m.ParentAccountID,
		m.AccountGroup,
		m.AccountHead,
		m.AccountSubhead,
		m.SystemProtected,
		m.BankAccountNumber,
		m.BankIFSC,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: account %q already exists", apperrors.ErrDuplicate, m.Name)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: tenant or parent account does not exist", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to save account "+m.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $3, code = $4, description = $5, parent_account_id = $6,
			account_group = $7, account_head = $8, account_subhead = $9,
			bank_account_number = $10, bank_ifsc = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE tenant_id = $1 AND account_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.AccountID,
		m.Name,
		m.Code,
		m.Description,
		m.ParentAccountID,
		m.AccountGroup,
		m.AccountHead,
		m.AccountSubhead,
		m.BankAccountNumber,
		m.BankIFSC,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: account %q already exists", apperrors.ErrDuplicate, m.Name)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: parent account does not exist", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to update account "+m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account")
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, tenantID, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE tenant_id = $1 AND account_id = $2;`, tenantID, accountID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: account %s is still referenced", apperrors.ErrConflict, accountID)
		}
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account")
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, `WHERE a.tenant_id = $1 AND a.account_id = $2`, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("account")
	}
	return &accounts[0], nil
}

func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, tenantID, name string) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, `WHERE a.tenant_id = $1 AND a.name = $2`, tenantID, name)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("account")
	}
	return &accounts[0], nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs; missing ids are simply absent from the map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	accounts, err := r.getAccounts(ctx, `WHERE a.tenant_id = $1 AND a.account_id = ANY($2)`, tenantID, accountIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.AccountID] = a
	}
	return byID, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, tenantID string, subhead *domain.AccountSubhead, limit, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = defaultAccountPageSize
	}
	if offset < 0 {
		offset = 0
	}
	var subheadFilter *string
	if subhead != nil {
		s := string(*subhead)
		subheadFilter = &s
	}
	return r.getAccounts(ctx, `
		WHERE a.tenant_id = $1 AND ($2::text IS NULL OR a.account_subhead = $2)
		ORDER BY a.name, a.account_id
		LIMIT $3 OFFSET $4`,
		tenantID, subheadFilter, limit, offset)
}

func (r *PgxAccountRepository) CountChildAccounts(ctx context.Context, tenantID, accountID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE tenant_id = $1 AND parent_account_id = $2;`,
		tenantID, accountID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count child accounts of "+accountID, err)
	}
	return count, nil
}
