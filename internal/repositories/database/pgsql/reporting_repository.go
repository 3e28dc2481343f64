package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// accountTotalsQuery sums active postings per account. Callers append the range filter.
const accountTotalsQuery = `
	SELECT
		a.account_id,
		a.name AS account_name,
		a.account_subhead,
		COALESCE(SUM(p.debit_amount), 0) AS total_debit,
		COALESCE(SUM(p.credit_amount), 0) AS total_credit
	FROM postings p
	JOIN accounts a ON a.tenant_id = p.tenant_id AND a.account_id = p.account_id
	WHERE p.tenant_id = $1 AND p.superseded_at IS NULL
`

const accountTotalsGroupBy = `
	GROUP BY a.account_id, a.name, a.account_subhead
	ORDER BY a.name, a.account_id
`

// ListLedgerRows returns active postings with their account classification, in posting order
func (r *reportingRepository) ListLedgerRows(ctx context.Context, tenantID string, start *time.Time, end time.Time) ([]domain.LedgerRow, error) {
	query := `
		SELECT
			p.posting_id, p.tenant_id, p.operation_id, p.transaction_id, p.account_id, p.action,
			p.debit_amount, p.credit_amount, p.remark, p.created_date_time, p.created_by,
			p.superseded_at, p.superseded_by,
			a.name AS account_name, a.account_group, a.account_head, a.account_subhead
		FROM postings p
		JOIN accounts a ON a.tenant_id = p.tenant_id AND a.account_id = p.account_id
		WHERE p.tenant_id = $1
			AND p.superseded_at IS NULL
			AND ($2::timestamptz IS NULL OR p.created_date_time >= $2)
			AND p.created_date_time <= $3
		ORDER BY p.created_date_time, p.transaction_id, p.posting_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, start, end)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying ledger rows", err)
	}
	defer rows.Close()

	ledgerRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerRow])
	if err != nil {
		return nil, apperrors.NewAppError(500, "error collecting ledger rows", err)
	}
	return mapping.ToDomainLedgerRowSlice(ledgerRows), nil
}

// AccountTotalsBefore sums each account's active postings strictly before the instant
func (r *reportingRepository) AccountTotalsBefore(ctx context.Context, tenantID string, before time.Time) ([]domain.AccountTotal, error) {
	query := accountTotalsQuery + `AND p.created_date_time < $2` + accountTotalsGroupBy
	return r.collectTotals(ctx, query, tenantID, before)
}

// SubheadAccountTotals sums the active postings of each account under a subhead within the range
func (r *reportingRepository) SubheadAccountTotals(ctx context.Context, tenantID string, subhead domain.AccountSubhead, start *time.Time, end time.Time) ([]domain.AccountTotal, error) {
	query := accountTotalsQuery + `
		AND a.account_subhead = $2
		AND ($3::timestamptz IS NULL OR p.created_date_time >= $3)
		AND p.created_date_time <= $4
	` + accountTotalsGroupBy
	return r.collectTotals(ctx, query, tenantID, string(subhead), start, end)
}

func (r *reportingRepository) collectTotals(ctx context.Context, query string, args ...any) ([]domain.AccountTotal, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error querying account totals", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccountTotal])
	if err != nil {
		return nil, apperrors.NewAppError(500, "error collecting account totals", err)
	}
	return mapping.ToDomainAccountTotalSlice(totals), nil
}
