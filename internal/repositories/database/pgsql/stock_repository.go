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

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for the item stock ledger.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

func (r *PgxStockRepository) ListStockEntries(ctx context.Context, tenantID string, upTo time.Time) ([]domain.StockEntry, error) {
	query := `
		SELECT entry_id, tenant_id, item_id, debit_quantity, credit_quantity, cost_price, created_date_time, created_by
		FROM stock_entries
		WHERE tenant_id = $1 AND created_date_time <= $2
		ORDER BY item_id, created_date_time, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, upTo)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stock entries", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StockEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect stock entries", err)
	}
	return mapping.ToDomainStockEntrySlice(entries), nil
}

func (r *PgxStockRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) error {
	m := mapping.ToModelStockEntry(entry)
	query := `
		INSERT INTO stock_entries (entry_id, tenant_id, item_id, debit_quantity, credit_quantity, cost_price, created_date_time, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.TenantID,
		m.ItemID,
		m.DebitQuantity,
		m.CreditQuantity,
		m.CostPrice,
		m.CreatedDateTime,
		m.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save stock entry "+m.EntryID, err)
	}
	return nil
}
