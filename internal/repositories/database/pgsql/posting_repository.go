package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPostingRepository struct {
	BaseRepository
}

// newPgxPostingRepository creates a new repository for the posting store.
func newPgxPostingRepository(pool *pgxpool.Pool) portsrepo.PostingRepositoryWithTx {
	return &PgxPostingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPostingRepository implements portsrepo.PostingRepositoryWithTx
var _ portsrepo.PostingRepositoryWithTx = (*PgxPostingRepository)(nil)

var FULL_POSTING_SELECT_QUERY = `
SELECT
	p.posting_id, p.tenant_id, p.operation_id, p.transaction_id, p.account_id, p.action,
	p.debit_amount, p.credit_amount, p.remark, p.created_date_time, p.created_by,
	p.superseded_at, p.superseded_by
FROM postings p
`

func (r *PgxPostingRepository) getPostings(ctx context.Context, filterQuery string, args ...any) ([]domain.Posting, error) {
	rows, err := r.Pool.Query(ctx, FULL_POSTING_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query postings", err)
	}
	defer rows.Close()

	modelPostings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Posting])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect posting rows", err)
	}
	return mapping.ToDomainPostingSlice(modelPostings), nil
}

func (r *PgxPostingRepository) FindActivePostings(ctx context.Context, tenantID, operationID string) ([]domain.Posting, error) {
	return r.getPostings(ctx, `
		WHERE p.tenant_id = $1 AND p.operation_id = $2 AND p.superseded_at IS NULL
		ORDER BY p.created_date_time, p.posting_id`,
		tenantID, operationID)
}

func (r *PgxPostingRepository) FindPostingHistory(ctx context.Context, tenantID, operationID string) ([]domain.Posting, error) {
	return r.getPostings(ctx, `
		WHERE p.tenant_id = $1 AND p.operation_id = $2
		ORDER BY p.superseded_at ASC NULLS LAST, p.created_date_time, p.posting_id`,
		tenantID, operationID)
}

func (r *PgxPostingRepository) CountActivePostingsForAccount(ctx context.Context, tenantID, accountID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM postings
		WHERE tenant_id = $1 AND account_id = $2 AND superseded_at IS NULL;`,
		tenantID, accountID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count postings for account "+accountID, err)
	}
	return count, nil
}

func (r *PgxPostingRepository) FindUnbalancedOperations(ctx context.Context, tenantID string) ([]domain.UnbalancedGroup, error) {
	query := `
		SELECT
			operation_id,
			MIN(transaction_id) AS transaction_id,
			SUM(debit_amount) AS total_debit,
			SUM(credit_amount) AS total_credit
		FROM postings
		WHERE tenant_id = $1 AND superseded_at IS NULL
		GROUP BY operation_id
		HAVING SUM(debit_amount) <> SUM(credit_amount)
		ORDER BY operation_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query unbalanced operations", err)
	}
	defer rows.Close()

	groups, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UnbalancedGroup])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect unbalanced operations", err)
	}
	return mapping.ToDomainUnbalancedGroupSlice(groups), nil
}

// ApplyOperation writes a posting set in one database transaction. Writers of the
// same operation are serialized by a transaction-scoped advisory lock, so the
// active-set read, the supersede and the inserts see a stable view.
func (r *PgxPostingRepository) ApplyOperation(ctx context.Context, w domain.OperationWrite) (*domain.OperationResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, w.TenantID+":"+w.OperationID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock operation "+w.OperationID, err)
	}

	var firstCreated *time.Time
	var existingTxnID *string
	var activeCount int
	err = tx.QueryRow(ctx, `
		SELECT MIN(created_date_time), MIN(transaction_id), COUNT(*)
		FROM postings
		WHERE tenant_id = $1 AND operation_id = $2 AND superseded_at IS NULL;`,
		w.TenantID, w.OperationID,
	).Scan(&firstCreated, &existingTxnID, &activeCount)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read active postings of "+w.OperationID, err)
	}
	if w.Mode == domain.WriteCreate && activeCount > 0 {
		return nil, fmt.Errorf("%w: operation %s already has postings", apperrors.ErrDuplicate, w.OperationID)
	}

	createdAt := w.Now
	if firstCreated != nil {
		createdAt = firstCreated.UTC()
	}
	if w.StampAt != nil {
		createdAt = *w.StampAt
	}

	transactionID := w.TransactionID
	if transactionID == "" && existingTxnID != nil {
		transactionID = *existingTxnID
	}
	if transactionID == "" && w.SequenceKey != "" {
		var next int64
		err := tx.QueryRow(ctx, `
			INSERT INTO sequence_counters (tenant_id, sequence_key, last_value)
			VALUES ($1, $2, 1)
			ON CONFLICT (tenant_id, sequence_key)
			DO UPDATE SET last_value = sequence_counters.last_value + 1
			RETURNING last_value;`,
			w.TenantID, w.SequenceKey,
		).Scan(&next)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to advance sequence "+w.SequenceKey, err)
		}
		transactionID = domain.FormatSequence(w.SequenceKey, next)
	}
	if transactionID == "" {
		transactionID = w.OperationID
	}

	superseded := int64(0)
	if activeCount > 0 {
		tag, err := tx.Exec(ctx, `
			UPDATE postings
			SET superseded_at = $3, superseded_by = $4
			WHERE tenant_id = $1 AND operation_id = $2 AND superseded_at IS NULL;`,
			w.TenantID, w.OperationID, w.Now, w.UserID,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to supersede postings of "+w.OperationID, err)
		}
		superseded = tag.RowsAffected()
	}

	result := &domain.OperationResult{
		OperationID:   w.OperationID,
		TransactionID: transactionID,
		CreatedAt:     createdAt,
		Postings:      make([]domain.Posting, 0, len(w.Lines)),
		Superseded:    int(superseded),
	}

	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO postings (
			posting_id, tenant_id, operation_id, transaction_id, account_id, action,
			debit_amount, credit_amount, remark, created_date_time, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range w.Lines {
		p := domain.Posting{
			PostingID:       uuid.NewString(),
			TenantID:        w.TenantID,
			OperationID:     w.OperationID,
			TransactionID:   transactionID,
			AccountID:       line.AccountID,
			Action:          w.Action,
			DebitAmount:     line.Debit,
			CreditAmount:    line.Credit,
			Remark:          line.Remark,
			CreatedDateTime: createdAt,
			CreatedBy:       w.UserID,
		}
		m := mapping.ToModelPosting(p)
		batch.Queue(insertQuery,
			m.PostingID,
			m.TenantID,
			m.OperationID,
			m.TransactionID,
			m.AccountID,
			m.Action,
			m.DebitAmount,
			m.CreditAmount,
			m.Remark,
			m.CreatedDateTime,
			m.CreatedBy,
		)
		result.Postings = append(result.Postings, p)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, fmt.Errorf("%w: operation %s already has postings", apperrors.ErrDuplicate, w.OperationID)
		case pgForeignKeyViolation:
			return nil, apperrors.NewNotFoundError("account")
		}
		return nil, apperrors.NewAppError(500, "failed to insert postings of "+w.OperationID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}
