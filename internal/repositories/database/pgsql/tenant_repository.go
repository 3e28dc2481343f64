package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTenantRepository implements portsrepo.TenantRepositoryFacade
var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `
		SELECT tenant_id, name, timezone, date_format, date_separator, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tenants
		WHERE tenant_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenant "+tenantID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Tenant])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tenant")
		}
		return nil, apperrors.NewAppError(500, "failed to collect tenant "+tenantID, err)
	}
	tenant := mapping.ToDomainTenant(m)
	return &tenant, nil
}

func (r *PgxTenantRepository) UpdateTenantSettings(ctx context.Context, tenant domain.Tenant) error {
	m := mapping.ToModelTenant(tenant)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE tenants
		SET timezone = $2, date_format = $3, date_separator = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $1;`,
		m.TenantID, m.Timezone, m.DateFormat, m.DateSeparator, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tenant "+m.TenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("tenant")
	}
	return nil
}

func (r *PgxTenantRepository) FindTenantMember(ctx context.Context, userID, tenantID string) (*domain.TenantMember, error) {
	query := `
		SELECT user_id, tenant_id, role, joined_at
		FROM tenant_members
		WHERE user_id = $1 AND tenant_id = $2 AND role <> 'REMOVED';
	`
	rows, err := r.Pool.Query(ctx, query, userID, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query membership of "+userID+" in "+tenantID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.TenantMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tenant member")
		}
		return nil, apperrors.NewAppError(500, "failed to collect membership of "+userID, err)
	}
	member := mapping.ToDomainTenantMember(m)
	return &member, nil
}

func (r *PgxTenantRepository) ListTenantMembers(ctx context.Context, tenantID string) ([]domain.TenantMember, error) {
	query := `
		SELECT user_id, tenant_id, role, joined_at
		FROM tenant_members
		WHERE tenant_id = $1 AND role <> 'REMOVED'
		ORDER BY joined_at, user_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members of "+tenantID, err)
	}
	defer rows.Close()

	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TenantMember])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect members of "+tenantID, err)
	}
	return mapping.ToDomainTenantMemberSlice(members), nil
}
