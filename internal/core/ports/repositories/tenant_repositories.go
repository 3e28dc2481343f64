package repositories

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data
type TenantWriter interface {
	// UpdateTenantSettings stores the timezone and date settings of a tenant.
	UpdateTenantSettings(ctx context.Context, tenant domain.Tenant) error
}

// TenantMembershipReader defines operations for reading tenant memberships
type TenantMembershipReader interface {
	// FindTenantMember retrieves the membership of a user in a tenant.
	FindTenantMember(ctx context.Context, userID, tenantID string) (*domain.TenantMember, error)

	// ListTenantMembers retrieves the active members of a tenant.
	ListTenantMembers(ctx context.Context, tenantID string) ([]domain.TenantMember, error)
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
	TenantMembershipReader
}
