package services

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/period"
)

// TenantReaderSvc defines read operations for tenant data
type TenantReaderSvc interface {
	// FindTenantByID retrieves a tenant without an authorization check.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// GetTenant retrieves a tenant for one of its members.
	GetTenant(ctx context.Context, tenantID, userID string) (*domain.Tenant, error)

	// ResolverForTenant builds the period resolver from the tenant's date settings.
	ResolverForTenant(ctx context.Context, tenantID string) (*period.Resolver, error)
}

// TenantWriterSvc defines write operations for tenant data
type TenantWriterSvc interface {
	// UpdateTenantSettings changes the timezone and date format. Admin only.
	UpdateTenantSettings(ctx context.Context, tenantID string, req dto.UpdateTenantSettingsRequest, userID string) (*domain.Tenant, error)
}

// TenantAuthorizerSvc defines operations for tenant authorization
type TenantAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a tenant.
	AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantReaderSvc
	TenantWriterSvc
	TenantAuthorizerSvc
}
