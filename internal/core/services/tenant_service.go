package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/period"
)

// tenantService implements the TenantSvcFacade interface
type tenantService struct {
	BaseService
	tenantRepo      portsrepo.TenantRepositoryFacade
	defaultTimezone string
}

// NewTenantService creates a new tenant service with the provided dependencies
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, defaultTimezone string) portssvc.TenantSvcFacade {
	svc := &tenantService{
		tenantRepo:      tenantRepo,
		defaultTimezone: defaultTimezone,
	}
	svc.TenantAuthorizer = svc
	return svc
}

// Ensure tenantService implements the TenantSvcFacade interface
var _ portssvc.TenantSvcFacade = (*tenantService)(nil)

// FindTenantByID retrieves a tenant by its ID
func (s *tenantService) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find tenant by ID",
				slog.String("tenant_id", tenantID))
		}
		return nil, err
	}
	if !tenant.IsActive {
		s.LogDebug(ctx, "Tenant is inactive", slog.String("tenant_id", tenantID))
		return nil, apperrors.NewNotFoundError("tenant")
	}
	return tenant, nil
}

// GetTenant retrieves a tenant for one of its members
func (s *tenantService) GetTenant(ctx context.Context, tenantID, userID string) (*domain.Tenant, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.FindTenantByID(ctx, tenantID)
}

// ResolverForTenant builds a period resolver from the tenant's settings
func (s *tenantService) ResolverForTenant(ctx context.Context, tenantID string) (*period.Resolver, error) {
	tenant, err := s.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	resolver, err := period.NewResolver(period.ConfigFor(*tenant, s.defaultTimezone))
	if err != nil {
		s.LogError(ctx, err, "Tenant has invalid date settings",
			slog.String("tenant_id", tenantID),
			slog.String("timezone", tenant.Timezone))
		return nil, err
	}
	return resolver, nil
}

// UpdateTenantSettings changes the timezone and date settings of a tenant
func (s *tenantService) UpdateTenantSettings(ctx context.Context, tenantID string, req dto.UpdateTenantSettingsRequest, userID string) (*domain.Tenant, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to update tenant settings",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	tenant, err := s.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil {
		tenant.Timezone = *req.Timezone
	}
	if req.DateFormat != nil {
		tenant.DateFormat = *req.DateFormat
	}
	if req.DateSeparator != nil {
		tenant.DateSeparator = *req.DateSeparator
	}
	if _, err := period.NewResolver(period.ConfigFor(*tenant, s.defaultTimezone)); err != nil {
		return nil, fmt.Errorf("invalid tenant settings: %w", err)
	}

	tenant.Touch(userID, time.Now())
	if err := s.tenantRepo.UpdateTenantSettings(ctx, *tenant); err != nil {
		s.LogError(ctx, err, "Failed to update tenant settings",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant settings updated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("timezone", tenant.Timezone),
		slog.String("date_format", tenant.DateFormat))
	return tenant, nil
}

// AuthorizeUserAction checks if a user has required permissions for a tenant
func (s *tenantService) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error {
	membership, err := s.tenantRepo.FindTenantMember(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of tenant",
				slog.String("user_id", userID),
				slog.String("tenant_id", tenantID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find tenant membership",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return err
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

// hasRequiredRole checks if the user's role meets or exceeds the required role
func hasRequiredRole(userRole, requiredRole domain.TenantRole) bool {
	switch requiredRole {
	case domain.RoleReadOnly:
		return userRole == domain.RoleReadOnly || userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleMember:
		return userRole == domain.RoleMember || userRole == domain.RoleAdmin
	case domain.RoleAdmin:
		return userRole == domain.RoleAdmin
	default:
		return false
	}
}
