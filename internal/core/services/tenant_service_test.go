package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/core/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeUserAction_RoleHierarchy(t *testing.T) {
	cases := []struct {
		role     domain.TenantRole
		required domain.TenantRole
		allowed  bool
	}{
		{domain.RoleAdmin, domain.RoleAdmin, true},
		{domain.RoleAdmin, domain.RoleReadOnly, true},
		{domain.RoleMember, domain.RoleMember, true},
		{domain.RoleMember, domain.RoleAdmin, false},
		{domain.RoleReadOnly, domain.RoleReadOnly, true},
		{domain.RoleReadOnly, domain.RoleMember, false},
		{domain.RoleRemoved, domain.RoleReadOnly, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.role)+"->"+string(tc.required), func(t *testing.T) {
			ctx := context.Background()
			repo := new(MockTenantRepository)
			repo.On("FindTenantMember", ctx, testUser, testTenant).
				Return(&domain.TenantMember{UserID: testUser, TenantID: testTenant, Role: tc.role}, nil)
			svc := services.NewTenantService(repo, "UTC")

			err := svc.AuthorizeUserAction(ctx, testUser, testTenant, tc.required)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			}
		})
	}
}

func TestAuthorizeUserAction_NonMemberForbidden(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTenantRepository)
	repo.On("FindTenantMember", ctx, "stranger", testTenant).Return(nil, apperrors.NewNotFoundError("tenant member"))
	svc := services.NewTenantService(repo, "UTC")

	err := svc.AuthorizeUserAction(ctx, "stranger", testTenant, domain.RoleReadOnly)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestFindTenantByID_InactiveIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTenantRepository)
	tenant := kolkataTenant()
	tenant.IsActive = false
	repo.On("FindTenantByID", ctx, testTenant).Return(tenant, nil)
	svc := services.NewTenantService(repo, "UTC")

	_, err := svc.FindTenantByID(ctx, testTenant)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResolverForTenant_FallsBackToDefaultTimezone(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTenantRepository)
	tenant := kolkataTenant()
	tenant.Timezone = ""
	repo.On("FindTenantByID", ctx, testTenant).Return(tenant, nil)
	svc := services.NewTenantService(repo, "Europe/Berlin")

	resolver, err := svc.ResolverForTenant(ctx, testTenant)

	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", resolver.Location().String())
}

func TestUpdateTenantSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("applies valid settings", func(t *testing.T) {
		repo := new(MockTenantRepository)
		repo.On("FindTenantMember", ctx, testUser, testTenant).Return(&domain.TenantMember{Role: domain.RoleAdmin}, nil)
		repo.On("FindTenantByID", ctx, testTenant).Return(kolkataTenant(), nil)
		repo.On("UpdateTenantSettings", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
			return t.Timezone == "America/New_York" && t.DateFormat == domain.DateFormatMDY
		})).Return(nil).Once()
		svc := services.NewTenantService(repo, "UTC")
		tz, format := "America/New_York", domain.DateFormatMDY

		tenant, err := svc.UpdateTenantSettings(ctx, testTenant, dto.UpdateTenantSettingsRequest{Timezone: &tz, DateFormat: &format}, testUser)

		require.NoError(t, err)
		assert.Equal(t, "America/New_York", tenant.Timezone)
		assert.Equal(t, testUser, tenant.LastUpdatedBy)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		repo := new(MockTenantRepository)
		repo.On("FindTenantMember", ctx, testUser, testTenant).Return(&domain.TenantMember{Role: domain.RoleAdmin}, nil)
		repo.On("FindTenantByID", ctx, testTenant).Return(kolkataTenant(), nil)
		svc := services.NewTenantService(repo, "UTC")
		tz := "Mars/Olympus"

		_, err := svc.UpdateTenantSettings(ctx, testTenant, dto.UpdateTenantSettingsRequest{Timezone: &tz}, testUser)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		repo.AssertNotCalled(t, "UpdateTenantSettings", mock.Anything, mock.Anything)
	})

	t.Run("requires admin", func(t *testing.T) {
		repo := new(MockTenantRepository)
		repo.On("FindTenantMember", ctx, testUser, testTenant).Return(&domain.TenantMember{Role: domain.RoleMember}, nil)
		svc := services.NewTenantService(repo, "UTC")
		tz := "UTC"

		_, err := svc.UpdateTenantSettings(ctx, testTenant, dto.UpdateTenantSettingsRequest{Timezone: &tz}, testUser)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
