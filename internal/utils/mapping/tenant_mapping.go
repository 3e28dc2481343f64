package mapping

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:      d.TenantID,
		Name:          d.Name,
		Timezone:      d.Timezone,
		DateFormat:    d.DateFormat,
		DateSeparator: d.DateSeparator,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:      m.TenantID,
		Name:          m.Name,
		Timezone:      m.Timezone,
		DateFormat:    m.DateFormat,
		DateSeparator: m.DateSeparator,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTenantMember converts a model TenantMember to a domain TenantMember
func ToDomainTenantMember(m models.TenantMember) domain.TenantMember {
	return domain.TenantMember{
		UserID:   m.UserID,
		TenantID: m.TenantID,
		Role:     domain.TenantRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// ToDomainTenantMemberSlice converts a slice of model TenantMembers to domain TenantMembers
func ToDomainTenantMemberSlice(ms []models.TenantMember) []domain.TenantMember {
	ds := make([]domain.TenantMember, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTenantMember(m)
	}
	return ds
}
