package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID      string    `json:"tenantID"`
	Name          string    `json:"name"`
	Timezone      string    `json:"timezone"`
	DateFormat    string    `json:"dateFormat"`
	DateSeparator string    `json:"dateSeparator"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:      t.TenantID,
		Name:          t.Name,
		Timezone:      t.Timezone,
		DateFormat:    t.DateFormat,
		DateSeparator: t.DateSeparator,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// UpdateTenantSettingsRequest changes how a tenant's dates are interpreted and shown.
type UpdateTenantSettingsRequest struct {
	Timezone      *string `json:"timezone" binding:"omitempty,timezone"`
	DateFormat    *string `json:"dateFormat" binding:"omitempty,oneof=DD-MM-YYYY MM-DD-YYYY YYYY-MM-DD"`
	DateSeparator *string `json:"dateSeparator" binding:"omitempty,oneof=- / ."`
}
