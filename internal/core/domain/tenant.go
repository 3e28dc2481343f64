package domain

import "time"

// Date layouts a tenant can pick for input and display.
const (
	DateFormatDMY = "DD-MM-YYYY"
	DateFormatMDY = "MM-DD-YYYY"
	DateFormatYMD = "YYYY-MM-DD"
)

// Tenant is an isolated book with its own chart of accounts and postings.
type Tenant struct {
	TenantID      string `json:"tenantID"`
	Name          string `json:"name"`
	Timezone      string `json:"timezone"`
	DateFormat    string `json:"dateFormat"`
	DateSeparator string `json:"dateSeparator"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// TenantSettings are the fields an admin may change on a tenant.
type TenantSettings struct {
	Timezone      *string
	DateFormat    *string
	DateSeparator *string
}

// TenantRole defines the possible roles a user can have within a tenant.
type TenantRole string

const (
	RoleAdmin    TenantRole = "ADMIN"
	RoleMember   TenantRole = "MEMBER"
	RoleReadOnly TenantRole = "READONLY"
	RoleRemoved  TenantRole = "REMOVED"
)

// TenantMember is the membership of a user in a tenant.
type TenantMember struct {
	UserID   string     `json:"userID"`
	TenantID string     `json:"tenantID"`
	Role     TenantRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}
