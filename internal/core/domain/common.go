package domain

import "time"

// AuditFields records who created and last changed a tenant-owned record.
// Timestamps are UTC; the user ids are the JWT subjects of the callers.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps a record created by userID at the given instant.
func NewAuditFields(userID string, at time.Time) AuditFields {
	at = at.UTC()
	return AuditFields{CreatedAt: at, CreatedBy: userID, LastUpdatedAt: at, LastUpdatedBy: userID}
}

// Touch marks the record as changed by userID.
func (a *AuditFields) Touch(userID string, at time.Time) {
	a.LastUpdatedAt = at.UTC()
	a.LastUpdatedBy = userID
}
