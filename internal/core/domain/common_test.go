package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuditFields_TouchKeepsCreation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, kolkata)
	audit := domain.NewAuditFields("alice", created)

	assert.Equal(t, time.UTC, audit.CreatedAt.Location())
	assert.True(t, audit.CreatedAt.Equal(created))
	assert.Equal(t, audit.CreatedAt, audit.LastUpdatedAt)

	audit.Touch("bob", created.Add(time.Hour))

	assert.Equal(t, "alice", audit.CreatedBy)
	assert.Equal(t, "bob", audit.LastUpdatedBy)
	assert.True(t, audit.LastUpdatedAt.Equal(created.Add(time.Hour)))
}
