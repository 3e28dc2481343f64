package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountMapping_KeepsStructureAndParent(t *testing.T) {
	parent := "acc-parent"
	d := domain.Account{
		AccountID:        "acc-1",
		TenantID:         "t-1",
		Name:             "Main Bank",
		ParentAccountID:  &parent,
		AccountStructure: domain.AccountStructure{Group: domain.GroupAsset, Head: domain.HeadAsset, Subhead: domain.SubheadBank},
		SystemProtected:  true,
	}

	m := mapping.ToModelAccount(d)
	assert.Equal(t, "Bank", m.AccountSubhead)
	assert.Equal(t, "Asset", m.AccountGroup)

	back := mapping.ToDomainAccount(m)
	assert.Equal(t, d, back)
}

func TestLedgerRowMapping_NormalizesToUTC(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	local := time.Date(2024, 3, 1, 0, 0, 0, 0, kolkata)
	rows := mapping.ToDomainLedgerRowSlice([]models.LedgerRow{{
		Posting: models.Posting{
			PostingID:       "p-1",
			AccountID:       "cash",
			Action:          "Journal",
			DebitAmount:     decimal.NewFromInt(10),
			CreditAmount:    decimal.Zero,
			CreatedDateTime: local,
		},
		AccountName:    "Cash",
		AccountSubhead: "Cash",
	}})

	assert.Len(t, rows, 1)
	assert.Equal(t, time.UTC, rows[0].CreatedDateTime.Location())
	assert.True(t, rows[0].CreatedDateTime.Equal(local))
	assert.Equal(t, domain.SubheadCash, rows[0].Subhead)
	assert.Equal(t, domain.ActionJournal, rows[0].Action)
}
