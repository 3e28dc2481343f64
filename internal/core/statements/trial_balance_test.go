package statements_test

import (
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/core/statements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findAccount(t *testing.T, r domain.TrialBalanceReport, name string) domain.TrialBalanceAccount {
	t.Helper()
	for _, s := range r.Subheads {
		for _, a := range s.Accounts {
			if a.AccountName == name {
				return a
			}
		}
	}
	require.Failf(t, "account missing", "account %q not in trial balance", name)
	return domain.TrialBalanceAccount{}
}

func TestTrialBalance_CashSalesInMarch(t *testing.T) {
	p := march2024()
	at := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	rows := []domain.LedgerRow{
		row("INV-1", "cash", "Cash", domain.SubheadCash, at, "100", "0"),
		row("INV-1", "sales", "Sales", domain.SubheadSales, at, "0", "100"),
	}

	r := statements.TrialBalance(p, rows, nil, utcMonthKey)

	sales := findAccount(t, r, "Sales")
	cash := findAccount(t, r, "Cash")
	assert.True(t, sales.Credit.Equal(dec("100")))
	assert.True(t, sales.Debit.IsZero())
	assert.True(t, cash.Debit.Equal(dec("100")))
	assert.True(t, cash.Credit.IsZero())
	assert.True(t, sales.Opening.IsZero())
	assert.True(t, cash.Opening.IsZero())
	assert.True(t, r.IsBalanced)
	assert.True(t, r.TotalDebit.Equal(dec("100")))
}

func TestTrialBalance_NetsPerMonthAndCarriesOpening(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := domain.Period{Token: "2024", Start: &start, End: time.Date(2024, 12, 31, 23, 59, 59, 999_000_000, time.UTC)}
	jan := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	rows := []domain.LedgerRow{
		row("T1", "bank", "Bank", domain.SubheadBank, jan, "300", "0"),
		row("T1", "capital", "Capital", domain.SubheadEquity, jan, "0", "300"),
		row("T2", "bank", "Bank", domain.SubheadBank, feb, "0", "120"),
		row("T2", "rent", "Rent", domain.SubheadIndirectExpense, feb, "120", "0"),
		row("T3", "bank", "Bank", domain.SubheadBank, feb, "20", "0"),
		row("T3", "rent", "Rent", domain.SubheadIndirectExpense, feb, "0", "20"),
	}
	opening := []domain.AccountTotal{
		total("bank", "Bank", domain.SubheadBank, "50", "0"),
		total("idle", "Idle", domain.SubheadCash, "10", "0"),
	}

	r := statements.TrialBalance(p, rows, opening, utcMonthKey)

	bank := findAccount(t, r, "Bank")
	require.Len(t, bank.Months, 2)
	assert.Equal(t, "2024-01", bank.Months[0].Month)
	assert.True(t, bank.Months[0].Debit.Equal(dec("300")))
	assert.Equal(t, "2024-02", bank.Months[1].Month)
	assert.True(t, bank.Months[1].Credit.Equal(dec("100")))
	assert.True(t, bank.Opening.Debit.Equal(dec("50")))
	assert.True(t, bank.Activity.Debit.Equal(dec("200")))
	assert.True(t, bank.Debit.Equal(dec("250")), "closing %s", bank.Debit)

	rent := findAccount(t, r, "Rent")
	assert.True(t, rent.Debit.Equal(dec("100")))

	for _, s := range r.Subheads {
		for _, a := range s.Accounts {
			assert.NotEqual(t, "Idle", a.AccountName, "accounts without period activity are omitted")
		}
	}
	assert.True(t, r.IsBalanced)
}

func TestTrialBalance_DropsZeroNodes(t *testing.T) {
	p := march2024()
	at := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	rows := []domain.LedgerRow{
		row("T1", "petty", "Petty Cash", domain.SubheadCash, at, "40", "0"),
		row("T1", "bank", "Bank", domain.SubheadBank, at, "0", "40"),
		row("T2", "petty", "Petty Cash", domain.SubheadCash, at.Add(time.Hour), "0", "40"),
		row("T2", "bank", "Bank", domain.SubheadBank, at.Add(time.Hour), "40", "0"),
	}

	r := statements.TrialBalance(p, rows, nil, utcMonthKey)

	assert.Empty(t, r.Subheads)
	assert.True(t, r.TotalDebit.IsZero())
	assert.True(t, r.IsBalanced)
}

func TestTrialBalance_DropsSubheadThatNetsToZero(t *testing.T) {
	p := march2024()
	at := time.Date(2024, 3, 8, 9, 0, 0, 0, time.UTC)
	rows := []domain.LedgerRow{
		row("T1", "cash", "Cash", domain.SubheadCurrentAsset, at, "100", "0"),
		row("T1", "inventory", "Inventory", domain.SubheadCurrentAsset, at, "0", "100"),
		row("T2", "bank", "Bank", domain.SubheadBank, at.Add(time.Hour), "250", "0"),
		row("T2", "capital", "Capital", domain.SubheadEquity, at.Add(time.Hour), "0", "250"),
	}

	r := statements.TrialBalance(p, rows, nil, utcMonthKey)

	require.Len(t, r.Subheads, 2)
	for _, s := range r.Subheads {
		assert.NotEqual(t, domain.SubheadCurrentAsset, s.Subhead)
		assert.False(t, s.Balance.IsZero(), "subhead %s", s.Subhead)
	}
	assert.True(t, r.TotalDebit.Equal(r.TotalCredit))
	assert.True(t, r.IsBalanced)
}

func TestTrialBalance_MonthBucketsUseTenantTime(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	p := march2024()
	// 20:00 UTC on 31 March is 1 April in Kolkata.
	at := time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)
	rows := []domain.LedgerRow{
		row("T1", "cash", "Cash", domain.SubheadCash, at, "10", "0"),
		row("T1", "sales", "Sales", domain.SubheadSales, at, "0", "10"),
	}

	r := statements.TrialBalance(p, rows, nil, func(t time.Time) string { return t.In(loc).Format("2006-01") })

	cash := findAccount(t, r, "Cash")
	require.Len(t, cash.Months, 1)
	assert.Equal(t, "2024-04", cash.Months[0].Month)
}
