package statements_test

import (
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/core/statements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bucketAmount(r domain.ReceivableAging, b domain.AgingBucket) domain.AgingBucketTotal {
	for _, bt := range r.Buckets {
		if bt.Bucket == b {
			return bt
		}
	}
	return domain.AgingBucketTotal{}
}

func TestBucketFor_Boundaries(t *testing.T) {
	cases := map[int]domain.AgingBucket{
		-4: domain.Bucket0To30,
		0:  domain.Bucket0To30,
		30: domain.Bucket0To30,
		31: domain.Bucket31To60,
		60: domain.Bucket31To60,
		61: domain.Bucket61To90,
		90: domain.Bucket61To90,
		91: domain.BucketOver90,
	}
	for days, want := range cases {
		assert.Equal(t, want, statements.BucketFor(days), "days=%d", days)
	}
}

func TestReceivableAging_PendingUsesTerms(t *testing.T) {
	clock := statements.AgingClock{Today: day(2024, 6, 1), Location: time.UTC}
	invoices := []domain.SalesInvoice{
		{InvoiceID: "i1", Status: domain.StatusPending, InvoiceDate: day(2024, 1, 1), DueDate: day(2024, 1, 20), SaleAmount: dec("450.50")},
	}

	r := statements.ReceivableAging(2024, invoices, clock)

	require.Len(t, r.Buckets, len(domain.AgingBuckets))
	assert.True(t, bucketAmount(r, domain.Bucket0To30).Amount.Equal(dec("450.50")))
	assert.Equal(t, 1, bucketAmount(r, domain.Bucket0To30).Count)
	assert.True(t, r.Total.Equal(dec("450.50")))
	assert.Zero(t, r.UnclassifiedDocuments)
}

func TestReceivableAging_OverdueUsesToday(t *testing.T) {
	clock := statements.AgingClock{Today: day(2024, 4, 15), Location: time.UTC}
	invoices := []domain.SalesInvoice{
		{InvoiceID: "i1", Status: domain.StatusOverdue, InvoiceDate: day(2024, 1, 1), DueDate: day(2024, 1, 20), SaleAmount: dec("10")},
		{InvoiceID: "i2", Status: domain.StatusOverdue, InvoiceDate: day(2024, 3, 1), DueDate: day(2024, 3, 20), SaleAmount: dec("20")},
	}

	r := statements.ReceivableAging(2024, invoices, clock)

	assert.True(t, bucketAmount(r, domain.BucketOver90).Amount.Equal(dec("10")))
	assert.True(t, bucketAmount(r, domain.Bucket31To60).Amount.Equal(dec("20")))
}

func TestReceivableAging_OtherStatusesCountedAsUnclassified(t *testing.T) {
	clock := statements.AgingClock{Today: day(2024, 12, 1), Location: time.UTC}
	invoices := []domain.SalesInvoice{
		{InvoiceID: "i1", Status: domain.StatusCompleted, InvoiceDate: day(2024, 1, 1), DueDate: day(2024, 5, 1), SaleAmount: dec("99")},
	}

	r := statements.ReceivableAging(2024, invoices, clock)

	assert.True(t, bucketAmount(r, domain.Bucket0To30).Amount.Equal(dec("99")))
	assert.Equal(t, 1, r.UnclassifiedDocuments)
}

func TestReceivableAging_DaysCountedInTenantCalendar(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	// 19:00 UTC on 31 Jan is 1 Feb in Kolkata, 31 local days after 1 Jan.
	invoices := []domain.SalesInvoice{
		{InvoiceID: "i1", Status: domain.StatusPending, InvoiceDate: time.Date(2024, 1, 1, 0, 0, 0, 0, loc), DueDate: time.Date(2024, 1, 31, 19, 0, 0, 0, time.UTC), SaleAmount: dec("5")},
	}

	r := statements.ReceivableAging(2024, invoices, statements.AgingClock{Today: day(2024, 3, 1), Location: loc})

	assert.True(t, bucketAmount(r, domain.Bucket31To60).Amount.Equal(dec("5")))
}

func TestPayableAging_ItemizesBySupplierAndBucket(t *testing.T) {
	clock := statements.AgingClock{Today: day(2024, 5, 1), Location: time.UTC}
	bills := []domain.PurchaseBill{
		{BillID: "b1", SupplierID: "s2", SupplierName: "Zen Traders", Status: domain.StatusPending, PurchaseDate: day(2024, 1, 1), DueDate: day(2024, 1, 15), Amount: dec("100")},
		{BillID: "b2", SupplierID: "s1", SupplierName: "Acme", Status: domain.StatusPending, PurchaseDate: day(2024, 1, 1), DueDate: day(2024, 1, 10), Amount: dec("40")},
		{BillID: "b3", SupplierID: "s1", SupplierName: "Acme", Status: domain.StatusPending, PurchaseDate: day(2024, 2, 1), DueDate: day(2024, 2, 25), Amount: dec("60")},
		{BillID: "b4", SupplierID: "s1", SupplierName: "Acme", Status: domain.StatusOverdue, PurchaseDate: day(2024, 1, 1), DueDate: day(2024, 1, 31), Amount: dec("5")},
	}

	r := statements.PayableAging(2024, bills, clock)

	require.Len(t, r.Lines, 3)
	acme := r.Lines[0]
	assert.Equal(t, "Acme", acme.SupplierName)
	assert.Equal(t, domain.Bucket0To30, acme.Bucket)
	assert.True(t, acme.Amount.Equal(dec("100")))
	assert.Equal(t, 2, acme.Count)
	assert.Equal(t, day(2024, 2, 25), acme.LastDueDate)

	assert.Equal(t, "Acme", r.Lines[1].SupplierName)
	assert.Equal(t, domain.BucketOver90, r.Lines[1].Bucket)

	assert.Equal(t, "Zen Traders", r.Lines[2].SupplierName)
	assert.True(t, r.Total.Equal(dec("205")))
}
