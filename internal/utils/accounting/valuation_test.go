package accounting_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockEntry(item string, at time.Time, in, out, cost string) domain.StockEntry {
	return domain.StockEntry{
		ItemID:          item,
		DebitQuantity:   dec(in),
		CreditQuantity:  dec(out),
		CostPrice:       dec(cost),
		CreatedDateTime: at,
	}
}

func TestValueStock_OpeningAndClosingSides(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.StockEntry{
		stockEntry("widget", start.Add(-48*time.Hour), "10", "0", "5"),
		stockEntry("widget", start, "0", "5", "5"),
	}

	opening := accounting.ValueStock(entries, start, domain.SideOpening)
	closing := accounting.ValueStock(entries, start, domain.SideClosing)

	assert.True(t, opening.Total.Equal(dec("50")), "opening %s", opening.Total)
	assert.True(t, closing.Total.Equal(dec("25")), "closing %s", closing.Total)
	assert.False(t, closing.NegativeStock)
}

func TestValueStock_OpeningPricesAtAsOfInstant(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.StockEntry{
		stockEntry("widget", start.Add(-time.Hour), "10", "0", "5"),
		stockEntry("widget", start, "4", "0", "7"),
		stockEntry("spool", start, "3", "0", "9"),
	}

	opening := accounting.ValueStock(entries, start, domain.SideOpening)

	// spool has nothing before the instant, so it is not valued at all.
	require.Len(t, opening.Items, 1)
	assert.Equal(t, "widget", opening.Items[0].ItemID)
	assert.True(t, opening.Items[0].Quantity.Equal(dec("10")))
	assert.True(t, opening.Items[0].LastCostPrice.Equal(dec("7")))
	assert.True(t, opening.Total.Equal(dec("70")), "got %s", opening.Total)
}

func TestValueStock_LastCostCarriedForward(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	entries := []domain.StockEntry{
		stockEntry("bolt", base, "100", "0", "2"),
		stockEntry("bolt", base.Add(time.Hour), "100", "0", "3"),
		stockEntry("bolt", base.Add(2*time.Hour), "0", "50", "4"),
	}

	v := accounting.ValueStock(entries, base.Add(3*time.Hour), domain.SideClosing)

	require.Len(t, v.Items, 1)
	// 150 on hand priced at the latest cost, not an average.
	assert.True(t, v.Items[0].Quantity.Equal(dec("150")))
	assert.True(t, v.Items[0].LastCostPrice.Equal(dec("4")))
	assert.True(t, v.Total.Equal(dec("600")))

	mid := accounting.ValueStock(entries, base.Add(time.Hour), domain.SideClosing)
	assert.True(t, mid.Total.Equal(dec("600")), "200 @ 3, got %s", mid.Total)
}

func TestValueStock_OversellIsSurfaced(t *testing.T) {
	at := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	entries := []domain.StockEntry{
		stockEntry("nut", at, "2", "0", "10"),
		stockEntry("nut", at.Add(time.Minute), "0", "5", "10"),
		stockEntry("washer", at, "4", "0", "1"),
	}

	v := accounting.ValueStock(entries, at.Add(time.Hour), domain.SideClosing)

	assert.True(t, v.NegativeStock)
	assert.Equal(t, []string{"nut"}, v.OversoldItems)
	require.Len(t, v.Items, 2)
	assert.True(t, v.Items[0].Quantity.Equal(dec("-3")))
	assert.True(t, v.Items[0].Oversold)
	assert.True(t, v.Total.Equal(dec("-26")), "got %s", v.Total)
}

func TestValueStock_EntriesAfterAsOfNeverChangeValuation(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	asOf := time.Date(2024, 6, 30, 18, 29, 59, 999_000_000, time.UTC)
	items := []string{"a", "b", "c"}

	var entries []domain.StockEntry
	for i := 0; i < 60; i++ {
		at := asOf.Add(-time.Duration(r.Intn(10_000)) * time.Minute)
		entries = append(entries, domain.StockEntry{
			ItemID:          items[r.Intn(len(items))],
			DebitQuantity:   decimal.NewFromInt(int64(r.Intn(20))),
			CreditQuantity:  decimal.NewFromInt(int64(r.Intn(10))),
			CostPrice:       decimal.New(int64(100+r.Intn(900)), -2),
			CreatedDateTime: at,
		})
	}

	for _, side := range []domain.ValuationSide{domain.SideOpening, domain.SideClosing} {
		before := accounting.ValueStock(entries, asOf, side)

		extended := append([]domain.StockEntry(nil), entries...)
		for i := 0; i < 10; i++ {
			extended = append(extended, domain.StockEntry{
				ItemID:          items[r.Intn(len(items))],
				DebitQuantity:   decimal.NewFromInt(int64(r.Intn(20))),
				CreditQuantity:  decimal.NewFromInt(int64(r.Intn(30))),
				CostPrice:       decimal.New(int64(100+r.Intn(900)), -2),
				CreatedDateTime: asOf.Add(time.Duration(i+1) * time.Millisecond),
			})
		}
		after := accounting.ValueStock(extended, asOf, side)

		assert.True(t, before.Total.Equal(after.Total), "side %s: %s != %s", side, before.Total, after.Total)
		assert.Equal(t, len(before.Items), len(after.Items))
	}
}
