package statements_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/core/statements"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockOf(total string) domain.StockValuation {
	return domain.StockValuation{Total: dec(total), OversoldItems: []string{}}
}

func TestTrading_GrossProfitWithStock(t *testing.T) {
	opening := accounting.ValueStock([]domain.StockEntry{
		{ItemID: "widget", DebitQuantity: dec("10"), CreditQuantity: decimal.Zero, CostPrice: dec("5"), CreatedDateTime: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), domain.SideOpening)
	closing := accounting.ValueStock([]domain.StockEntry{
		{ItemID: "widget", DebitQuantity: dec("10"), CreditQuantity: decimal.Zero, CostPrice: dec("5"), CreatedDateTime: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ItemID: "widget", DebitQuantity: decimal.Zero, CreditQuantity: dec("5"), CostPrice: dec("5"), CreatedDateTime: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), domain.SideClosing)

	in := statements.FinancialInput{
		Period: march2024(),
		Ledger: statements.Ledger{
			total("cogs", "Purchases", domain.SubheadCostOfGoodsSold, "200", "0"),
			total("sales", "Sales", domain.SubheadSales, "0", "500"),
			total("cash", "Cash", domain.SubheadCash, "300", "0"),
		},
		OpeningStock: opening,
		ClosingStock: closing,
	}

	tr := statements.Trading(in)

	assert.True(t, tr.OpeningStock.Equal(dec("50")))
	assert.True(t, tr.ClosingStock.Equal(dec("25")))
	assert.True(t, tr.TotalDebit.Equal(dec("250")), "debit %s", tr.TotalDebit)
	assert.True(t, tr.TotalCredit.Equal(dec("525")), "credit %s", tr.TotalCredit)
	assert.True(t, tr.GrossProfit.Equal(dec("275")))
	assert.True(t, tr.GrossLoss.IsZero())
	assert.False(t, tr.NegativeStock)
}

func TestTrading_DiscountsStayOutOfSections(t *testing.T) {
	in := statements.FinancialInput{
		Period: march2024(),
		Ledger: statements.Ledger{
			total("sales", "Sales", domain.SubheadSales, "0", "1000"),
			total("sd", domain.SalesDiscountAccountName, domain.SubheadSales, "40", "0"),
			total("cogs", "Purchases", domain.SubheadCostOfGoodsSold, "600", "0"),
			total("pd", domain.PurchaseDiscountAccountName, domain.SubheadCostOfGoodsSold, "0", "15"),
		},
		OpeningStock: stockOf("0"),
		ClosingStock: stockOf("0"),
	}

	tr := statements.Trading(in)

	require.Len(t, tr.Sales.Lines, 1)
	assert.Equal(t, "Sales", tr.Sales.Lines[0].AccountName)
	require.Len(t, tr.CostOfGoodsSold.Lines, 1)
	assert.True(t, tr.SalesDiscount.Debit.Equal(dec("40")))
	assert.True(t, tr.PurchaseDiscount.Credit.Equal(dec("15")))
	assert.True(t, tr.TotalDebit.Equal(dec("640")))
	assert.True(t, tr.TotalCredit.Equal(dec("1015")))
	assert.True(t, tr.GrossProfit.Equal(dec("375")))
}

func TestProfitAndLoss_GrossLossCarriedToDebit(t *testing.T) {
	in := statements.FinancialInput{
		Period: march2024(),
		Ledger: statements.Ledger{
			total("cogs", "Purchases", domain.SubheadCostOfGoodsSold, "300", "0"),
			total("sales", "Sales", domain.SubheadSales, "0", "100"),
			total("int", "Interest Received", domain.SubheadIndirectIncome, "0", "50"),
			total("rent", "Rent", domain.SubheadIndirectExpense, "30", "0"),
		},
		OpeningStock: stockOf("0"),
		ClosingStock: stockOf("0"),
	}

	pl := statements.ProfitAndLoss(in)

	assert.True(t, pl.Trading.GrossLoss.Equal(dec("200")))
	assert.True(t, pl.TotalDebit.Equal(dec("230")))
	assert.True(t, pl.TotalCredit.Equal(dec("50")))
	assert.True(t, pl.NetLoss.Equal(dec("180")))
	assert.True(t, pl.NetProfit.IsZero())
}

func TestBalanceSheet_StrayPostingIsReportedNotCorrected(t *testing.T) {
	asOf := march2024()
	asOf.Start = nil
	in := statements.FinancialInput{
		Period: asOf,
		Ledger: statements.Ledger{
			// 100 cash sale plus a stray 30 debit with no credit leg.
			total("cash", "Cash", domain.SubheadCash, "130", "0"),
			total("sales", "Sales", domain.SubheadSales, "0", "100"),
		},
		OpeningStock: stockOf("0"),
		ClosingStock: stockOf("0"),
	}

	bs := statements.BalanceSheet(in)

	assert.False(t, bs.IsBalanced)
	assert.True(t, bs.TotalDebitSide.Equal(dec("130")))
	assert.True(t, bs.TotalCreditSide.Equal(dec("100")))
	assert.True(t, bs.Difference.Equal(dec("30")))
}

func TestBalanceSheet_CarriesNegativeStockFlag(t *testing.T) {
	closing := domain.StockValuation{Total: dec("-26"), NegativeStock: true, OversoldItems: []string{"bolt"}}
	in := statements.FinancialInput{
		Period:       march2024(),
		Ledger:       statements.Ledger{},
		OpeningStock: stockOf("0"),
		ClosingStock: closing,
	}

	bs := statements.BalanceSheet(in)

	assert.True(t, bs.NegativeStock)
	assert.Equal(t, []string{"bolt"}, bs.OversoldItems)
	assert.True(t, bs.IsBalanced)
}

type fixtureAccount struct {
	id, name string
	subhead  domain.AccountSubhead
}

func fixtureChart() []fixtureAccount {
	chart := make([]fixtureAccount, 0, len(domain.ValidStructures())+2)
	for _, s := range domain.ValidStructures() {
		chart = append(chart, fixtureAccount{id: string(s.Subhead), name: string(s.Subhead) + " Account", subhead: s.Subhead})
	}
	chart = append(chart,
		fixtureAccount{id: "sd", name: domain.SalesDiscountAccountName, subhead: domain.SubheadSales},
		fixtureAccount{id: "pd", name: domain.PurchaseDiscountAccountName, subhead: domain.SubheadCostOfGoodsSold},
	)
	return chart
}

// Every balanced ledger must produce a balanced sheet whatever the closing stock.
func TestBalanceSheet_IdentityHoldsForBalancedLedgers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	chart := fixtureChart()

	for run := 0; run < 200; run++ {
		debits := make(map[string]decimal.Decimal)
		credits := make(map[string]decimal.Decimal)
		for txn := 0; txn < 1+rng.Intn(12); txn++ {
			perm := rng.Perm(len(chart))
			legs := 2 + rng.Intn(3)
			sum := decimal.Zero
			for i := 0; i < legs-1; i++ {
				amt := decimal.New(int64(1+rng.Intn(100000)), -2)
				id := chart[perm[i]].id
				debits[id] = debits[id].Add(amt)
				sum = sum.Add(amt)
			}
			id := chart[perm[legs-1]].id
			credits[id] = credits[id].Add(sum)
		}

		ledger := make(statements.Ledger, 0, len(chart))
		for _, a := range chart {
			ledger = append(ledger, domain.AccountTotal{
				AccountID: a.id, AccountName: a.name, Subhead: a.subhead,
				Debit: debits[a.id], Credit: credits[a.id],
			})
		}
		closing := decimal.New(int64(rng.Intn(50000)-10000), -2)

		bs := statements.BalanceSheet(statements.FinancialInput{
			Period:       domain.Period{Token: "2024-03", End: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
			Ledger:       ledger,
			OpeningStock: stockOf("0"),
			ClosingStock: domain.StockValuation{Total: closing},
		})

		require.True(t, bs.IsBalanced, "run %d: debit %s credit %s", run, bs.TotalDebitSide, bs.TotalCreditSide)
		require.True(t, bs.Difference.IsZero(), "run %d: difference %s", run, bs.Difference)
	}
}

func TestLedgerSection_RoutesSubheadsOnce(t *testing.T) {
	seen := make(map[domain.AccountSubhead]string)
	for name, subheads := range statements.SectionSubheads {
		for _, s := range subheads {
			prev, dup := seen[s]
			assert.False(t, dup, "%s routed to both %s and %s", s, prev, name)
			seen[s] = name
		}
	}
	for _, s := range domain.ValidStructures() {
		_, ok := seen[s.Subhead]
		assert.True(t, ok, "%s has no section", s.Subhead)
	}
}
