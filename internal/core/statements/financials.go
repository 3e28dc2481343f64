package statements

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinancialInput is what the trading, P&L and balance sheet pipeline reads.
type FinancialInput struct {
	Period       domain.Period
	Ledger       Ledger
	OpeningStock domain.StockValuation
	ClosingStock domain.StockValuation
}

// Trading computes gross profit or loss.
//
//	totalDebit  = openingStock + COGS + directExpense (+ sales discount)
//	totalCredit = sales + closingStock (+ purchase discount)
//
// Each term is the netted debit minus netted credit of its section, or the
// reverse for credit-side terms. Discount contra accounts are kept out of the
// sections and applied to their own side.
func Trading(in FinancialInput) domain.TradingAccount {
	cogs := in.Ledger.Section(SectionCostOfGoodsSold)
	direct := in.Ledger.Section(SectionDirectExpense)
	sales := in.Ledger.Section(SectionSales)
	salesDiscount := in.Ledger.Contra(domain.SalesDiscountAccountName)
	purchaseDiscount := in.Ledger.Contra(domain.PurchaseDiscountAccountName)

	openingStock := in.OpeningStock.Total
	closingStock := in.ClosingStock.Total

	totalDebit := openingStock.
		Add(cogs.Debit).Add(direct.Debit).
		Sub(cogs.Credit).Sub(direct.Credit).
		Add(salesDiscount.Signed())
	totalCredit := sales.Credit.Add(closingStock).Sub(sales.Debit).
		Sub(purchaseDiscount.Signed())

	t := domain.TradingAccount{
		Period:           in.Period,
		OpeningStock:     openingStock,
		ClosingStock:     closingStock,
		CostOfGoodsSold:  cogs,
		DirectExpense:    direct,
		Sales:            sales,
		SalesDiscount:    salesDiscount,
		PurchaseDiscount: purchaseDiscount,
		TotalDebit:       totalDebit,
		TotalCredit:      totalCredit,
		GrossProfit:      decimal.Zero,
		GrossLoss:        decimal.Zero,
		NegativeStock:    in.OpeningStock.NegativeStock || in.ClosingStock.NegativeStock,
		OversoldItems:    mergeItems(in.OpeningStock.OversoldItems, in.ClosingStock.OversoldItems),
	}
	if totalCredit.GreaterThan(totalDebit) {
		t.GrossProfit = totalCredit.Sub(totalDebit)
	} else {
		t.GrossLoss = totalDebit.Sub(totalCredit)
	}
	return t
}

// ProfitAndLoss carries the trading result into indirect income and expense.
func ProfitAndLoss(in FinancialInput) domain.ProfitAndLoss {
	trading := Trading(in)
	income := in.Ledger.Section(SectionIndirectIncome)
	expense := in.Ledger.Section(SectionIndirectExpense)

	totalDebit := trading.GrossLoss.Add(expense.Debit).Sub(expense.Credit)
	totalCredit := trading.GrossProfit.Add(income.Credit).Sub(income.Debit)

	return domain.ProfitAndLoss{
		Trading:         trading,
		IndirectIncome:  income,
		IndirectExpense: expense,
		TotalDebit:      totalDebit,
		TotalCredit:     totalCredit,
		NetProfit:       decimal.Max(decimal.Zero, totalCredit.Sub(totalDebit)),
		NetLoss:         decimal.Max(decimal.Zero, totalDebit.Sub(totalCredit)),
	}
}

// BalanceSheet closes the pipeline. The input ledger must cover all time up
// to the as-of instant. An imbalance is reported through IsBalanced and
// Difference, never corrected.
func BalanceSheet(in FinancialInput) domain.BalanceSheet {
	pl := ProfitAndLoss(in)
	current := in.Ledger.Section(SectionCurrentAssets)
	fixed := in.Ledger.Section(SectionFixedAssets)
	currentLiab := in.Ledger.Section(SectionCurrentLiabilities)
	longTermLiab := in.Ledger.Section(SectionLongTermLiabilities)
	equity := in.Ledger.Section(SectionEquity)
	closingStock := in.ClosingStock.Total

	creditSide := pl.NetProfit.
		Add(equity.Credit).Add(currentLiab.Credit).Add(longTermLiab.Credit).
		Sub(equity.Debit).Sub(currentLiab.Debit).Sub(longTermLiab.Debit)
	debitSide := pl.NetLoss.
		Add(current.Debit).Add(fixed.Debit).
		Sub(current.Credit).Sub(fixed.Credit).
		Add(closingStock)

	return domain.BalanceSheet{
		AsOf:                in.Period.End,
		ProfitAndLoss:       pl,
		CurrentAssets:       current,
		FixedAssets:         fixed,
		CurrentLiabilities:  currentLiab,
		LongTermLiabilities: longTermLiab,
		Equity:              equity,
		ClosingStock:        closingStock,
		TotalDebitSide:      debitSide,
		TotalCreditSide:     creditSide,
		Difference:          debitSide.Sub(creditSide),
		IsBalanced:          WithinEpsilon(debitSide, creditSide),
		NegativeStock:       pl.Trading.NegativeStock,
		OversoldItems:       pl.Trading.OversoldItems,
	}
}

func mergeItems(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
