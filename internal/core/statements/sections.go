package statements

import (
	"sort"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
)

// Statement section names.
const (
	SectionCurrentAssets       = "Current Assets"
	SectionFixedAssets         = "Fixed Assets"
	SectionCurrentLiabilities  = "Current Liabilities"
	SectionLongTermLiabilities = "Long-Term Liabilities"
	SectionEquity              = "Equity"
	SectionSales               = "Sales"
	SectionCostOfGoodsSold     = "Cost of Goods Sold"
	SectionDirectExpense       = "Direct Expense"
	SectionIndirectIncome      = "Indirect Income"
	SectionIndirectExpense     = "Indirect Expense"
)

// SectionSubheads routes every subhead into exactly one statement section.
var SectionSubheads = map[string][]domain.AccountSubhead{
	SectionCurrentAssets:       {domain.SubheadCurrentAsset, domain.SubheadCash, domain.SubheadBank, domain.SubheadSundryDebtors},
	SectionFixedAssets:         {domain.SubheadNonCurrentAsset},
	SectionCurrentLiabilities:  {domain.SubheadCurrentLiability, domain.SubheadSundryCreditors},
	SectionLongTermLiabilities: {domain.SubheadNonCurrentLiability},
	SectionEquity:              {domain.SubheadEquity},
	SectionSales:               {domain.SubheadSales},
	SectionCostOfGoodsSold:     {domain.SubheadCostOfGoodsSold},
	SectionDirectExpense:       {domain.SubheadDirectExpense},
	SectionIndirectIncome:      {domain.SubheadIndirectIncome},
	SectionIndirectExpense:     {domain.SubheadIndirectExpense},
}

// Ledger is the per-account totals a statement is built from.
type Ledger []domain.AccountTotal

// Section nets the accounts of the named section, leaving out contra accounts.
// Accounts that net to zero are omitted from the lines.
func (l Ledger) Section(name string) domain.Section {
	wanted := make(map[domain.AccountSubhead]struct{})
	for _, s := range SectionSubheads[name] {
		wanted[s] = struct{}{}
	}

	sec := domain.Section{Name: name, Lines: []domain.SectionLine{}}
	nets := make([]domain.Balance, 0)
	for _, t := range l {
		if _, ok := wanted[t.Subhead]; !ok || domain.IsContraAccountName(t.AccountName) {
			continue
		}
		net := accounting.Net(t.Debit, t.Credit)
		if net.IsZero() {
			continue
		}
		nets = append(nets, net)
		sec.Lines = append(sec.Lines, domain.SectionLine{
			AccountID:   t.AccountID,
			AccountName: t.AccountName,
			Subhead:     t.Subhead,
			Balance:     net,
		})
	}
	sort.Slice(sec.Lines, func(i, j int) bool { return sec.Lines[i].AccountName < sec.Lines[j].AccountName })
	sec.Balance = accounting.NetAll(nets...)
	return sec
}

// Contra nets every account carrying the given contra name, whatever its subhead.
func (l Ledger) Contra(name string) domain.Balance {
	pairs := make([]domain.Balance, 0)
	for _, t := range l {
		if t.AccountName == name {
			pairs = append(pairs, domain.Balance{Debit: t.Debit, Credit: t.Credit})
		}
	}
	return accounting.NetAll(pairs...)
}
