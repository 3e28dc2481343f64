// Package statements derives ledger reports from materialized postings.
// Everything here is pure: no IO, no clock, deterministic output order.
package statements

import (
	"sort"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Epsilon is the tolerance used when comparing report sides.
var Epsilon = decimal.New(1, -2)

// WithinEpsilon reports whether a and b differ by less than one cent.
func WithinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(Epsilon)
}

// MonthKeyFunc maps an instant to its tenant-local YYYY-MM.
type MonthKeyFunc func(time.Time) string

type tbAccount struct {
	id, name string
	subhead  domain.AccountSubhead
	months   map[string][]domain.Balance
}

// TrialBalance groups in-period rows by subhead, account and tenant-local month,
// netting at every level. Opening balances come from totals strictly before
// the period start.
//
// Months that net to zero are dropped. An account is dropped when both its
// period activity and its closing balance net to zero; a subhead is dropped
// when the closings of its accounts net to zero. Totals and IsBalanced cover
// the period activity of every surviving account, including those under a
// dropped subhead.
func TrialBalance(p domain.Period, rows []domain.LedgerRow, opening []domain.AccountTotal, monthKey MonthKeyFunc) domain.TrialBalanceReport {
	openingByAccount := make(map[string]domain.Balance, len(opening))
	for _, o := range opening {
		openingByAccount[o.AccountID] = accounting.Net(o.Debit, o.Credit)
	}

	accounts := make(map[string]*tbAccount)
	for _, r := range rows {
		acc, ok := accounts[r.AccountID]
		if !ok {
			acc = &tbAccount{id: r.AccountID, name: r.AccountName, subhead: r.Subhead, months: map[string][]domain.Balance{}}
			accounts[r.AccountID] = acc
		}
		key := monthKey(r.CreatedDateTime)
		acc.months[key] = append(acc.months[key], domain.Balance{Debit: r.DebitAmount, Credit: r.CreditAmount})
	}

	bySubhead := make(map[domain.AccountSubhead][]domain.TrialBalanceAccount)
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, acc := range accounts {
		node := domain.TrialBalanceAccount{
			AccountID:   acc.id,
			AccountName: acc.name,
			Opening:     openingByAccount[acc.id],
			Months:      []domain.TrialBalanceMonth{},
		}

		keys := make([]string, 0, len(acc.months))
		for k := range acc.months {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		monthNets := make([]domain.Balance, 0, len(keys))
		for _, k := range keys {
			net := accounting.NetAll(acc.months[k]...)
			if net.IsZero() {
				continue
			}
			monthNets = append(monthNets, net)
			node.Months = append(node.Months, domain.TrialBalanceMonth{Month: k, Balance: net})
		}

		node.Activity = accounting.NetAll(monthNets...)
		node.Balance = accounting.NetAll(node.Opening, node.Activity)
		if node.Activity.IsZero() && node.Balance.IsZero() {
			continue
		}

		totalDebit = totalDebit.Add(node.Activity.Debit)
		totalCredit = totalCredit.Add(node.Activity.Credit)
		bySubhead[acc.subhead] = append(bySubhead[acc.subhead], node)
	}

	subheads := make([]domain.AccountSubhead, 0, len(bySubhead))
	for s := range bySubhead {
		subheads = append(subheads, s)
	}
	sort.Slice(subheads, func(i, j int) bool { return subheads[i] < subheads[j] })

	report := domain.TrialBalanceReport{
		Period:      p,
		Subheads:    make([]domain.TrialBalanceSubhead, 0, len(subheads)),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  WithinEpsilon(totalDebit, totalCredit),
	}
	for _, s := range subheads {
		accs := bySubhead[s]
		sort.Slice(accs, func(i, j int) bool {
			if accs[i].AccountName != accs[j].AccountName {
				return accs[i].AccountName < accs[j].AccountName
			}
			return accs[i].AccountID < accs[j].AccountID
		})
		closings := make([]domain.Balance, len(accs))
		for i, a := range accs {
			closings[i] = a.Balance
		}
		balance := accounting.NetAll(closings...)
		if balance.IsZero() {
			continue
		}
		report.Subheads = append(report.Subheads, domain.TrialBalanceSubhead{
			Subhead:  s,
			Accounts: accs,
			Balance:  balance,
		})
	}
	return report
}
