package statements

import (
	"sort"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// DayBook groups in-period rows by transaction. Groups are ordered by their
// earliest posting, entries keep chronological order, and each group carries
// the running totals of every group shown before it, itself included.
func DayBook(p domain.Period, rows []domain.LedgerRow) domain.DayBookReport {
	sorted := make([]domain.LedgerRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedDateTime.Before(sorted[j].CreatedDateTime)
	})

	index := make(map[string]int)
	groups := make([]domain.DayBookGroup, 0)
	for _, r := range sorted {
		i, ok := index[r.TransactionID]
		if !ok {
			i = len(groups)
			index[r.TransactionID] = i
			groups = append(groups, domain.DayBookGroup{
				TransactionID: r.TransactionID,
				OperationID:   r.OperationID,
				FirstPostedAt: r.CreatedDateTime,
				Entries:       []domain.DayBookEntry{},
				TotalDebit:    decimal.Zero,
				TotalCredit:   decimal.Zero,
			})
		}
		g := &groups[i]
		g.Entries = append(g.Entries, domain.DayBookEntry{
			PostingID:       r.PostingID,
			AccountID:       r.AccountID,
			AccountName:     r.AccountName,
			Action:          r.Action,
			Remark:          r.Remark,
			Debit:           r.DebitAmount,
			Credit:          r.CreditAmount,
			CreatedDateTime: r.CreatedDateTime,
		})
		g.TotalDebit = g.TotalDebit.Add(r.DebitAmount)
		g.TotalCredit = g.TotalCredit.Add(r.CreditAmount)
	}

	// Groups were created in order of first posting; ties fall back to the transaction id.
	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].FirstPostedAt.Equal(groups[j].FirstPostedAt) {
			return groups[i].FirstPostedAt.Before(groups[j].FirstPostedAt)
		}
		return groups[i].TransactionID < groups[j].TransactionID
	})

	runningDebit, runningCredit := decimal.Zero, decimal.Zero
	for i := range groups {
		g := &groups[i]
		g.Net = accounting.Net(g.TotalDebit, g.TotalCredit)
		runningDebit = runningDebit.Add(g.TotalDebit)
		runningCredit = runningCredit.Add(g.TotalCredit)
		g.RunningDebit = runningDebit
		g.RunningCredit = runningCredit
	}

	return domain.DayBookReport{
		Period:      p,
		Groups:      groups,
		TotalDebit:  runningDebit,
		TotalCredit: runningCredit,
	}
}
