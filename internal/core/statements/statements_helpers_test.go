package statements_test

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(txn, accountID, name string, subhead domain.AccountSubhead, at time.Time, debit, credit string) domain.LedgerRow {
	return domain.LedgerRow{
		Posting: domain.Posting{
			PostingID:       txn + "-" + accountID,
			OperationID:     "op-" + txn,
			TransactionID:   txn,
			AccountID:       accountID,
			Action:          domain.ActionJournal,
			DebitAmount:     dec(debit),
			CreditAmount:    dec(credit),
			CreatedDateTime: at,
		},
		AccountName: name,
		Subhead:     subhead,
	}
}

func total(accountID, name string, subhead domain.AccountSubhead, debit, credit string) domain.AccountTotal {
	return domain.AccountTotal{AccountID: accountID, AccountName: name, Subhead: subhead, Debit: dec(debit), Credit: dec(credit)}
}

func utcMonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func march2024() domain.Period {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return domain.Period{Token: "2024-03", Start: &start, End: time.Date(2024, 3, 31, 23, 59, 59, 999_000_000, time.UTC)}
}
