package accounting

import (
	"fmt"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Net collapses a debit/credit pair into a single-sided balance.
func Net(debit, credit decimal.Decimal) domain.Balance {
	switch debit.Cmp(credit) {
	case 1:
		return domain.Balance{Debit: debit.Sub(credit), Credit: decimal.Zero}
	case -1:
		return domain.Balance{Debit: decimal.Zero, Credit: credit.Sub(debit)}
	default:
		return domain.Balance{Debit: decimal.Zero, Credit: decimal.Zero}
	}
}

// Totals sums both sides of a multiset of pairs without netting.
func Totals(pairs ...domain.Balance) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, p := range pairs {
		debit = debit.Add(p.Debit)
		credit = credit.Add(p.Credit)
	}
	return debit, credit
}

// NetAll sums the pairs and nets the result. Applying it to already netted
// balances is how every rollup level is built.
func NetAll(pairs ...domain.Balance) domain.Balance {
	return Net(Totals(pairs...))
}

// NetPostings nets the raw amounts of a set of postings.
func NetPostings(postings []domain.Posting) domain.Balance {
	pairs := make([]domain.Balance, len(postings))
	for i, p := range postings {
		pairs[i] = domain.Balance{Debit: p.DebitAmount, Credit: p.CreditAmount}
	}
	return NetAll(pairs...)
}

// Round2 rounds an amount for presentation or comparison with external totals.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// AmountScale is the number of decimal places the store keeps for amounts and quantities.
const AmountScale int32 = 4

// ExceedsScale reports whether d carries more decimal places than the store keeps.
func ExceedsScale(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(AmountScale))
}

// ValidatePostingBalance checks that a set of lines is a well formed double entry.
func ValidatePostingBalance(lines []domain.PostingLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: a posting set needs at least two entries", apperrors.ErrValidation)
	}

	seen := make(map[string]struct{}, len(lines))
	debits, credits := decimal.Zero, decimal.Zero
	for i, l := range lines {
		if l.AccountID == "" {
			return fmt.Errorf("%w: entry %d has no account", apperrors.ErrValidation, i)
		}
		if _, dup := seen[l.AccountID]; dup {
			return fmt.Errorf("%w: account %s appears more than once in the transaction", apperrors.ErrValidation, l.AccountID)
		}
		seen[l.AccountID] = struct{}{}

		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: entry %d for account %s has a negative amount", apperrors.ErrValidation, i, l.AccountID)
		}
		if ExceedsScale(l.Debit) || ExceedsScale(l.Credit) {
			return fmt.Errorf("%w: entry %d for account %s has more than %d decimal places", apperrors.ErrValidation, i, l.AccountID, AmountScale)
		}
		if l.Debit.IsZero() && l.Credit.IsZero() {
			return fmt.Errorf("%w: entry %d for account %s has neither debit nor credit", apperrors.ErrValidation, i, l.AccountID)
		}
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s do not equal credits %s",
			apperrors.ErrUnbalancedEntry, debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}
