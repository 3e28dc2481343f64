package mapping

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
)

// ToModelPosting converts a domain Posting to a model Posting
func ToModelPosting(d domain.Posting) models.Posting {
	return models.Posting{
		PostingID:       d.PostingID,
		TenantID:        d.TenantID,
		OperationID:     d.OperationID,
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		Action:          string(d.Action),
		DebitAmount:     d.DebitAmount,
		CreditAmount:    d.CreditAmount,
		Remark:          d.Remark,
		CreatedDateTime: d.CreatedDateTime,
		CreatedBy:       d.CreatedBy,
		SupersededAt:    d.SupersededAt,
		SupersededBy:    d.SupersededBy,
	}
}

// ToDomainPosting converts a model Posting to a domain Posting
func ToDomainPosting(m models.Posting) domain.Posting {
	return domain.Posting{
		PostingID:       m.PostingID,
		TenantID:        m.TenantID,
		OperationID:     m.OperationID,
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		Action:          domain.PostingAction(m.Action),
		DebitAmount:     m.DebitAmount,
		CreditAmount:    m.CreditAmount,
		Remark:          m.Remark,
		CreatedDateTime: m.CreatedDateTime.UTC(),
		CreatedBy:       m.CreatedBy,
		SupersededAt:    m.SupersededAt,
		SupersededBy:    m.SupersededBy,
	}
}

// ToDomainPostingSlice converts a slice of model Postings to a slice of domain Postings
func ToDomainPostingSlice(ms []models.Posting) []domain.Posting {
	ds := make([]domain.Posting, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPosting(m)
	}
	return ds
}

// ToDomainLedgerRowSlice converts joined posting rows to domain ledger rows
func ToDomainLedgerRowSlice(ms []models.LedgerRow) []domain.LedgerRow {
	ds := make([]domain.LedgerRow, len(ms))
	for i, m := range ms {
		ds[i] = domain.LedgerRow{
			Posting:     ToDomainPosting(m.Posting),
			AccountName: m.AccountName,
			Group:       domain.AccountGroup(m.AccountGroup),
			Head:        domain.AccountHead(m.AccountHead),
			Subhead:     domain.AccountSubhead(m.AccountSubhead),
		}
	}
	return ds
}

// ToDomainAccountTotalSlice converts aggregate rows to domain account totals
func ToDomainAccountTotalSlice(ms []models.AccountTotal) []domain.AccountTotal {
	ds := make([]domain.AccountTotal, len(ms))
	for i, m := range ms {
		ds[i] = domain.AccountTotal{
			AccountID:   m.AccountID,
			AccountName: m.AccountName,
			Subhead:     domain.AccountSubhead(m.AccountSubhead),
			Debit:       m.TotalDebit,
			Credit:      m.TotalCredit,
		}
	}
	return ds
}

// ToDomainUnbalancedGroupSlice converts verification rows to domain groups
func ToDomainUnbalancedGroupSlice(ms []models.UnbalancedGroup) []domain.UnbalancedGroup {
	ds := make([]domain.UnbalancedGroup, len(ms))
	for i, m := range ms {
		ds[i] = domain.UnbalancedGroup{
			OperationID:   m.OperationID,
			TransactionID: m.TransactionID,
			Debit:         m.TotalDebit,
			Credit:        m.TotalCredit,
		}
	}
	return ds
}
