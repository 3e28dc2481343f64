package mapping

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:         d.AccountID,
		TenantID:          d.TenantID,
		Name:              d.Name,
		Code:              d.Code,
		Description:       d.Description,
		ParentAccountID:   d.ParentAccountID,
		AccountGroup:      string(d.Group),
		AccountHead:       string(d.Head),
		AccountSubhead:    string(d.Subhead),
		SystemProtected:   d.SystemProtected,
		BankAccountNumber: d.BankAccountNumber,
		BankIFSC:          d.BankIFSC,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		TenantID:        m.TenantID,
		Name:            m.Name,
		Code:            m.Code,
		Description:     m.Description,
		ParentAccountID: m.ParentAccountID,
		AccountStructure: domain.AccountStructure{
			Group:   domain.AccountGroup(m.AccountGroup),
			Head:    domain.AccountHead(m.AccountHead),
			Subhead: domain.AccountSubhead(m.AccountSubhead),
		},
		SystemProtected:   m.SystemProtected,
		BankAccountNumber: m.BankAccountNumber,
		BankIFSC:          m.BankIFSC,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
