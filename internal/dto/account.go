package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name              string                `json:"name" binding:"required,max=120"`
	Code              string                `json:"code" binding:"max=40"`
	Description       string                `json:"description"`
	Group             domain.AccountGroup   `json:"group" binding:"required,oneof=Asset Liability Equity"`
	Head              domain.AccountHead    `json:"head" binding:"required,oneof=Asset Liability Equity Income Expenses"`
	Subhead           domain.AccountSubhead `json:"subhead" binding:"required"`
	ParentAccountID   *string               `json:"parentAccountID"`
	BankAccountNumber string                `json:"bankAccountNumber" binding:"omitempty,max=34"`
	BankIFSC          string                `json:"bankIFSC" binding:"omitempty,len=11"`
}

// Structure returns the classification triple of the request.
func (r CreateAccountRequest) Structure() domain.AccountStructure {
	return domain.AccountStructure{Group: r.Group, Head: r.Head, Subhead: r.Subhead}
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name              *string                `json:"name" binding:"omitempty,max=120"`
	Code              *string                `json:"code" binding:"omitempty,max=40"`
	Description       *string                `json:"description"`
	Group             *domain.AccountGroup   `json:"group"`
	Head              *domain.AccountHead    `json:"head"`
	Subhead           *domain.AccountSubhead `json:"subhead"`
	ParentAccountID   *string                `json:"parentAccountID"`
	BankAccountNumber *string                `json:"bankAccountNumber" binding:"omitempty,max=34"`
	BankIFSC          *string                `json:"bankIFSC" binding:"omitempty,len=11"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID         string                `json:"accountID"`
	Name              string                `json:"name"`
	Code              string                `json:"code"`
	Description       string                `json:"description"`
	Group             domain.AccountGroup   `json:"group"`
	Head              domain.AccountHead    `json:"head"`
	Subhead           domain.AccountSubhead `json:"subhead"`
	ParentAccountID   *string               `json:"parentAccountID,omitempty"`
	SystemProtected   bool                  `json:"systemProtected"`
	BankAccountNumber string                `json:"bankAccountNumber,omitempty"`
	BankIFSC          string                `json:"bankIFSC,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	CreatedBy         string                `json:"createdBy"`
	LastUpdatedAt     time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy     string                `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:         acc.AccountID,
		Name:              acc.Name,
		Code:              acc.Code,
		Description:       acc.Description,
		Group:             acc.Group,
		Head:              acc.Head,
		Subhead:           acc.Subhead,
		ParentAccountID:   acc.ParentAccountID,
		SystemProtected:   acc.SystemProtected,
		BankAccountNumber: acc.BankAccountNumber,
		BankIFSC:          acc.BankIFSC,
		CreatedAt:         acc.CreatedAt,
		CreatedBy:         acc.CreatedBy,
		LastUpdatedAt:     acc.LastUpdatedAt,
		LastUpdatedBy:     acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
// NextToken, when present, overrides Offset.
type ListAccountsParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
	Subhead   string `form:"subhead"`
	NextToken string `form:"nextToken"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
	NextToken string            `json:"nextToken,omitempty"`
}

// OpeningBalanceRequest sets the opening balance of one account. Exactly one side must be positive.
type OpeningBalanceRequest struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	// AsOf is a tenant-formatted date; the balance is stamped at the last instant of that local day.
	AsOf string `json:"asOf" binding:"required,tenant_date"`
}
