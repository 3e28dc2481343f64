package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingEntryRequest is one debit or credit line of an ingest request.
type PostingEntryRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Remark    string          `json:"remark" binding:"max=500"`
}

// RecordPostingsRequest creates the posting set of a new source operation.
type RecordPostingsRequest struct {
	OperationID   string `json:"operationID" binding:"required,max=100"`
	TransactionID string `json:"transactionID" binding:"max=100"`
	// SequencePrefix numbers the transaction from the tenant counter when TransactionID is empty.
	SequencePrefix string                `json:"sequencePrefix" binding:"omitempty,alphanum,max=10"`
	Action         domain.PostingAction  `json:"action" binding:"required"`
	Entries        []PostingEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// ReplacePostingsRequest replaces the posting set of an existing operation.
type ReplacePostingsRequest struct {
	TransactionID  string                `json:"transactionID" binding:"max=100"`
	SequencePrefix string                `json:"sequencePrefix" binding:"omitempty,alphanum,max=10"`
	Action         domain.PostingAction  `json:"action" binding:"required"`
	Entries        []PostingEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// PostingResponse defines the data returned for a posting.
type PostingResponse struct {
	PostingID       string               `json:"postingID"`
	OperationID     string               `json:"operationID"`
	TransactionID   string               `json:"transactionID"`
	AccountID       string               `json:"accountID"`
	Action          domain.PostingAction `json:"action"`
	Debit           decimal.Decimal      `json:"debit"`
	Credit          decimal.Decimal      `json:"credit"`
	Remark          string               `json:"remark"`
	CreatedDateTime time.Time            `json:"createdDateTime"`
	CreatedBy       string               `json:"createdBy"`
	SupersededAt    *time.Time           `json:"supersededAt,omitempty"`
	SupersededBy    *string              `json:"supersededBy,omitempty"`
}

// OperationResponse is returned after a posting set was written.
type OperationResponse struct {
	OperationID   string            `json:"operationID"`
	TransactionID string            `json:"transactionID"`
	CreatedAt     time.Time         `json:"createdAt"`
	Superseded    int               `json:"superseded"`
	Postings      []PostingResponse `json:"postings"`
}

// ListPostingsResponse wraps the postings of one operation.
type ListPostingsResponse struct {
	OperationID string            `json:"operationID"`
	Postings    []PostingResponse `json:"postings"`
}

// UnbalancedGroupResponse is an operation whose active postings do not balance.
type UnbalancedGroupResponse struct {
	OperationID   string          `json:"operationID"`
	TransactionID string          `json:"transactionID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// ToPostingResponse converts a domain.Posting to its DTO.
func ToPostingResponse(p *domain.Posting) PostingResponse {
	return PostingResponse{
		PostingID:       p.PostingID,
		OperationID:     p.OperationID,
		TransactionID:   p.TransactionID,
		AccountID:       p.AccountID,
		Action:          p.Action,
		Debit:           p.DebitAmount,
		Credit:          p.CreditAmount,
		Remark:          p.Remark,
		CreatedDateTime: p.CreatedDateTime,
		CreatedBy:       p.CreatedBy,
		SupersededAt:    p.SupersededAt,
		SupersededBy:    p.SupersededBy,
	}
}

// ToListPostingResponse converts a slice of postings.
func ToListPostingResponse(postings []domain.Posting) []PostingResponse {
	res := make([]PostingResponse, len(postings))
	for i := range postings {
		res[i] = ToPostingResponse(&postings[i])
	}
	return res
}

// ToOperationResponse converts the result of a posting write.
func ToOperationResponse(r *domain.OperationResult) OperationResponse {
	return OperationResponse{
		OperationID:   r.OperationID,
		TransactionID: r.TransactionID,
		CreatedAt:     r.CreatedAt,
		Superseded:    r.Superseded,
		Postings:      ToListPostingResponse(r.Postings),
	}
}

// ToUnbalancedGroupResponses converts the findings of a posting verification.
func ToUnbalancedGroupResponses(groups []domain.UnbalancedGroup) []UnbalancedGroupResponse {
	res := make([]UnbalancedGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = UnbalancedGroupResponse{
			OperationID:   g.OperationID,
			TransactionID: g.TransactionID,
			Debit:         g.Debit,
			Credit:        g.Credit,
		}
	}
	return res
}

// Lines converts request entries into posting lines.
func Lines(entries []PostingEntryRequest) []domain.PostingLine {
	lines := make([]domain.PostingLine, len(entries))
	for i, e := range entries {
		lines[i] = domain.PostingLine{AccountID: e.AccountID, Debit: e.Debit, Credit: e.Credit, Remark: e.Remark}
	}
	return lines
}
