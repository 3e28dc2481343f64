package services

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/dto"
)

// PostingReaderSvc defines read operations over the posting store
type PostingReaderSvc interface {
	// GetOperationPostings returns the active postings of an operation.
	GetOperationPostings(ctx context.Context, tenantID, operationID, userID string) ([]domain.Posting, error)

	// GetOperationHistory returns every posting written for an operation, superseded ones included.
	GetOperationHistory(ctx context.Context, tenantID, operationID, userID string) ([]domain.Posting, error)

	// VerifyPostings lists active operations whose debits and credits differ.
	VerifyPostings(ctx context.Context, tenantID, userID string) ([]domain.UnbalancedGroup, error)
}

// PostingWriterSvc defines the ingestion operations of the posting store
type PostingWriterSvc interface {
	// RecordPostings writes the first posting set of an operation.
	RecordPostings(ctx context.Context, tenantID string, req dto.RecordPostingsRequest, userID string) (*domain.OperationResult, error)

	// ReplacePostings supersedes an operation's active set, keeping its original timestamp.
	ReplacePostings(ctx context.Context, tenantID, operationID string, req dto.ReplacePostingsRequest, userID string) (*domain.OperationResult, error)

	// SetOpeningBalance writes or replaces an account's opening balance.
	SetOpeningBalance(ctx context.Context, tenantID, accountID string, req dto.OpeningBalanceRequest, userID string) (*domain.OperationResult, error)
}

// PostingSvcFacade combines all posting-related service interfaces
type PostingSvcFacade interface {
	PostingReaderSvc
	PostingWriterSvc
}
