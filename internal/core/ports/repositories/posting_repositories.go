package repositories

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// PostingReader defines read operations over the posting store
type PostingReader interface {
	// FindActivePostings returns the postings of an operation that have not been superseded.
	FindActivePostings(ctx context.Context, tenantID, operationID string) ([]domain.Posting, error)

	// FindPostingHistory returns every posting ever written for an operation, superseded ones included.
	FindPostingHistory(ctx context.Context, tenantID, operationID string) ([]domain.Posting, error)

	// CountActivePostingsForAccount counts active postings referencing an account.
	CountActivePostingsForAccount(ctx context.Context, tenantID, accountID string) (int, error)

	// FindUnbalancedOperations lists operations whose active postings do not balance.
	FindUnbalancedOperations(ctx context.Context, tenantID string) ([]domain.UnbalancedGroup, error)
}

// PostingWriter defines the single write path of the posting store
type PostingWriter interface {
	// ApplyOperation writes an operation's posting set atomically: existing active rows
	// are superseded, the new rows inserted and any sequence counter advanced together.
	ApplyOperation(ctx context.Context, write domain.OperationWrite) (*domain.OperationResult, error)
}

// PostingRepositoryFacade combines all posting-related repository interfaces
type PostingRepositoryFacade interface {
	PostingReader
	PostingWriter
}

// PostingRepositoryWithTx extends PostingRepositoryFacade with transaction capabilities
type PostingRepositoryWithTx interface {
	PostingRepositoryFacade
	TransactionManager
}
