package pgsql

import (
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		PostingRepo:   newPgxPostingRepository(dbPool),
		StockRepo:     newPgxStockRepository(dbPool),
		TenantRepo:    newPgxTenantRepository(dbPool),
		DocumentRepo:  newDocumentRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
