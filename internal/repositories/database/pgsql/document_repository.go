package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentRepository reads invoices and bills for the aging reports
type documentRepository struct {
	BaseRepository
}

func newDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentReader {
	return &documentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentReader = (*documentRepository)(nil)

func (r *documentRepository) ListSalesInvoices(ctx context.Context, tenantID string, from, to time.Time) ([]domain.SalesInvoice, error) {
	query := `
		SELECT invoice_id, tenant_id, invoice_number, customer_id, customer_name,
			invoice_date, due_date, status, sale_amount
		FROM sales_invoices
		WHERE tenant_id = $1 AND invoice_date BETWEEN $2 AND $3
		ORDER BY invoice_date, invoice_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales invoices", err)
	}
	defer rows.Close()

	invoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SalesInvoice])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect sales invoices", err)
	}
	return mapping.ToDomainSalesInvoiceSlice(invoices), nil
}

func (r *documentRepository) ListPurchaseBills(ctx context.Context, tenantID string, from, to time.Time) ([]domain.PurchaseBill, error) {
	query := `
		SELECT bill_id, tenant_id, bill_number, supplier_id, supplier_name,
			purchase_date, due_date, status, amount
		FROM purchase_bills
		WHERE tenant_id = $1 AND purchase_date BETWEEN $2 AND $3
		ORDER BY purchase_date, bill_id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchase bills", err)
	}
	defer rows.Close()

	bills, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PurchaseBill])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect purchase bills", err)
	}
	return mapping.ToDomainPurchaseBillSlice(bills), nil
}
