package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// DocumentReader reads the business documents the aging reports classify.
type DocumentReader interface {
	// ListSalesInvoices returns invoices dated within [from, to].
	ListSalesInvoices(ctx context.Context, tenantID string, from, to time.Time) ([]domain.SalesInvoice, error)

	// ListPurchaseBills returns bills with a purchase date within [from, to].
	ListPurchaseBills(ctx context.Context, tenantID string, from, to time.Time) ([]domain.PurchaseBill, error)
}
