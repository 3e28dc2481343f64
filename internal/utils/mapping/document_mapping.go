package mapping

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
)

// ToDomainSalesInvoiceSlice converts invoice rows to domain invoices
func ToDomainSalesInvoiceSlice(ms []models.SalesInvoice) []domain.SalesInvoice {
	ds := make([]domain.SalesInvoice, len(ms))
	for i, m := range ms {
		ds[i] = domain.SalesInvoice{
			InvoiceID:     m.InvoiceID,
			TenantID:      m.TenantID,
			InvoiceNumber: m.InvoiceNumber,
			CustomerID:    m.CustomerID,
			CustomerName:  m.CustomerName,
			InvoiceDate:   m.InvoiceDate.UTC(),
			DueDate:       m.DueDate.UTC(),
			Status:        domain.DocumentStatus(m.Status),
			SaleAmount:    m.SaleAmount,
		}
	}
	return ds
}

// ToDomainPurchaseBillSlice converts bill rows to domain bills
func ToDomainPurchaseBillSlice(ms []models.PurchaseBill) []domain.PurchaseBill {
	ds := make([]domain.PurchaseBill, len(ms))
	for i, m := range ms {
		ds[i] = domain.PurchaseBill{
			BillID:       m.BillID,
			TenantID:     m.TenantID,
			BillNumber:   m.BillNumber,
			SupplierID:   m.SupplierID,
			SupplierName: m.SupplierName,
			PurchaseDate: m.PurchaseDate.UTC(),
			DueDate:      m.DueDate.UTC(),
			Status:       domain.DocumentStatus(m.Status),
			Amount:       m.Amount,
		}
	}
	return ds
}
