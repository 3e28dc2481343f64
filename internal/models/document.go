package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesInvoice is a row of the sales_invoices table.
type SalesInvoice struct {
	InvoiceID     string          `db:"invoice_id"`
	TenantID      string          `db:"tenant_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerID    string          `db:"customer_id"`
	CustomerName  string          `db:"customer_name"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       time.Time       `db:"due_date"`
	Status        string          `db:"status"`
	SaleAmount    decimal.Decimal `db:"sale_amount"`
}

// PurchaseBill is a row of the purchase_bills table.
type PurchaseBill struct {
	BillID       string          `db:"bill_id"`
	TenantID     string          `db:"tenant_id"`
	BillNumber   string          `db:"bill_number"`
	SupplierID   string          `db:"supplier_id"`
	SupplierName string          `db:"supplier_name"`
	PurchaseDate time.Time       `db:"purchase_date"`
	DueDate      time.Time       `db:"due_date"`
	Status       string          `db:"status"`
	Amount       decimal.Decimal `db:"amount"`
}
