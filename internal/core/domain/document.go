package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus is the lifecycle state of a sales invoice or purchase bill.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "Draft"
	StatusPending   DocumentStatus = "Pending"
	StatusOverdue   DocumentStatus = "Overdue"
	StatusPartial   DocumentStatus = "Partial Paid"
	StatusCompleted DocumentStatus = "Completed"
	StatusVoid      DocumentStatus = "Void"
)

// SalesInvoice is the receivable side document read by the aging report.
type SalesInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	TenantID      string          `json:"tenantID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	CustomerName  string          `json:"customerName"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        DocumentStatus  `json:"status"`
	SaleAmount    decimal.Decimal `json:"saleAmount"`
}

// PurchaseBill is the payable side document read by the aging report.
type PurchaseBill struct {
	BillID       string          `json:"billID"`
	TenantID     string          `json:"tenantID"`
	BillNumber   string          `json:"billNumber"`
	SupplierID   string          `json:"supplierID"`
	SupplierName string          `json:"supplierName"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	DueDate      time.Time       `json:"dueDate"`
	Status       DocumentStatus  `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
}
