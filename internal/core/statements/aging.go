package statements

import (
	"sort"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgingClock supplies "today" and the tenant location for day counting.
type AgingClock struct {
	Today    time.Time
	Location *time.Location
}

// daysBetween counts calendar days between the tenant-local dates of two instants.
func (c AgingClock) daysBetween(from, to time.Time) int {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	f := from.In(loc)
	t := to.In(loc)
	fd := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	td := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(td.Sub(fd).Hours() / 24)
}

// daysOutstanding returns the aging days of a document and whether its status was recognised.
// Pending documents age by their terms, overdue ones by the time since issue.
// Any other status ages as zero days.
func (c AgingClock) daysOutstanding(status domain.DocumentStatus, issued, due time.Time) (int, bool) {
	switch status {
	case domain.StatusPending:
		return c.daysBetween(issued, due), true
	case domain.StatusOverdue:
		return c.daysBetween(issued, c.Today), true
	default:
		return 0, false
	}
}

// BucketFor places a day count into its aging band. Negative counts fall in the first band.
func BucketFor(days int) domain.AgingBucket {
	switch {
	case days <= 30:
		return domain.Bucket0To30
	case days <= 60:
		return domain.Bucket31To60
	case days <= 90:
		return domain.Bucket61To90
	default:
		return domain.BucketOver90
	}
}

// ReceivableAging sums invoice sale amounts into flat buckets.
func ReceivableAging(year int, invoices []domain.SalesInvoice, clock AgingClock) domain.ReceivableAging {
	totals := make(map[domain.AgingBucket]*domain.AgingBucketTotal, len(domain.AgingBuckets))
	out := domain.ReceivableAging{Year: year, Buckets: make([]domain.AgingBucketTotal, 0, len(domain.AgingBuckets)), Total: decimal.Zero}
	for _, b := range domain.AgingBuckets {
		out.Buckets = append(out.Buckets, domain.AgingBucketTotal{Bucket: b, Amount: decimal.Zero})
	}
	for i := range out.Buckets {
		totals[out.Buckets[i].Bucket] = &out.Buckets[i]
	}

	for _, inv := range invoices {
		days, known := clock.daysOutstanding(inv.Status, inv.InvoiceDate, inv.DueDate)
		if !known {
			out.UnclassifiedDocuments++
		}
		bt := totals[BucketFor(days)]
		bt.Amount = bt.Amount.Add(inv.SaleAmount)
		bt.Count++
		out.Total = out.Total.Add(inv.SaleAmount)
	}
	return out
}

type payableKey struct {
	supplierID string
	bucket     domain.AgingBucket
}

// PayableAging itemizes bill amounts by supplier and bucket, keeping the latest due date.
func PayableAging(year int, bills []domain.PurchaseBill, clock AgingClock) domain.PayableAging {
	lines := make(map[payableKey]*domain.PayableAgingLine)
	out := domain.PayableAging{Year: year, Lines: []domain.PayableAgingLine{}, Total: decimal.Zero}

	for _, b := range bills {
		days, known := clock.daysOutstanding(b.Status, b.PurchaseDate, b.DueDate)
		if !known {
			out.UnclassifiedDocuments++
		}
		key := payableKey{supplierID: b.SupplierID, bucket: BucketFor(days)}
		line, ok := lines[key]
		if !ok {
			line = &domain.PayableAgingLine{
				SupplierID:   b.SupplierID,
				SupplierName: b.SupplierName,
				Bucket:       key.bucket,
				Amount:       decimal.Zero,
				LastDueDate:  b.DueDate,
			}
			lines[key] = line
		}
		line.Amount = line.Amount.Add(b.Amount)
		line.Count++
		if b.DueDate.After(line.LastDueDate) {
			line.LastDueDate = b.DueDate
		}
		out.Total = out.Total.Add(b.Amount)
	}

	order := make(map[domain.AgingBucket]int, len(domain.AgingBuckets))
	for i, b := range domain.AgingBuckets {
		order[b] = i
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, *l)
	}
	sort.Slice(out.Lines, func(i, j int) bool {
		a, b := out.Lines[i], out.Lines[j]
		if a.SupplierName != b.SupplierName {
			return a.SupplierName < b.SupplierName
		}
		if a.SupplierID != b.SupplierID {
			return a.SupplierID < b.SupplierID
		}
		return order[a.Bucket] < order[b.Bucket]
	})
	return out
}
