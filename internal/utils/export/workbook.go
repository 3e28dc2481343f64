// Package export renders ledger reports as xlsx workbooks.
package export

import (
	"fmt"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

// sheet appends rows to one worksheet.
type sheet struct {
	f    *excelize.File
	name string
	row  int
	bold int
	err  error
}

func newWorkbook(title string) (*excelize.File, *sheet, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, title); err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("name sheet %q: %w", title, err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("create header style: %w", err)
	}
	return f, &sheet{f: f, name: title, bold: bold}, nil
}

func (s *sheet) append(values ...interface{}) {
	if s.err != nil {
		return
	}
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetSheetRow(s.name, cell, &values)
}

func (s *sheet) header(values ...interface{}) {
	s.append(values...)
	if s.err != nil || len(values) == 0 {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, s.row)
	last, _ := excelize.CoordinatesToCellName(len(values), s.row)
	s.err = s.f.SetCellStyle(s.name, first, last, s.bold)
}

func (s *sheet) blank() {
	s.row++
}

func (s *sheet) done() (*excelize.File, error) {
	if s.err != nil {
		_ = s.f.Close()
		return nil, fmt.Errorf("write sheet %q: %w", s.name, s.err)
	}
	return s.f, nil
}

func amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func date(t time.Time) string {
	return t.Format("2006-01-02")
}

func periodLabel(p domain.Period) string {
	if p.Start == nil {
		return "As of " + date(p.End)
	}
	return date(*p.Start) + " to " + date(p.End)
}

// TrialBalance writes one row per account below its subhead row.
func TrialBalance(r *domain.TrialBalanceReport) (*excelize.File, error) {
	_, s, err := newWorkbook("Trial Balance")
	if err != nil {
		return nil, err
	}
	s.append("Period", periodLabel(r.Period))
	s.blank()
	s.header("Subhead", "Account", "Opening Debit", "Opening Credit", "Debit", "Credit", "Closing Debit", "Closing Credit")
	for _, sub := range r.Subheads {
		s.header(string(sub.Subhead), "", "", "", "", "", amount(sub.Debit), amount(sub.Credit))
		for _, a := range sub.Accounts {
			s.append("", a.AccountName,
				amount(a.Opening.Debit), amount(a.Opening.Credit),
				amount(a.Activity.Debit), amount(a.Activity.Credit),
				amount(a.Debit), amount(a.Credit))
		}
	}
	s.blank()
	s.header("Total", "", "", "", amount(r.TotalDebit), amount(r.TotalCredit))
	s.append("Balanced", r.IsBalanced)
	return s.done()
}

// DayBook writes the entries of every transaction group with running totals.
func DayBook(r *domain.DayBookReport) (*excelize.File, error) {
	_, s, err := newWorkbook("Day Book")
	if err != nil {
		return nil, err
	}
	s.append("Period", periodLabel(r.Period))
	s.blank()
	s.header("Date", "Transaction", "Account", "Action", "Remark", "Debit", "Credit", "Running Debit", "Running Credit")
	for _, g := range r.Groups {
		for _, e := range g.Entries {
			s.append(date(e.CreatedDateTime), g.TransactionID, e.AccountName, string(e.Action), e.Remark,
				amount(e.Debit), amount(e.Credit), "", "")
		}
		s.header("", g.TransactionID+" total", "", "", "",
			amount(g.TotalDebit), amount(g.TotalCredit), amount(g.RunningDebit), amount(g.RunningCredit))
	}
	s.blank()
	s.header("Total", "", "", "", "", amount(r.TotalDebit), amount(r.TotalCredit))
	return s.done()
}

func (s *sheet) section(sec domain.Section) {
	s.header(sec.Name, "", amount(sec.Debit), amount(sec.Credit))
	for _, l := range sec.Lines {
		s.append("", l.AccountName, amount(l.Debit), amount(l.Credit))
	}
}

func (s *sheet) trading(t domain.TradingAccount) {
	s.append("Period", periodLabel(t.Period))
	s.blank()
	s.header("Section", "Account", "Debit", "Credit")
	s.append("Opening Stock", "", amount(t.OpeningStock), "")
	s.section(t.CostOfGoodsSold)
	s.section(t.DirectExpense)
	s.section(t.Sales)
	s.append("Sales Discount", "", amount(t.SalesDiscount.Debit), amount(t.SalesDiscount.Credit))
	s.append("Purchase Discount", "", amount(t.PurchaseDiscount.Debit), amount(t.PurchaseDiscount.Credit))
	s.append("Closing Stock", "", "", amount(t.ClosingStock))
	s.append("Gross Profit", "", amount(t.GrossProfit), "")
	s.append("Gross Loss", "", "", amount(t.GrossLoss))
	s.header("Total", "", amount(t.TotalDebit), amount(t.TotalCredit))
	if t.NegativeStock {
		s.append("Oversold Items", fmt.Sprint(t.OversoldItems))
	}
}

// TradingAccount writes the gross profit computation.
func TradingAccount(t *domain.TradingAccount) (*excelize.File, error) {
	_, s, err := newWorkbook("Trading Account")
	if err != nil {
		return nil, err
	}
	s.trading(*t)
	return s.done()
}

func (s *sheet) profitAndLoss(p domain.ProfitAndLoss) {
	s.trading(p.Trading)
	s.blank()
	s.header("Section", "Account", "Debit", "Credit")
	s.append("Gross Profit b/d", "", "", amount(p.Trading.GrossProfit))
	s.append("Gross Loss b/d", "", amount(p.Trading.GrossLoss), "")
	s.section(p.IndirectIncome)
	s.section(p.IndirectExpense)
	s.append("Net Profit", "", amount(p.NetProfit), "")
	s.append("Net Loss", "", "", amount(p.NetLoss))
	s.header("Total", "", amount(p.TotalDebit), amount(p.TotalCredit))
}

// ProfitAndLoss writes the trading account followed by the net profit computation.
func ProfitAndLoss(p *domain.ProfitAndLoss) (*excelize.File, error) {
	_, s, err := newWorkbook("Profit and Loss")
	if err != nil {
		return nil, err
	}
	s.profitAndLoss(*p)
	return s.done()
}

// BalanceSheet writes both sides of the position followed by the P&L it carries.
func BalanceSheet(b *domain.BalanceSheet) (*excelize.File, error) {
	f, s, err := newWorkbook("Balance Sheet")
	if err != nil {
		return nil, err
	}
	s.append("As of", date(b.AsOf))
	s.blank()
	s.header("Section", "Account", "Debit", "Credit")
	s.section(b.CurrentAssets)
	s.section(b.FixedAssets)
	s.append("Closing Stock", "", amount(b.ClosingStock), "")
	s.section(b.CurrentLiabilities)
	s.section(b.LongTermLiabilities)
	s.section(b.Equity)
	s.append("Net Profit", "", "", amount(b.ProfitAndLoss.NetProfit))
	s.append("Net Loss", "", amount(b.ProfitAndLoss.NetLoss), "")
	s.header("Total", "", amount(b.TotalDebitSide), amount(b.TotalCreditSide))
	s.append("Difference", "", amount(b.Difference))
	s.append("Balanced", b.IsBalanced)
	if _, err := s.done(); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Profit and Loss"); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("add profit and loss sheet: %w", err)
	}
	pl := &sheet{f: f, name: "Profit and Loss", bold: s.bold}
	pl.profitAndLoss(b.ProfitAndLoss)
	return pl.done()
}

// ReceivableAging writes one row per bucket.
func ReceivableAging(r *domain.ReceivableAging) (*excelize.File, error) {
	_, s, err := newWorkbook("Receivable Aging")
	if err != nil {
		return nil, err
	}
	s.append("Year", r.Year)
	s.blank()
	s.header("Bucket", "Documents", "Amount")
	for _, b := range r.Buckets {
		s.append(string(b.Bucket), b.Count, amount(b.Amount))
	}
	s.header("Total", "", amount(r.Total))
	s.append("Unclassified Documents", r.UnclassifiedDocuments)
	return s.done()
}

// PayableAging writes one row per supplier and bucket.
func PayableAging(r *domain.PayableAging) (*excelize.File, error) {
	_, s, err := newWorkbook("Payable Aging")
	if err != nil {
		return nil, err
	}
	s.append("Year", r.Year)
	s.blank()
	s.header("Supplier", "Bucket", "Bills", "Last Due Date", "Amount")
	for _, l := range r.Lines {
		name := l.SupplierName
		if name == "" {
			name = l.SupplierID
		}
		s.append(name, string(l.Bucket), l.Count, date(l.LastDueDate), amount(l.Amount))
	}
	s.header("Total", "", "", "", amount(r.Total))
	s.append("Unclassified Documents", r.UnclassifiedDocuments)
	return s.done()
}

// StockValuation writes one row per item.
func StockValuation(v *domain.StockValuation) (*excelize.File, error) {
	_, s, err := newWorkbook("Stock Valuation")
	if err != nil {
		return nil, err
	}
	s.append("As of", date(v.AsOf), "Side", string(v.Side))
	s.blank()
	s.header("Item", "Quantity", "Last Cost Price", "Value", "Oversold")
	for _, item := range v.Items {
		s.append(item.ItemID, item.Quantity.InexactFloat64(), amount(item.LastCostPrice), amount(item.Value), item.Oversold)
	}
	s.header("Total", "", "", amount(v.Total))
	return s.done()
}
