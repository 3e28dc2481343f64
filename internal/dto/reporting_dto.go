package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// DateFormatter renders instants in a tenant's local date format.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// PeriodParams selects a report period by token (YYYY-MM, YYYY or date..date).
type PeriodParams struct {
	Period string `form:"period" binding:"required,period_token"`
	Format string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// DayBookParams selects the day book range by two tenant-formatted dates.
type DayBookParams struct {
	StartDate string `form:"startDate" binding:"required,tenant_date"`
	EndDate   string `form:"endDate" binding:"required,tenant_date"`
	Format    string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// AgingParams selects the calendar year of an aging report.
type AgingParams struct {
	Year   int    `form:"year" binding:"required,min=1900,max=9999"`
	Format string `form:"format" binding:"omitempty,oneof=json xlsx"`
}

// PeriodResponse is a resolved period in tenant dates.
type PeriodResponse struct {
	Token string `json:"token"`
	Start string `json:"start,omitempty"`
	End   string `json:"end"`
}

// BalanceResponse is a netted pair rounded for display.
type BalanceResponse struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

func toPeriodResponse(p domain.Period, f DateFormatter) PeriodResponse {
	res := PeriodResponse{Token: p.Token, End: f.FormatDate(p.End)}
	if p.Start != nil {
		res.Start = f.FormatDate(*p.Start)
	}
	return res
}

func toBalanceResponse(b domain.Balance) BalanceResponse {
	return BalanceResponse{Debit: accounting.Round2(b.Debit), Credit: accounting.Round2(b.Credit)}
}

// --- Trial balance ---

// TrialBalanceMonthResponse is one month of account activity.
type TrialBalanceMonthResponse struct {
	Month string `json:"month"`
	BalanceResponse
}

// TrialBalanceAccountResponse is one account of the trial balance.
type TrialBalanceAccountResponse struct {
	AccountID   string                      `json:"accountID"`
	AccountName string                      `json:"accountName"`
	Opening     BalanceResponse             `json:"opening"`
	Months      []TrialBalanceMonthResponse `json:"months"`
	Activity    BalanceResponse             `json:"activity"`
	Closing     BalanceResponse             `json:"closing"`
}

// TrialBalanceSubheadResponse is one subhead of the trial balance.
type TrialBalanceSubheadResponse struct {
	Subhead  domain.AccountSubhead         `json:"subhead"`
	Accounts []TrialBalanceAccountResponse `json:"accounts"`
	Closing  BalanceResponse               `json:"closing"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Period      PeriodResponse                `json:"period"`
	Subheads    []TrialBalanceSubheadResponse `json:"subheads"`
	TotalDebit  decimal.Decimal               `json:"totalDebit"`
	TotalCredit decimal.Decimal               `json:"totalCredit"`
	IsBalanced  bool                          `json:"isBalanced"`
}

// ToTrialBalanceResponse rounds and date-formats a trial balance.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport, f DateFormatter) TrialBalanceResponse {
	res := TrialBalanceResponse{
		Period:      toPeriodResponse(r.Period, f),
		Subheads:    make([]TrialBalanceSubheadResponse, len(r.Subheads)),
		TotalDebit:  accounting.Round2(r.TotalDebit),
		TotalCredit: accounting.Round2(r.TotalCredit),
		IsBalanced:  r.IsBalanced,
	}
	for i, s := range r.Subheads {
		sub := TrialBalanceSubheadResponse{
			Subhead:  s.Subhead,
			Accounts: make([]TrialBalanceAccountResponse, len(s.Accounts)),
			Closing:  toBalanceResponse(s.Balance),
		}
		for j, a := range s.Accounts {
			acc := TrialBalanceAccountResponse{
				AccountID:   a.AccountID,
				AccountName: a.AccountName,
				Opening:     toBalanceResponse(a.Opening),
				Months:      make([]TrialBalanceMonthResponse, len(a.Months)),
				Activity:    toBalanceResponse(a.Activity),
				Closing:     toBalanceResponse(a.Balance),
			}
			for k, m := range a.Months {
				acc.Months[k] = TrialBalanceMonthResponse{Month: m.Month, BalanceResponse: toBalanceResponse(m.Balance)}
			}
			sub.Accounts[j] = acc
		}
		res.Subheads[i] = sub
	}
	return res
}

// --- Day book ---

// DayBookEntryResponse is one posting line of the day book.
type DayBookEntryResponse struct {
	PostingID   string               `json:"postingID"`
	AccountID   string               `json:"accountID"`
	AccountName string               `json:"accountName"`
	Action      domain.PostingAction `json:"action"`
	Remark      string               `json:"remark"`
	Debit       decimal.Decimal      `json:"debit"`
	Credit      decimal.Decimal      `json:"credit"`
	Date        string               `json:"date"`
}

// DayBookGroupResponse is one transaction of the day book.
type DayBookGroupResponse struct {
	TransactionID string                 `json:"transactionID"`
	OperationID   string                 `json:"operationID"`
	Date          string                 `json:"date"`
	Entries       []DayBookEntryResponse `json:"entries"`
	TotalDebit    decimal.Decimal        `json:"totalDebit"`
	TotalCredit   decimal.Decimal        `json:"totalCredit"`
	Net           BalanceResponse        `json:"net"`
	RunningDebit  decimal.Decimal        `json:"runningDebit"`
	RunningCredit decimal.Decimal        `json:"runningCredit"`
}

// DayBookResponse represents the day book report response
type DayBookResponse struct {
	Period      PeriodResponse         `json:"period"`
	Groups      []DayBookGroupResponse `json:"groups"`
	TotalDebit  decimal.Decimal        `json:"totalDebit"`
	TotalCredit decimal.Decimal        `json:"totalCredit"`
}

// ToDayBookResponse rounds and date-formats a day book.
func ToDayBookResponse(r *domain.DayBookReport, f DateFormatter) DayBookResponse {
	res := DayBookResponse{
		Period:      toPeriodResponse(r.Period, f),
		Groups:      make([]DayBookGroupResponse, len(r.Groups)),
		TotalDebit:  accounting.Round2(r.TotalDebit),
		TotalCredit: accounting.Round2(r.TotalCredit),
	}
	for i, g := range r.Groups {
		group := DayBookGroupResponse{
			TransactionID: g.TransactionID,
			OperationID:   g.OperationID,
			Date:          f.FormatDate(g.FirstPostedAt),
			Entries:       make([]DayBookEntryResponse, len(g.Entries)),
			TotalDebit:    accounting.Round2(g.TotalDebit),
			TotalCredit:   accounting.Round2(g.TotalCredit),
			Net:           toBalanceResponse(g.Net),
			RunningDebit:  accounting.Round2(g.RunningDebit),
			RunningCredit: accounting.Round2(g.RunningCredit),
		}
		for j, e := range g.Entries {
			group.Entries[j] = DayBookEntryResponse{
				PostingID:   e.PostingID,
				AccountID:   e.AccountID,
				AccountName: e.AccountName,
				Action:      e.Action,
				Remark:      e.Remark,
				Debit:       accounting.Round2(e.Debit),
				Credit:      accounting.Round2(e.Credit),
				Date:        f.FormatDate(e.CreatedDateTime),
			}
		}
		res.Groups[i] = group
	}
	return res
}

// --- Statements ---

// SectionLineResponse is one account inside a statement section.
type SectionLineResponse struct {
	AccountID   string                `json:"accountID"`
	AccountName string                `json:"accountName"`
	Subhead     domain.AccountSubhead `json:"subhead"`
	BalanceResponse
}

// SectionResponse is a statement block.
type SectionResponse struct {
	Name  string                `json:"name"`
	Lines []SectionLineResponse `json:"lines"`
	BalanceResponse
}

func toSectionResponse(s domain.Section) SectionResponse {
	res := SectionResponse{Name: s.Name, Lines: make([]SectionLineResponse, len(s.Lines)), BalanceResponse: toBalanceResponse(s.Balance)}
	for i, l := range s.Lines {
		res.Lines[i] = SectionLineResponse{
			AccountID:       l.AccountID,
			AccountName:     l.AccountName,
			Subhead:         l.Subhead,
			BalanceResponse: toBalanceResponse(l.Balance),
		}
	}
	return res
}

// TradingAccountResponse represents the trading account response
type TradingAccountResponse struct {
	Period           PeriodResponse  `json:"period"`
	OpeningStock     decimal.Decimal `json:"openingStock"`
	ClosingStock     decimal.Decimal `json:"closingStock"`
	CostOfGoodsSold  SectionResponse `json:"costOfGoodsSold"`
	DirectExpense    SectionResponse `json:"directExpense"`
	Sales            SectionResponse `json:"sales"`
	SalesDiscount    BalanceResponse `json:"salesDiscount"`
	PurchaseDiscount BalanceResponse `json:"purchaseDiscount"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	GrossProfit      decimal.Decimal `json:"grossProfit"`
	GrossLoss        decimal.Decimal `json:"grossLoss"`
	NegativeStock    bool            `json:"negativeStock"`
	OversoldItems    []string        `json:"oversoldItems"`
}

// ToTradingAccountResponse rounds and date-formats a trading account.
func ToTradingAccountResponse(t *domain.TradingAccount, f DateFormatter) TradingAccountResponse {
	return TradingAccountResponse{
		Period:           toPeriodResponse(t.Period, f),
		OpeningStock:     accounting.Round2(t.OpeningStock),
		ClosingStock:     accounting.Round2(t.ClosingStock),
		CostOfGoodsSold:  toSectionResponse(t.CostOfGoodsSold),
		DirectExpense:    toSectionResponse(t.DirectExpense),
		Sales:            toSectionResponse(t.Sales),
		SalesDiscount:    toBalanceResponse(t.SalesDiscount),
		PurchaseDiscount: toBalanceResponse(t.PurchaseDiscount),
		TotalDebit:       accounting.Round2(t.TotalDebit),
		TotalCredit:      accounting.Round2(t.TotalCredit),
		GrossProfit:      accounting.Round2(t.GrossProfit),
		GrossLoss:        accounting.Round2(t.GrossLoss),
		NegativeStock:    t.NegativeStock,
		OversoldItems:    nonNil(t.OversoldItems),
	}
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	Trading         TradingAccountResponse `json:"trading"`
	IndirectIncome  SectionResponse        `json:"indirectIncome"`
	IndirectExpense SectionResponse        `json:"indirectExpense"`
	TotalDebit      decimal.Decimal        `json:"totalDebit"`
	TotalCredit     decimal.Decimal        `json:"totalCredit"`
	NetProfit       decimal.Decimal        `json:"netProfit"`
	NetLoss         decimal.Decimal        `json:"netLoss"`
}

// ToProfitAndLossResponse rounds and date-formats a P&L statement.
func ToProfitAndLossResponse(p *domain.ProfitAndLoss, f DateFormatter) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		Trading:         ToTradingAccountResponse(&p.Trading, f),
		IndirectIncome:  toSectionResponse(p.IndirectIncome),
		IndirectExpense: toSectionResponse(p.IndirectExpense),
		TotalDebit:      accounting.Round2(p.TotalDebit),
		TotalCredit:     accounting.Round2(p.TotalCredit),
		NetProfit:       accounting.Round2(p.NetProfit),
		NetLoss:         accounting.Round2(p.NetLoss),
	}
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf                string                `json:"asOf"`
	ProfitAndLoss       ProfitAndLossResponse `json:"profitAndLoss"`
	CurrentAssets       SectionResponse       `json:"currentAssets"`
	FixedAssets         SectionResponse       `json:"fixedAssets"`
	CurrentLiabilities  SectionResponse       `json:"currentLiabilities"`
	LongTermLiabilities SectionResponse       `json:"longTermLiabilities"`
	Equity              SectionResponse       `json:"equity"`
	ClosingStock        decimal.Decimal       `json:"closingStock"`
	TotalDebitSide      decimal.Decimal       `json:"totalDebitSide"`
	TotalCreditSide     decimal.Decimal       `json:"totalCreditSide"`
	Difference          decimal.Decimal       `json:"difference"`
	IsBalanced          bool                  `json:"isBalanced"`
	NegativeStock       bool                  `json:"negativeStock"`
	OversoldItems       []string              `json:"oversoldItems"`
}

// ToBalanceSheetResponse rounds and date-formats a balance sheet.
func ToBalanceSheetResponse(b *domain.BalanceSheet, f DateFormatter) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:                f.FormatDate(b.AsOf),
		ProfitAndLoss:       ToProfitAndLossResponse(&b.ProfitAndLoss, f),
		CurrentAssets:       toSectionResponse(b.CurrentAssets),
		FixedAssets:         toSectionResponse(b.FixedAssets),
		CurrentLiabilities:  toSectionResponse(b.CurrentLiabilities),
		LongTermLiabilities: toSectionResponse(b.LongTermLiabilities),
		Equity:              toSectionResponse(b.Equity),
		ClosingStock:        accounting.Round2(b.ClosingStock),
		TotalDebitSide:      accounting.Round2(b.TotalDebitSide),
		TotalCreditSide:     accounting.Round2(b.TotalCreditSide),
		Difference:          accounting.Round2(b.Difference),
		IsBalanced:          b.IsBalanced,
		NegativeStock:       b.NegativeStock,
		OversoldItems:       nonNil(b.OversoldItems),
	}
}

// --- Aging ---

// AgingBucketResponse is one receivable bucket.
type AgingBucketResponse struct {
	Bucket domain.AgingBucket `json:"bucket"`
	Amount decimal.Decimal    `json:"amount"`
	Count  int                `json:"count"`
}

// ReceivableAgingResponse represents the receivable aging report response
type ReceivableAgingResponse struct {
	Year                  int                   `json:"year"`
	Buckets               []AgingBucketResponse `json:"buckets"`
	Total                 decimal.Decimal       `json:"total"`
	UnclassifiedDocuments int                   `json:"unclassifiedDocuments"`
}

// ToReceivableAgingResponse rounds a receivable aging report.
func ToReceivableAgingResponse(r *domain.ReceivableAging) ReceivableAgingResponse {
	res := ReceivableAgingResponse{
		Year:                  r.Year,
		Buckets:               make([]AgingBucketResponse, len(r.Buckets)),
		Total:                 accounting.Round2(r.Total),
		UnclassifiedDocuments: r.UnclassifiedDocuments,
	}
	for i, b := range r.Buckets {
		res.Buckets[i] = AgingBucketResponse{Bucket: b.Bucket, Amount: accounting.Round2(b.Amount), Count: b.Count}
	}
	return res
}

// PayableAgingLineResponse is one supplier bucket of the payable aging.
type PayableAgingLineResponse struct {
	SupplierID   string             `json:"supplierID"`
	SupplierName string             `json:"supplierName"`
	Bucket       domain.AgingBucket `json:"bucket"`
	Amount       decimal.Decimal    `json:"amount"`
	LastDueDate  string             `json:"lastDueDate"`
	Count        int                `json:"count"`
}

// PayableAgingResponse represents the payable aging report response
type PayableAgingResponse struct {
	Year                  int                        `json:"year"`
	Lines                 []PayableAgingLineResponse `json:"lines"`
	Total                 decimal.Decimal            `json:"total"`
	UnclassifiedDocuments int                        `json:"unclassifiedDocuments"`
}

// ToPayableAgingResponse rounds and date-formats a payable aging report.
func ToPayableAgingResponse(r *domain.PayableAging, f DateFormatter) PayableAgingResponse {
	res := PayableAgingResponse{
		Year:                  r.Year,
		Lines:                 make([]PayableAgingLineResponse, len(r.Lines)),
		Total:                 accounting.Round2(r.Total),
		UnclassifiedDocuments: r.UnclassifiedDocuments,
	}
	for i, l := range r.Lines {
		res.Lines[i] = PayableAgingLineResponse{
			SupplierID:   l.SupplierID,
			SupplierName: l.SupplierName,
			Bucket:       l.Bucket,
			Amount:       accounting.Round2(l.Amount),
			LastDueDate:  f.FormatDate(l.LastDueDate),
			Count:        l.Count,
		}
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
