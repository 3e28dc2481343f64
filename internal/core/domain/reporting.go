package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is a netted debit/credit pair. At most one side is non-zero after netting.
type Balance struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// IsZero reports whether both sides are zero.
func (b Balance) IsZero() bool {
	return b.Debit.IsZero() && b.Credit.IsZero()
}

// Signed returns debit minus credit.
func (b Balance) Signed() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}

// Period is a resolved, inclusive UTC range. A nil Start means "since the beginning".
type Period struct {
	Token string     `json:"token"`
	Start *time.Time `json:"start,omitempty"`
	End   time.Time  `json:"end"`
}

// Contains reports whether t falls in the inclusive range.
func (p Period) Contains(t time.Time) bool {
	if p.Start != nil && t.Before(*p.Start) {
		return false
	}
	return !t.After(p.End)
}

// OpeningBalanceLabel names the pseudo-entry carrying pre-period balances.
const OpeningBalanceLabel = "Opening Balance"

// TrialBalanceMonth is the netted activity of one account in one tenant-local month.
type TrialBalanceMonth struct {
	Month string `json:"month"` // YYYY-MM in tenant-local time
	Balance
}

// TrialBalanceAccount is the account level of the trial balance.
type TrialBalanceAccount struct {
	AccountID   string              `json:"accountID"`
	AccountName string              `json:"accountName"`
	Opening     Balance             `json:"opening"`
	Months      []TrialBalanceMonth `json:"months"`
	Activity    Balance             `json:"activity"`
	// Balance nets the opening pseudo-entry with the period activity.
	Balance
}

// TrialBalanceSubhead is the subhead level of the trial balance.
type TrialBalanceSubhead struct {
	Subhead  AccountSubhead        `json:"subhead"`
	Accounts []TrialBalanceAccount `json:"accounts"`
	Balance
}

// TrialBalanceReport is the full trial balance for a period.
type TrialBalanceReport struct {
	Period      Period                `json:"period"`
	Subheads    []TrialBalanceSubhead `json:"subheads"`
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
	IsBalanced  bool                  `json:"isBalanced"`
}

// DayBookEntry is one posting as shown in the day book.
type DayBookEntry struct {
	PostingID       string          `json:"postingID"`
	AccountID       string          `json:"accountID"`
	AccountName     string          `json:"accountName"`
	Action          PostingAction   `json:"action"`
	Remark          string          `json:"remark"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	CreatedDateTime time.Time       `json:"createdDateTime"`
}

// DayBookGroup gathers the postings of one transaction.
type DayBookGroup struct {
	TransactionID string          `json:"transactionID"`
	OperationID   string          `json:"operationID"`
	FirstPostedAt time.Time       `json:"firstPostedAt"`
	Entries       []DayBookEntry  `json:"entries"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
	Net           Balance         `json:"net"`
	RunningDebit  decimal.Decimal `json:"runningDebit"`
	RunningCredit decimal.Decimal `json:"runningCredit"`
}

// DayBookReport lists transaction groups in posting order.
type DayBookReport struct {
	Period      Period          `json:"period"`
	Groups      []DayBookGroup  `json:"groups"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// SectionLine is one account inside a statement section.
type SectionLine struct {
	AccountID   string         `json:"accountID"`
	AccountName string         `json:"accountName"`
	Subhead     AccountSubhead `json:"subhead"`
	Balance
}

// Section is a statement block built from a fixed set of subheads.
type Section struct {
	Name  string        `json:"name"`
	Lines []SectionLine `json:"lines"`
	Balance
}

// TradingAccount computes gross profit or loss.
type TradingAccount struct {
	Period           Period          `json:"period"`
	OpeningStock     decimal.Decimal `json:"openingStock"`
	ClosingStock     decimal.Decimal `json:"closingStock"`
	CostOfGoodsSold  Section         `json:"costOfGoodsSold"`
	DirectExpense    Section         `json:"directExpense"`
	Sales            Section         `json:"sales"`
	SalesDiscount    Balance         `json:"salesDiscount"`
	PurchaseDiscount Balance         `json:"purchaseDiscount"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	GrossProfit      decimal.Decimal `json:"grossProfit"`
	GrossLoss        decimal.Decimal `json:"grossLoss"`
	NegativeStock    bool            `json:"negativeStock"`
	OversoldItems    []string        `json:"oversoldItems"`
}

// ProfitAndLoss carries the trading result into indirect income and expense.
type ProfitAndLoss struct {
	Trading         TradingAccount  `json:"trading"`
	IndirectIncome  Section         `json:"indirectIncome"`
	IndirectExpense Section         `json:"indirectExpense"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	NetLoss         decimal.Decimal `json:"netLoss"`
}

// BalanceSheet is the position as of a single date.
type BalanceSheet struct {
	AsOf                time.Time       `json:"asOf"`
	ProfitAndLoss       ProfitAndLoss   `json:"profitAndLoss"`
	CurrentAssets       Section         `json:"currentAssets"`
	FixedAssets         Section         `json:"fixedAssets"`
	CurrentLiabilities  Section         `json:"currentLiabilities"`
	LongTermLiabilities Section         `json:"longTermLiabilities"`
	Equity              Section         `json:"equity"`
	ClosingStock        decimal.Decimal `json:"closingStock"`
	TotalDebitSide      decimal.Decimal `json:"totalDebitSide"`
	TotalCreditSide     decimal.Decimal `json:"totalCreditSide"`
	Difference          decimal.Decimal `json:"difference"`
	IsBalanced          bool            `json:"isBalanced"`
	NegativeStock       bool            `json:"negativeStock"`
	OversoldItems       []string        `json:"oversoldItems"`
}

// AgingBucket labels a days-outstanding band.
type AgingBucket string

const (
	Bucket0To30  AgingBucket = "0-30 Days"
	Bucket31To60 AgingBucket = "31-60 Days"
	Bucket61To90 AgingBucket = "61-90 Days"
	BucketOver90 AgingBucket = "Over 90 Days"
)

// AgingBuckets lists buckets in display order.
var AgingBuckets = []AgingBucket{Bucket0To30, Bucket31To60, Bucket61To90, BucketOver90}

// AgingBucketTotal is the flat receivable total of one bucket.
type AgingBucketTotal struct {
	Bucket AgingBucket     `json:"bucket"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// ReceivableAging is the bucketed total of sales invoices for a year.
type ReceivableAging struct {
	Year    int                `json:"year"`
	Buckets []AgingBucketTotal `json:"buckets"`
	Total   decimal.Decimal    `json:"total"`
	// UnclassifiedDocuments counts invoices whose status was neither Pending nor Overdue.
	// They are aged as zero days and land in the first bucket.
	UnclassifiedDocuments int `json:"unclassifiedDocuments"`
}

// PayableAgingLine is one (supplier, bucket) cell of the payable aging.
type PayableAgingLine struct {
	SupplierID   string          `json:"supplierID"`
	SupplierName string          `json:"supplierName"`
	Bucket       AgingBucket     `json:"bucket"`
	Amount       decimal.Decimal `json:"amount"`
	LastDueDate  time.Time       `json:"lastDueDate"`
	Count        int             `json:"count"`
}

// PayableAging itemizes purchase bills by supplier and bucket for a year.
type PayableAging struct {
	Year                  int                `json:"year"`
	Lines                 []PayableAgingLine `json:"lines"`
	Total                 decimal.Decimal    `json:"total"`
	UnclassifiedDocuments int                `json:"unclassifiedDocuments"`
}
