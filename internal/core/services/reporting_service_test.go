package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	// March 2024 in Asia/Kolkata, expressed in UTC.
	marchStart = time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC)
	marchEnd   = time.Date(2024, 3, 31, 18, 29, 59, 999_000_000, time.UTC)
)

type ReportingServiceTestSuite struct {
	suite.Suite
	reportingRepo *MockReportingRepository
	stockRepo     *MockStockRepository
	documentRepo  *MockDocumentRepository
	tenantRepo    *MockTenantRepository
	clock         time.Time
	service       portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.reportingRepo = new(MockReportingRepository)
	suite.stockRepo = new(MockStockRepository)
	suite.documentRepo = new(MockDocumentRepository)
	suite.tenantRepo = new(MockTenantRepository)
	suite.clock = time.Date(2024, 6, 30, 20, 0, 0, 0, time.UTC)

	suite.tenantRepo.On("FindTenantByID", mock.Anything, testTenant).Return(kolkataTenant(), nil).Maybe()
	suite.tenantRepo.On("FindTenantMember", mock.Anything, testUser, testTenant).
		Return(&domain.TenantMember{UserID: testUser, TenantID: testTenant, Role: domain.RoleReadOnly}, nil).Maybe()
	suite.tenantRepo.On("FindTenantMember", mock.Anything, mock.Anything, testTenant).
		Return(nil, apperrors.NewNotFoundError("tenant member")).Maybe()
	tenantSvc := services.NewTenantService(suite.tenantRepo, "UTC")

	suite.service = services.NewReportingService(
		suite.reportingRepo,
		suite.stockRepo,
		suite.documentRepo,
		tenantSvc,
		services.WithReportingTenantAuthorizer(tenantSvc),
		services.WithReportingClock(func() time.Time { return suite.clock }),
	)
}

func ledgerRow(accountID, name string, subhead domain.AccountSubhead, debit, credit string, at time.Time) domain.LedgerRow {
	return domain.LedgerRow{
		Posting: domain.Posting{
			PostingID:       accountID + "-" + at.Format(time.RFC3339),
			TenantID:        testTenant,
			OperationID:     "op-1",
			TransactionID:   "JV-00001",
			AccountID:       accountID,
			DebitAmount:     d(debit),
			CreditAmount:    d(credit),
			CreatedDateTime: at,
		},
		AccountName: name,
		Subhead:     subhead,
	}
}

func total(accountID, name string, subhead domain.AccountSubhead, debit, credit string) domain.AccountTotal {
	return domain.AccountTotal{AccountID: accountID, AccountName: name, Subhead: subhead, Debit: d(debit), Credit: d(credit)}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_BucketsByTenantLocalMonth() {
	startsAtMarch := mock.MatchedBy(func(s *time.Time) bool { return s != nil && s.Equal(marchStart) })
	suite.reportingRepo.On("ListLedgerRows", mock.Anything, testTenant, startsAtMarch, marchEnd).Return([]domain.LedgerRow{
		ledgerRow("cash", "Cash", domain.SubheadCash, "100", "0", marchStart),
		ledgerRow("sales", "Sales", domain.SubheadSales, "0", "100", marchStart),
	}, nil)
	suite.reportingRepo.On("AccountTotalsBefore", mock.Anything, testTenant, marchStart).Return([]domain.AccountTotal{
		total("cash", "Cash", domain.SubheadCash, "50", "0"),
		total("capital", "Owner's Capital", domain.SubheadEquity, "0", "50"),
	}, nil)

	report, err := suite.service.TrialBalance(context.Background(), testTenant, "2024-03", testUser)

	suite.Require().NoError(err)
	suite.True(report.IsBalanced)
	suite.True(d("100").Equal(report.TotalDebit))
	suite.True(d("100").Equal(report.TotalCredit))
	// Owner's Capital has no activity but carries an opening balance, so it stays.
	suite.Require().Len(report.Subheads, 3)

	cash := report.Subheads[0]
	suite.Equal(domain.SubheadCash, cash.Subhead)
	suite.Require().Len(cash.Accounts[0].Months, 1)
	suite.Equal("2024-03", cash.Accounts[0].Months[0].Month, "local midnight of March 1 belongs to March")
	suite.True(d("150").Equal(cash.Accounts[0].Debit))
	suite.Equal(domain.SubheadEquity, report.Subheads[1].Subhead)
	suite.True(d("50").Equal(report.Subheads[1].Credit))
	suite.Equal(domain.SubheadSales, report.Subheads[2].Subhead)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_InvalidPeriod() {
	_, err := suite.service.TrialBalance(context.Background(), testTenant, "2024-13", testUser)

	suite.ErrorIs(err, apperrors.ErrInvalidPeriod)
	suite.reportingRepo.AssertNotCalled(suite.T(), "ListLedgerRows", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_CoversAllTimeAndBalances() {
	sinceInception := (*time.Time)(nil)
	byName := map[domain.AccountSubhead][]domain.AccountTotal{
		domain.SubheadCash:            {total("cash", "Cash", domain.SubheadCash, "980", "0")},
		domain.SubheadEquity:          {total("capital", "Owner's Capital", domain.SubheadEquity, "0", "800")},
		domain.SubheadSales:           {total("sales", "Sales", domain.SubheadSales, "0", "500"), total("sd", "Sales Discount", domain.SubheadSales, "20", "0")},
		domain.SubheadCostOfGoodsSold: {total("purchases", "Purchases", domain.SubheadCostOfGoodsSold, "300", "0")},
	}
	for subhead, rows := range byName {
		suite.reportingRepo.On("SubheadAccountTotals", mock.Anything, testTenant, subhead, sinceInception, marchEnd).Return(rows, nil)
	}
	suite.reportingRepo.On("SubheadAccountTotals", mock.Anything, testTenant, mock.Anything, sinceInception, marchEnd).
		Return([]domain.AccountTotal{}, nil)
	suite.stockRepo.On("ListStockEntries", mock.Anything, testTenant, marchEnd).Return([]domain.StockEntry{
		{ItemID: "widget", DebitQuantity: d("10"), CreditQuantity: decimal.Zero, CostPrice: d("10"), CreatedDateTime: marchStart},
	}, nil)

	bs, err := suite.service.BalanceSheet(context.Background(), testTenant, "2024-03", testUser)

	suite.Require().NoError(err)
	suite.Equal(marchEnd, bs.AsOf)
	suite.True(d("500").Equal(bs.ProfitAndLoss.Trading.Sales.Credit), "contra account stays out of the sales section")
	suite.True(d("280").Equal(bs.ProfitAndLoss.Trading.GrossProfit), "got %s", bs.ProfitAndLoss.Trading.GrossProfit)
	suite.True(d("280").Equal(bs.ProfitAndLoss.NetProfit))
	suite.True(decimal.Zero.Equal(bs.ProfitAndLoss.Trading.OpeningStock))
	suite.True(d("1080").Equal(bs.TotalDebitSide), "got %s", bs.TotalDebitSide)
	suite.True(d("1080").Equal(bs.TotalCreditSide), "got %s", bs.TotalCreditSide)
	suite.True(bs.IsBalanced)
	suite.False(bs.NegativeStock)
}

func (suite *ReportingServiceTestSuite) TestReceivableAging_CountsDaysInTenantTime() {
	yearStart := time.Date(2023, 12, 31, 18, 30, 0, 0, time.UTC)
	yearEnd := time.Date(2024, 12, 31, 18, 29, 59, 999_000_000, time.UTC)
	suite.documentRepo.On("ListSalesInvoices", mock.Anything, testTenant, yearStart, yearEnd).Return([]domain.SalesInvoice{
		// Issued April 1; July 1 locally, June 30 in UTC: 91 local days.
		{InvoiceID: "i1", Status: domain.StatusOverdue, InvoiceDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), SaleAmount: d("400")},
		{InvoiceID: "i2", Status: domain.StatusPending, InvoiceDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			DueDate: time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC), SaleAmount: d("250")},
		{InvoiceID: "i3", Status: domain.StatusCompleted, InvoiceDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), SaleAmount: d("70")},
	}, nil)

	aging, err := suite.service.ReceivableAging(context.Background(), testTenant, 2024, testUser)

	suite.Require().NoError(err)
	suite.Require().Len(aging.Buckets, 4)
	suite.True(d("320").Equal(aging.Buckets[0].Amount), "got %s", aging.Buckets[0].Amount)
	suite.Equal(2, aging.Buckets[0].Count)
	suite.True(decimal.Zero.Equal(aging.Buckets[2].Amount))
	suite.Equal(domain.BucketOver90, aging.Buckets[3].Bucket)
	suite.True(d("400").Equal(aging.Buckets[3].Amount))
	suite.True(d("720").Equal(aging.Total))
	suite.Equal(1, aging.UnclassifiedDocuments)
}

func (suite *ReportingServiceTestSuite) TestPayableAging_GroupsBySupplier() {
	suite.documentRepo.On("ListPurchaseBills", mock.Anything, testTenant, mock.Anything, mock.Anything).Return([]domain.PurchaseBill{
		{BillID: "b1", SupplierID: "s1", SupplierName: "Bolt Co", Status: domain.StatusPending,
			PurchaseDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), DueDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Amount: d("100")},
		{BillID: "b2", SupplierID: "s1", SupplierName: "Bolt Co", Status: domain.StatusPending,
			PurchaseDate: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), DueDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), Amount: d("50")},
	}, nil)

	aging, err := suite.service.PayableAging(context.Background(), testTenant, 2024, testUser)

	suite.Require().NoError(err)
	suite.Require().Len(aging.Lines, 1)
	suite.Equal(domain.Bucket0To30, aging.Lines[0].Bucket)
	suite.Equal(2, aging.Lines[0].Count)
	suite.True(d("150").Equal(aging.Lines[0].Amount))
	suite.Equal(time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), aging.Lines[0].LastDueDate)
}

func (suite *ReportingServiceTestSuite) TestReports_RequireMembership() {
	ctx := context.Background()

	_, err := suite.service.ProfitAndLoss(ctx, testTenant, "2024-03", "stranger")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.DayBook(ctx, testTenant, "01-03-2024", "31-03-2024", "stranger")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.reportingRepo.AssertNotCalled(suite.T(), "SubheadAccountTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
