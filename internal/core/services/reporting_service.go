package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/core/statements"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/SscSPs/books_ledger/internal/utils/period"
	"golang.org/x/sync/errgroup"
)

// Sections read by each statement.
var tradingSections = []string{statements.SectionSales, statements.SectionCostOfGoodsSold, statements.SectionDirectExpense}

var profitAndLossSections = append(append([]string{}, tradingSections...),
	statements.SectionIndirectIncome, statements.SectionIndirectExpense)

var balanceSheetSections = append(append([]string{}, profitAndLossSections...),
	statements.SectionCurrentAssets, statements.SectionFixedAssets,
	statements.SectionCurrentLiabilities, statements.SectionLongTermLiabilities, statements.SectionEquity)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	stockRepo     portsrepo.StockReader
	documentRepo  portsrepo.DocumentReader
	tenantSvc     portssvc.TenantReaderSvc
	now           func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingTenantAuthorizer sets the tenant authorizer for the reporting service.
func WithReportingTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.TenantAuthorizer = authorizer
	}
}

// WithReportingClock sets the clock that supplies "today" to the aging reports.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	stockRepo portsrepo.StockReader,
	documentRepo portsrepo.DocumentReader,
	tenantSvc portssvc.TenantReaderSvc,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: reportingRepo,
		stockRepo:     stockRepo,
		documentRepo:  documentRepo,
		tenantSvc:     tenantSvc,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// prepare authorizes the reader and loads the tenant's resolver.
func (s *reportingService) prepare(ctx context.Context, tenantID, userID, report string) (*period.Resolver, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view report",
			slog.String("report", report),
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	return s.tenantSvc.ResolverForTenant(ctx, tenantID)
}

// TrialBalance generates the trial balance for a period
func (s *reportingService) TrialBalance(ctx context.Context, tenantID, periodToken, userID string) (*domain.TrialBalanceReport, error) {
	resolver, err := s.prepare(ctx, tenantID, userID, "trial_balance")
	if err != nil {
		return nil, err
	}
	p, err := resolver.Resolve(periodToken)
	if err != nil {
		return nil, err
	}

	var rows []domain.LedgerRow
	var opening []domain.AccountTotal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.reportingRepo.ListLedgerRows(gctx, tenantID, p.Start, p.End)
		return err
	})
	g.Go(func() error {
		var err error
		opening, err = s.reportingRepo.AccountTotalsBefore(gctx, tenantID, *p.Start)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("tenant_id", tenantID),
			slog.String("period", p.Token))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	report := statements.TrialBalance(p, rows, opening, resolver.MonthKey)
	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("period", p.Token),
		slog.Int("row_count", len(rows)),
		slog.Bool("is_balanced", report.IsBalanced))
	return &report, nil
}

// DayBook lists the transactions between two tenant dates
func (s *reportingService) DayBook(ctx context.Context, tenantID, startDate, endDate, userID string) (*domain.DayBookReport, error) {
	resolver, err := s.prepare(ctx, tenantID, userID, "day_book")
	if err != nil {
		return nil, err
	}
	p, err := resolver.DayRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.ListLedgerRows(ctx, tenantID, p.Start, p.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve day book data",
			slog.String("tenant_id", tenantID),
			slog.String("period", p.Token))
		return nil, fmt.Errorf("failed to retrieve day book data: %w", err)
	}

	report := statements.DayBook(p, rows)
	s.LogInfo(ctx, "Day book generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("period", p.Token),
		slog.Int("group_count", len(report.Groups)))
	return &report, nil
}

// TradingAccount computes gross profit or loss for a period
func (s *reportingService) TradingAccount(ctx context.Context, tenantID, periodToken, userID string) (*domain.TradingAccount, error) {
	resolver, err := s.prepare(ctx, tenantID, userID, "trading_account")
	if err != nil {
		return nil, err
	}
	p, err := resolver.Resolve(periodToken)
	if err != nil {
		return nil, err
	}
	in, err := s.financialInput(ctx, tenantID, p, tradingSections)
	if err != nil {
		return nil, err
	}

	trading := statements.Trading(in)
	s.LogInfo(ctx, "Trading account generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("period", p.Token),
		slog.String("gross_profit", accounting.Round2(trading.GrossProfit).String()),
		slog.String("gross_loss", accounting.Round2(trading.GrossLoss).String()))
	return &trading, nil
}

// ProfitAndLoss computes net profit or loss for a period
func (s *reportingService) ProfitAndLoss(ctx context.Context, tenantID, periodToken, userID string) (*domain.ProfitAndLoss, error) {
	resolver, err := s.prepare(ctx, tenantID, userID, "profit_and_loss")
	if err != nil {
		return nil, err
	}
	p, err := resolver.Resolve(periodToken)
	if err != nil {
		return nil, err
	}
	in, err := s.financialInput(ctx, tenantID, p, profitAndLossSections)
	if err != nil {
		return nil, err
	}

	pl := statements.ProfitAndLoss(in)
	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("period", p.Token),
		slog.String("net_profit", accounting.Round2(pl.NetProfit).String()),
		slog.String("net_loss", accounting.Round2(pl.NetLoss).String()))
	return &pl, nil
}

// BalanceSheet generates the balance sheet as of the end of the period
func (s *reportingService) BalanceSheet(ctx context.Context, tenantID, periodToken, userID string) (*domain.BalanceSheet, error) {
	resolver, err := s.prepare(ctx, tenantID, userID, "balance_sheet")
	if err != nil {
		return nil, err
	}
	p, err := resolver.AsOf(periodToken)
	if err != nil {
		return nil, err
	}
	in, err := s.financialInput(ctx, tenantID, p, balanceSheetSections)
	if err != nil {
		return nil, err
	}

	bs := statements.BalanceSheet(in)
	if !bs.IsBalanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("tenant_id", tenantID),
			slog.String("period", p.Token),
			slog.String("difference", accounting.Round2(bs.Difference).String()))
	}
	s.LogInfo(ctx, "Balance sheet generated successfully",
		slog.String("tenant_id", tenantID),
		slog.String("period", p.Token),
		slog.Bool("is_balanced", bs.IsBalanced),
		slog.Bool("negative_stock", bs.NegativeStock))
	return &bs, nil
}

// ReceivableAging buckets the sales invoices of a calendar year
func (s *reportingService) ReceivableAging(ctx context.Context, tenantID string, year int, userID string) (*domain.ReceivableAging, error) {
	resolver, err := s.prepare(ctx, tenantID, userID, "receivable_aging")
	if err != nil {
		return nil, err
	}
	p, err := resolver.Year(year)
	if err != nil {
		return nil, err
	}

	invoices, err := s.documentRepo.ListSalesInvoices(ctx, tenantID, *p.Start, p.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve sales invoices",
			slog.String("tenant_id", tenantID),
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to retrieve sales invoices: %w", err)
	}

	report := statements.ReceivableAging(year, invoices, s.clock(resolver))
	s.warnUnclassified(ctx, tenantID, "receivable_aging", report.UnclassifiedDocuments)
	s.LogInfo(ctx, "Receivable aging generated successfully",
		slog.String("tenant_id", tenantID),
		slog.Int("year", year),
		slog.Int("invoice_count", len(invoices)))
	return &report, nil
}

// PayableAging itemizes the purchase bills of a calendar year
func (s *reportingService) PayableAging(ctx context.Context, tenantID string, year int, userID string) (*domain.PayableAging, error) {
	resolver, err := s.prepare(ctx, tenantID, userID, "payable_aging")
	if err != nil {
		return nil, err
	}
	p, err := resolver.Year(year)
	if err != nil {
		return nil, err
	}

	bills, err := s.documentRepo.ListPurchaseBills(ctx, tenantID, *p.Start, p.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve purchase bills",
			slog.String("tenant_id", tenantID),
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to retrieve purchase bills: %w", err)
	}

	report := statements.PayableAging(year, bills, s.clock(resolver))
	s.warnUnclassified(ctx, tenantID, "payable_aging", report.UnclassifiedDocuments)
	s.LogInfo(ctx, "Payable aging generated successfully",
		slog.String("tenant_id", tenantID),
		slog.Int("year", year),
		slog.Int("bill_count", len(bills)))
	return &report, nil
}

func (s *reportingService) clock(resolver *period.Resolver) statements.AgingClock {
	return statements.AgingClock{Today: s.now(), Location: resolver.Location()}
}

func (s *reportingService) warnUnclassified(ctx context.Context, tenantID, report string, count int) {
	if count == 0 {
		return
	}
	s.LogWarn(ctx, "Documents with a status other than Pending or Overdue were aged as zero days",
		slog.String("tenant_id", tenantID),
		slog.String("report", report),
		slog.Int("unclassified_documents", count))
}

// financialInput loads per-account totals of the wanted sections and both stock
// valuations. Each subhead is read concurrently.
func (s *reportingService) financialInput(ctx context.Context, tenantID string, p domain.Period, sections []string) (statements.FinancialInput, error) {
	var subheads []domain.AccountSubhead
	for _, name := range sections {
		subheads = append(subheads, statements.SectionSubheads[name]...)
	}

	totals := make([][]domain.AccountTotal, len(subheads))
	var entries []domain.StockEntry

	g, gctx := errgroup.WithContext(ctx)
	for i, subhead := range subheads {
		i, subhead := i, subhead
		g.Go(func() error {
			rows, err := s.reportingRepo.SubheadAccountTotals(gctx, tenantID, subhead, p.Start, p.End)
			if err != nil {
				return fmt.Errorf("subhead %s: %w", subhead, err)
			}
			totals[i] = rows
			return nil
		})
	}
	g.Go(func() error {
		var err error
		entries, err = s.stockRepo.ListStockEntries(gctx, tenantID, p.End)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to retrieve statement data",
			slog.String("tenant_id", tenantID),
			slog.String("period", p.Token))
		return statements.FinancialInput{}, fmt.Errorf("failed to retrieve statement data: %w", err)
	}

	var ledger statements.Ledger
	for _, rows := range totals {
		ledger = append(ledger, rows...)
	}

	in := statements.FinancialInput{
		Period:       p,
		Ledger:       ledger,
		OpeningStock: domain.StockValuation{OversoldItems: []string{}},
		ClosingStock: accounting.ValueStock(entries, p.End, domain.SideClosing),
	}
	if p.Start != nil {
		in.OpeningStock = accounting.ValueStock(entries, *p.Start, domain.SideOpening)
	}
	return in, nil
}
