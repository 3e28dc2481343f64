package handlers_test

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/period"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, tenantID, accountID, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, tenantID, accountID, userID string) error {
	return m.Called(ctx, tenantID, accountID, userID).Error(0)
}

func (m *MockAccountService) SeedDefaultAccounts(ctx context.Context, tenantID, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) GetOperationPostings(ctx context.Context, tenantID, operationID, userID string) ([]domain.Posting, error) {
	args := m.Called(ctx, tenantID, operationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockPostingService) GetOperationHistory(ctx context.Context, tenantID, operationID, userID string) ([]domain.Posting, error) {
	args := m.Called(ctx, tenantID, operationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockPostingService) VerifyPostings(ctx context.Context, tenantID, userID string) ([]domain.UnbalancedGroup, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnbalancedGroup), args.Error(1)
}

func (m *MockPostingService) RecordPostings(ctx context.Context, tenantID string, req dto.RecordPostingsRequest, userID string) (*domain.OperationResult, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationResult), args.Error(1)
}

func (m *MockPostingService) ReplacePostings(ctx context.Context, tenantID, operationID string, req dto.ReplacePostingsRequest, userID string) (*domain.OperationResult, error) {
	args := m.Called(ctx, tenantID, operationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationResult), args.Error(1)
}

func (m *MockPostingService) SetOpeningBalance(ctx context.Context, tenantID, accountID string, req dto.OpeningBalanceRequest, userID string) (*domain.OperationResult, error) {
	args := m.Called(ctx, tenantID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationResult), args.Error(1)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Mock StockService ---
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) RecordStockEntry(ctx context.Context, tenantID string, req dto.StockEntryRequest, userID string) (*domain.StockEntry, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockEntry), args.Error(1)
}

func (m *MockStockService) Valuation(ctx context.Context, tenantID, asOf string, side domain.ValuationSide, userID string) (*domain.StockValuation, error) {
	args := m.Called(ctx, tenantID, asOf, side, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockValuation), args.Error(1)
}

var _ portssvc.StockSvcFacade = (*MockStockService)(nil)

// --- Mock TenantService ---
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) GetTenant(ctx context.Context, tenantID, userID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) ResolverForTenant(ctx context.Context, tenantID string) (*period.Resolver, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*period.Resolver), args.Error(1)
}

func (m *MockTenantService) UpdateTenantSettings(ctx context.Context, tenantID string, req dto.UpdateTenantSettingsRequest, userID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error {
	return m.Called(ctx, userID, tenantID, requiredRole).Error(0)
}

var _ portssvc.TenantSvcFacade = (*MockTenantService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, tenantID, periodToken, userID string) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, tenantID, periodToken, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportingService) DayBook(ctx context.Context, tenantID, startDate, endDate, userID string) (*domain.DayBookReport, error) {
	args := m.Called(ctx, tenantID, startDate, endDate, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayBookReport), args.Error(1)
}

func (m *MockReportingService) TradingAccount(ctx context.Context, tenantID, periodToken, userID string) (*domain.TradingAccount, error) {
	args := m.Called(ctx, tenantID, periodToken, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradingAccount), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, tenantID, periodToken, userID string) (*domain.ProfitAndLoss, error) {
	args := m.Called(ctx, tenantID, periodToken, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitAndLoss), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, tenantID, periodToken, userID string) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, tenantID, periodToken, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) ReceivableAging(ctx context.Context, tenantID string, year int, userID string) (*domain.ReceivableAging, error) {
	args := m.Called(ctx, tenantID, year, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceivableAging), args.Error(1)
}

func (m *MockReportingService) PayableAging(ctx context.Context, tenantID string, year int, userID string) (*domain.PayableAging, error) {
	args := m.Called(ctx, tenantID, year, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayableAging), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
