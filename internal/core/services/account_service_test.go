package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/core/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testSealKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	postingRepo *MockPostingRepository
	service     portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.postingRepo = new(MockPostingRepository)
	sealer, err := crypto.NewSealer(testSealKey)
	suite.Require().NoError(err)
	suite.service = services.NewAccountService(suite.accountRepo, suite.postingRepo, services.WithBankFieldSealer(sealer))
}

func bankRequest() dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		Name:              "Operating Account",
		Group:             domain.GroupAsset,
		Head:              domain.HeadAsset,
		Subhead:           domain.SubheadBank,
		BankAccountNumber: "123456789012",
		BankIFSC:          "SBIN0001234",
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SealsBankFields() {
	ctx := context.Background()
	var stored domain.Account
	suite.accountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(domain.Account) }).
		Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, testTenant, bankRequest(), testUser)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal(testTenant, account.TenantID)
	suite.Equal(domain.SubheadBank, account.Subhead)
	suite.Equal("123456789012", account.BankAccountNumber)
	suite.Equal(testUser, account.CreatedBy)

	suite.True(strings.HasPrefix(stored.BankAccountNumber, "sb1:"))
	suite.NotContains(stored.BankIFSC, "SBIN")
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RejectsInvalidStructure() {
	req := bankRequest()
	req.Group = domain.GroupLiability

	_, err := suite.service.CreateAccount(context.Background(), testTenant, req, testUser)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentMustShareStructure() {
	ctx := context.Background()
	parentID := "parent-cash"
	suite.accountRepo.On("FindAccountByID", ctx, testTenant, parentID).Return(&domain.Account{
		AccountID:        parentID,
		Name:             "Cash",
		AccountStructure: domain.AccountStructure{Group: domain.GroupAsset, Head: domain.HeadAsset, Subhead: domain.SubheadCash},
	}, nil)
	req := bankRequest()
	req.ParentAccountID = &parentID

	_, err := suite.service.CreateAccount(ctx, testTenant, req, testUser)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "Cash")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateName() {
	ctx := context.Background()
	suite.accountRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateAccount(ctx, testTenant, bankRequest(), testUser)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func salesAccount(protected bool) *domain.Account {
	return &domain.Account{
		AccountID:        "sales",
		TenantID:         testTenant,
		Name:             "Sales",
		AccountStructure: domain.AccountStructure{Group: domain.GroupEquity, Head: domain.HeadIncome, Subhead: domain.SubheadSales},
		SystemProtected:  protected,
	}
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ClassificationFrozenOnceUsed() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountByID", ctx, testTenant, "sales").Return(salesAccount(false), nil)
	suite.postingRepo.On("CountActivePostingsForAccount", ctx, testTenant, "sales").Return(2, nil)
	subhead := domain.SubheadIndirectIncome

	_, err := suite.service.UpdateAccount(ctx, testTenant, "sales", dto.UpdateAccountRequest{Subhead: &subhead}, testUser)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.accountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ReclassifiesWithSinglePosting() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountByID", ctx, testTenant, "sales").Return(salesAccount(false), nil)
	suite.postingRepo.On("CountActivePostingsForAccount", ctx, testTenant, "sales").Return(1, nil)
	suite.accountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	subhead := domain.SubheadIndirectIncome

	account, err := suite.service.UpdateAccount(ctx, testTenant, "sales", dto.UpdateAccountRequest{Subhead: &subhead}, testUser)

	suite.Require().NoError(err)
	suite.Equal(domain.SubheadIndirectIncome, account.Subhead)
	suite.Equal(testUser, account.LastUpdatedBy)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ProtectedAccountInUseKeepsName() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountByID", ctx, testTenant, "sales").Return(salesAccount(true), nil)
	suite.postingRepo.On("CountActivePostingsForAccount", ctx, testTenant, "sales").Return(5, nil)
	name := "Revenue"

	_, err := suite.service.UpdateAccount(ctx, testTenant, "sales", dto.UpdateAccountRequest{Name: &name}, testUser)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Guards() {
	ctx := context.Background()

	suite.Run("referenced by postings", func() {
		suite.SetupTest()
		suite.accountRepo.On("FindAccountByID", ctx, testTenant, "sales").Return(salesAccount(false), nil)
		suite.postingRepo.On("CountActivePostingsForAccount", ctx, testTenant, "sales").Return(1, nil)
		suite.ErrorIs(suite.service.DeleteAccount(ctx, testTenant, "sales", testUser), apperrors.ErrConflict)
	})

	suite.Run("has children", func() {
		suite.SetupTest()
		suite.accountRepo.On("FindAccountByID", ctx, testTenant, "sales").Return(salesAccount(false), nil)
		suite.postingRepo.On("CountActivePostingsForAccount", ctx, testTenant, "sales").Return(0, nil)
		suite.accountRepo.On("CountChildAccounts", ctx, testTenant, "sales").Return(1, nil)
		suite.ErrorIs(suite.service.DeleteAccount(ctx, testTenant, "sales", testUser), apperrors.ErrConflict)
	})

	suite.Run("unused", func() {
		suite.SetupTest()
		suite.accountRepo.On("FindAccountByID", ctx, testTenant, "sales").Return(salesAccount(false), nil)
		suite.postingRepo.On("CountActivePostingsForAccount", ctx, testTenant, "sales").Return(0, nil)
		suite.accountRepo.On("CountChildAccounts", ctx, testTenant, "sales").Return(0, nil)
		suite.accountRepo.On("DeleteAccount", ctx, testTenant, "sales").Return(nil).Once()
		suite.NoError(suite.service.DeleteAccount(ctx, testTenant, "sales", testUser))
		suite.accountRepo.AssertExpectations(suite.T())
	})
}

func (suite *AccountServiceTestSuite) TestSeedDefaultAccounts_SkipsExistingNames() {
	ctx := context.Background()
	chart, err := services.DefaultChart()
	suite.Require().NoError(err)

	suite.accountRepo.On("FindAccountByName", ctx, testTenant, "Cash").Return(&domain.Account{Name: "Cash"}, nil)
	suite.accountRepo.On("FindAccountByName", ctx, testTenant, mock.Anything).Return(nil, apperrors.NewNotFoundError("account"))
	suite.accountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil)

	created, err := suite.service.SeedDefaultAccounts(ctx, testTenant, testUser)

	suite.Require().NoError(err)
	suite.Len(created, len(chart)-1)
	names := map[string]bool{}
	for _, a := range created {
		suite.True(a.SystemProtected)
		suite.True(a.IsValid())
		names[a.Name] = true
	}
	suite.False(names["Cash"])
	suite.True(names[domain.OpeningBalanceAdjustmentsAccountName])
	suite.True(names[domain.SalesDiscountAccountName])
	suite.True(names[domain.PurchaseDiscountAccountName])
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
