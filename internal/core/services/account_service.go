package services

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/crypto"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed default_chart.yaml
var defaultChartYAML []byte

// ChartEntry is one account of the default chart.
type ChartEntry struct {
	Name        string `yaml:"name"`
	Code        string `yaml:"code"`
	Description string `yaml:"description"`

	domain.AccountStructure `yaml:",inline"`
}

// DefaultChart parses the embedded default chart of accounts.
func DefaultChart() ([]ChartEntry, error) {
	var doc struct {
		Accounts []ChartEntry `yaml:"accounts"`
	}
	if err := yaml.Unmarshal(defaultChartYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse default chart: %w", err)
	}
	for _, e := range doc.Accounts {
		if !e.IsValid() {
			return nil, fmt.Errorf("%w: default chart account %q has an invalid structure", apperrors.ErrValidation, e.Name)
		}
	}
	return doc.Accounts, nil
}

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	postingRepo portsrepo.PostingReader
	sealer      *crypto.Sealer
	now         func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountTenantAuthorizer adds the tenant authorizer dependency
func WithAccountTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.TenantAuthorizer = authorizer
	}
}

// WithBankFieldSealer encrypts bank fields at rest
func WithBankFieldSealer(sealer *crypto.Sealer) AccountServiceOption {
	return func(s *accountService) {
		s.sealer = sealer
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, postingRepo portsrepo.PostingReader, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		postingRepo: postingRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, tenantID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create account",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	structure := req.Structure()
	if !structure.IsValid() {
		return nil, fmt.Errorf("%w: %s / %s / %s is not a valid account structure",
			apperrors.ErrValidation, structure.Group, structure.Head, structure.Subhead)
	}

	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		if err := s.checkParent(ctx, tenantID, *req.ParentAccountID, structure); err != nil {
			return nil, err
		}
	} else {
		req.ParentAccountID = nil
	}

	now := s.now()
	account := domain.Account{
		AccountID:         uuid.NewString(),
		TenantID:          tenantID,
		Name:              req.Name,
		Code:              req.Code,
		Description:       req.Description,
		ParentAccountID:   req.ParentAccountID,
		AccountStructure:  structure,
		BankAccountNumber: req.BankAccountNumber,
		BankIFSC:          req.BankIFSC,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.save(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account",
				slog.String("account_id", account.AccountID),
				slog.String("tenant_id", tenantID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("tenant_id", tenantID),
		slog.String("subhead", string(account.Subhead)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, tenantID, accountID, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findAccount(ctx, tenantID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, tenantID string, params dto.ListAccountsParams, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	var subhead *domain.AccountSubhead
	if params.Subhead != "" {
		sh := domain.AccountSubhead(params.Subhead)
		subhead = &sh
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, tenantID, subhead, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("tenant_id", tenantID),
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list accounts for tenant %s: %w", tenantID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	for i := range accounts {
		if err := s.open(&accounts[i]); err != nil {
			return nil, err
		}
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)),
		slog.String("tenant_id", tenantID))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, tenantID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to update account",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	account, err := s.findAccount(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}

	update := domain.AccountUpdate{
		Name:            req.Name,
		Code:            req.Code,
		Description:     req.Description,
		ParentAccountID: req.ParentAccountID,
	}
	if req.Group != nil || req.Head != nil || req.Subhead != nil {
		structure := account.AccountStructure
		if req.Group != nil {
			structure.Group = *req.Group
		}
		if req.Head != nil {
			structure.Head = *req.Head
		}
		if req.Subhead != nil {
			structure.Subhead = *req.Subhead
		}
		if !structure.IsValid() {
			return nil, fmt.Errorf("%w: %s / %s / %s is not a valid account structure",
				apperrors.ErrValidation, structure.Group, structure.Head, structure.Subhead)
		}
		update.Structure = &structure
	}

	renaming := req.Name != nil || req.Code != nil || req.Description != nil
	reclassifying := update.ChangesClassification(*account)
	if renaming || reclassifying {
		used, err := s.postingRepo.CountActivePostingsForAccount(ctx, tenantID, accountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count postings for account",
				slog.String("account_id", accountID))
			return nil, err
		}
		if reclassifying && used > 1 {
			return nil, fmt.Errorf("%w: account %s is referenced by %d postings and cannot be reclassified",
				apperrors.ErrConflict, account.Name, used)
		}
		if renaming && account.SystemProtected && used > 1 {
			return nil, fmt.Errorf("%w: system account %s is in use and cannot be renamed", apperrors.ErrConflict, account.Name)
		}
	}

	if reclassifying {
		structure := account.AccountStructure
		if update.Structure != nil {
			structure = *update.Structure
		}
		if update.ParentAccountID != nil && *update.ParentAccountID != "" {
			if *update.ParentAccountID == accountID {
				return nil, fmt.Errorf("%w: an account cannot be its own parent", apperrors.ErrValidation)
			}
			if err := s.checkParent(ctx, tenantID, *update.ParentAccountID, structure); err != nil {
				return nil, err
			}
		}
		account.AccountStructure = structure
		if update.ParentAccountID != nil {
			if *update.ParentAccountID == "" {
				account.ParentAccountID = nil
			} else {
				account.ParentAccountID = update.ParentAccountID
			}
		}
	}

	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Code != nil {
		account.Code = *update.Code
	}
	if update.Description != nil {
		account.Description = *update.Description
	}
	if req.BankAccountNumber != nil {
		account.BankAccountNumber = *req.BankAccountNumber
	}
	if req.BankIFSC != nil {
		account.BankIFSC = *req.BankIFSC
	}

	account.Touch(userID, s.now())

	stored := *account
	if err := s.seal(&stored); err != nil {
		return nil, err
	}
	if err := s.accountRepo.UpdateAccount(ctx, stored); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID),
		slog.String("tenant_id", tenantID),
		slog.Bool("reclassified", reclassifying))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, tenantID, accountID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to delete account",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return err
	}

	account, err := s.findAccount(ctx, tenantID, accountID)
	if err != nil {
		return err
	}

	used, err := s.postingRepo.CountActivePostingsForAccount(ctx, tenantID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count postings for account",
			slog.String("account_id", accountID))
		return err
	}
	switch {
	case account.SystemProtected && used > 1:
		return fmt.Errorf("%w: system account %s is in use", apperrors.ErrConflict, account.Name)
	case used > 0:
		return fmt.Errorf("%w: account %s is referenced by %d postings", apperrors.ErrConflict, account.Name, used)
	}

	children, err := s.accountRepo.CountChildAccounts(ctx, tenantID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count child accounts",
			slog.String("account_id", accountID))
		return err
	}
	if children > 0 {
		return fmt.Errorf("%w: account %s has %d child accounts", apperrors.ErrConflict, account.Name, children)
	}

	if err := s.accountRepo.DeleteAccount(ctx, tenantID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully",
		slog.String("account_id", accountID),
		slog.String("tenant_id", tenantID))
	return nil
}

func (s *accountService) SeedDefaultAccounts(ctx context.Context, tenantID, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to seed accounts",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	chart, err := DefaultChart()
	if err != nil {
		return nil, err
	}

	created := make([]domain.Account, 0, len(chart))
	now := s.now()
	for _, entry := range chart {
		_, err := s.accountRepo.FindAccountByName(ctx, tenantID, entry.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up default account",
				slog.String("tenant_id", tenantID),
				slog.String("name", entry.Name))
			return nil, err
		}

		account := domain.Account{
			AccountID:        uuid.NewString(),
			TenantID:         tenantID,
			Name:             entry.Name,
			Code:             entry.Code,
			Description:      entry.Description,
			AccountStructure: entry.AccountStructure,
			SystemProtected:  true,
			AuditFields: domain.NewAuditFields(userID, now),
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			s.LogError(ctx, err, "Failed to seed default account",
				slog.String("tenant_id", tenantID),
				slog.String("name", entry.Name))
			return nil, err
		}
		created = append(created, account)
	}

	s.LogInfo(ctx, "Default chart seeded",
		slog.String("tenant_id", tenantID),
		slog.Int("created", len(created)),
		slog.Int("skipped", len(chart)-len(created)))
	return created, nil
}

// findAccount loads an account and opens its sealed bank fields.
func (s *accountService) findAccount(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	if err := s.open(account); err != nil {
		s.LogError(ctx, err, "Failed to open bank fields",
			slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) checkParent(ctx context.Context, tenantID, parentID string, structure domain.AccountStructure) error {
	parent, err := s.accountRepo.FindAccountByID(ctx, tenantID, parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, parentID)
		}
		return err
	}
	if parent.AccountStructure != structure {
		return fmt.Errorf("%w: parent account %s is classified as %s / %s / %s",
			apperrors.ErrValidation, parent.Name, parent.Group, parent.Head, parent.Subhead)
	}
	return nil
}

func (s *accountService) save(ctx context.Context, account domain.Account) error {
	if err := s.seal(&account); err != nil {
		return err
	}
	return s.accountRepo.SaveAccount(ctx, account)
}

func (s *accountService) seal(account *domain.Account) error {
	var err error
	if account.BankAccountNumber, err = s.sealer.Seal(account.BankAccountNumber); err != nil {
		return err
	}
	account.BankIFSC, err = s.sealer.Seal(account.BankIFSC)
	return err
}

func (s *accountService) open(account *domain.Account) error {
	var err error
	if account.BankAccountNumber, err = s.sealer.Open(account.BankAccountNumber); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	if account.BankIFSC, err = s.sealer.Open(account.BankIFSC); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
	return nil
}
