package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/platform/config"
	"github.com/SscSPs/books_ledger/internal/utils/crypto"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Every call is authorized against the caller's tenant membership.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker portsrepo.DocumentLocker) (*portssvc.ServiceContainer, error) {
	return newServiceContainer(cfg, repos, locker, true)
}

// NewOperatorServiceContainer wires the same services for the command line, where the
// operator already holds database credentials and no membership checks are made.
func NewOperatorServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker portsrepo.DocumentLocker) (*portssvc.ServiceContainer, error) {
	return newServiceContainer(cfg, repos, locker, false)
}

func newServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, locker portsrepo.DocumentLocker, authorize bool) (*portssvc.ServiceContainer, error) {
	sealer, err := crypto.NewSealer(cfg.BankFieldKey)
	if err != nil {
		return nil, fmt.Errorf("invalid BANK_FIELD_KEY: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	// Tenant service first, every other service authorizes through it
	container.Tenant = NewTenantService(repos.TenantRepo, cfg.DefaultTimezone)
	var authorizer portssvc.TenantAuthorizerSvc
	if authorize {
		authorizer = container.Tenant
	}

	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.PostingRepo,
		WithAccountTenantAuthorizer(authorizer),
		WithBankFieldSealer(sealer),
	)
	container.Posting = NewPostingService(
		repos.PostingRepo,
		repos.AccountRepo,
		container.Tenant,
		locker,
		WithPostingTenantAuthorizer(authorizer),
	)
	container.Stock = NewStockService(
		repos.StockRepo,
		container.Tenant,
		WithStockTenantAuthorizer(authorizer),
	)
	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.StockRepo,
		repos.DocumentRepo,
		container.Tenant,
		WithReportingTenantAuthorizer(authorizer),
	)

	return container, nil
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.PostingSvcFacade = (*postingService)(nil)
	_ portssvc.StockSvcFacade   = (*stockService)(nil)
	_ portssvc.TenantSvcFacade  = (*tenantService)(nil)
	_ portssvc.ReportingService = (*reportingService)(nil)
)
