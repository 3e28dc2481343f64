package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// stockService implements the StockSvcFacade interface
type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
	tenantSvc portssvc.TenantReaderSvc
	now       func() time.Time
}

// StockServiceOption is a functional option for configuring the stock service
type StockServiceOption func(*stockService)

// WithStockTenantAuthorizer adds the tenant authorizer dependency
func WithStockTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) StockServiceOption {
	return func(s *stockService) {
		s.TenantAuthorizer = authorizer
	}
}

// NewStockService creates a new stock service with the provided options
func NewStockService(stockRepo portsrepo.StockRepositoryFacade, tenantSvc portssvc.TenantReaderSvc, options ...StockServiceOption) portssvc.StockSvcFacade {
	svc := &stockService{
		stockRepo: stockRepo,
		tenantSvc: tenantSvc,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// RecordStockEntry appends a quantity movement to the item stock ledger
func (s *stockService) RecordStockEntry(ctx context.Context, tenantID string, req dto.StockEntryRequest, userID string) (*domain.StockEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to record stock",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	if req.DebitQuantity.IsNegative() || req.CreditQuantity.IsNegative() {
		return nil, fmt.Errorf("%w: stock quantities must not be negative", apperrors.ErrValidation)
	}
	if req.DebitQuantity.IsZero() && req.CreditQuantity.IsZero() {
		return nil, fmt.Errorf("%w: a stock entry needs a debit or credit quantity", apperrors.ErrValidation)
	}
	if req.CostPrice.IsNegative() {
		return nil, fmt.Errorf("%w: cost price must not be negative", apperrors.ErrValidation)
	}
	for _, v := range []decimal.Decimal{req.DebitQuantity, req.CreditQuantity, req.CostPrice} {
		if accounting.ExceedsScale(v) {
			return nil, fmt.Errorf("%w: stock amounts allow at most %d decimal places", apperrors.ErrValidation, accounting.AmountScale)
		}
	}

	createdAt := s.now().UTC()
	if req.EntryDate != "" {
		resolver, err := s.tenantSvc.ResolverForTenant(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		day, err := resolver.ParseDate(req.EntryDate)
		if err != nil {
			return nil, err
		}
		createdAt = day.UTC()
	}

	entry := domain.StockEntry{
		EntryID:         uuid.NewString(),
		TenantID:        tenantID,
		ItemID:          req.ItemID,
		DebitQuantity:   req.DebitQuantity,
		CreditQuantity:  req.CreditQuantity,
		CostPrice:       req.CostPrice,
		CreatedDateTime: createdAt,
		CreatedBy:       userID,
	}
	if err := s.stockRepo.SaveStockEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save stock entry",
			slog.String("tenant_id", tenantID),
			slog.String("item_id", req.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Stock entry recorded",
		slog.String("tenant_id", tenantID),
		slog.String("item_id", entry.ItemID),
		slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

// Valuation values the stock at the start (opening) or end (closing) of a period
func (s *stockService) Valuation(ctx context.Context, tenantID, asOf string, side domain.ValuationSide, userID string) (*domain.StockValuation, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if side != domain.SideOpening && side != domain.SideClosing {
		return nil, fmt.Errorf("%w: unknown valuation side %q", apperrors.ErrValidation, side)
	}

	resolver, err := s.tenantSvc.ResolverForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	p, err := resolver.Resolve(asOf)
	if err != nil {
		return nil, err
	}
	instant := p.End
	if side == domain.SideOpening {
		instant = *p.Start
	}

	entries, err := s.stockRepo.ListStockEntries(ctx, tenantID, instant)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock entries",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	valuation := accounting.ValueStock(entries, instant, side)
	if valuation.NegativeStock {
		s.LogWarn(ctx, "Stock valuation found oversold items",
			slog.String("tenant_id", tenantID),
			slog.Any("items", valuation.OversoldItems))
	}
	return &valuation, nil
}
