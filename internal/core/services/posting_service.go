package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
)

// postingService implements the PostingSvcFacade interface
type postingService struct {
	BaseService
	postingRepo portsrepo.PostingRepositoryFacade
	accountRepo portsrepo.AccountReader
	tenantSvc   portssvc.TenantReaderSvc
	locker      portsrepo.DocumentLocker
	now         func() time.Time
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithPostingTenantAuthorizer adds the tenant authorizer dependency
func WithPostingTenantAuthorizer(authorizer portssvc.TenantAuthorizerSvc) PostingServiceOption {
	return func(s *postingService) {
		s.TenantAuthorizer = authorizer
	}
}

// WithPostingClock overrides the clock used to stamp new postings
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *postingService) {
		s.now = now
	}
}

// NewPostingService creates a new posting service with the provided options
func NewPostingService(
	postingRepo portsrepo.PostingRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	tenantSvc portssvc.TenantReaderSvc,
	locker portsrepo.DocumentLocker,
	options ...PostingServiceOption,
) portssvc.PostingSvcFacade {
	svc := &postingService{
		postingRepo: postingRepo,
		accountRepo: accountRepo,
		tenantSvc:   tenantSvc,
		locker:      locker,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure postingService implements the PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// RecordPostings writes the first posting set of a source operation
func (s *postingService) RecordPostings(ctx context.Context, tenantID string, req dto.RecordPostingsRequest, userID string) (*domain.OperationResult, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to record postings",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	write := domain.OperationWrite{
		TenantID:      tenantID,
		OperationID:   strings.TrimSpace(req.OperationID),
		TransactionID: strings.TrimSpace(req.TransactionID),
		SequenceKey:   req.SequencePrefix,
		Action:        req.Action,
		Lines:         dto.Lines(req.Entries),
		Mode:          domain.WriteCreate,
		UserID:        userID,
	}
	return s.apply(ctx, write)
}

// ReplacePostings supersedes the active posting set of an operation
func (s *postingService) ReplacePostings(ctx context.Context, tenantID, operationID string, req dto.ReplacePostingsRequest, userID string) (*domain.OperationResult, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to replace postings",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	write := domain.OperationWrite{
		TenantID:      tenantID,
		OperationID:   strings.TrimSpace(operationID),
		TransactionID: strings.TrimSpace(req.TransactionID),
		SequenceKey:   req.SequencePrefix,
		Action:        req.Action,
		Lines:         dto.Lines(req.Entries),
		Mode:          domain.WriteReplace,
		UserID:        userID,
	}
	return s.apply(ctx, write)
}

// SetOpeningBalance writes the opening balance of an account against Opening Balance Adjustments
func (s *postingService) SetOpeningBalance(ctx context.Context, tenantID, accountID string, req dto.OpeningBalanceRequest, userID string) (*domain.OperationResult, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to set opening balance",
			slog.String("user_id", userID),
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	if req.Debit.IsNegative() || req.Credit.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance amounts must not be negative", apperrors.ErrValidation)
	}
	if req.Debit.IsPositive() == req.Credit.IsPositive() {
		return nil, fmt.Errorf("%w: exactly one of debit or credit must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if account.Name == domain.OpeningBalanceAdjustmentsAccountName {
		return nil, fmt.Errorf("%w: %s cannot carry its own opening balance", apperrors.ErrValidation, account.Name)
	}
	adjustments, err := s.accountRepo.FindAccountByName(ctx, tenantID, domain.OpeningBalanceAdjustmentsAccountName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %q is missing, seed the default chart first",
				apperrors.ErrValidation, domain.OpeningBalanceAdjustmentsAccountName)
		}
		return nil, err
	}

	resolver, err := s.tenantSvc.ResolverForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	day, err := resolver.DayRange(req.AsOf, req.AsOf)
	if err != nil {
		return nil, err
	}
	stampAt := day.End

	write := domain.OperationWrite{
		TenantID:      tenantID,
		OperationID:   domain.OpeningBalanceOperationID(accountID),
		TransactionID: domain.OpeningBalanceTransactionID,
		Action:        domain.ActionOpeningBalance,
		Lines: []domain.PostingLine{
			{AccountID: account.AccountID, Debit: req.Debit, Credit: req.Credit, Remark: domain.OpeningBalanceLabel},
			{AccountID: adjustments.AccountID, Debit: req.Credit, Credit: req.Debit, Remark: domain.OpeningBalanceLabel + " of " + account.Name},
		},
		Mode:    domain.WriteReplace,
		UserID:  userID,
		StampAt: &stampAt,
	}
	return s.apply(ctx, write)
}

// GetOperationPostings returns the active postings of an operation
func (s *postingService) GetOperationPostings(ctx context.Context, tenantID, operationID, userID string) ([]domain.Posting, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	postings, err := s.postingRepo.FindActivePostings(ctx, tenantID, operationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find postings",
			slog.String("tenant_id", tenantID),
			slog.String("operation_id", operationID))
		return nil, err
	}
	if len(postings) == 0 {
		return nil, apperrors.NewNotFoundError("operation " + operationID)
	}
	return postings, nil
}

// GetOperationHistory returns every posting an operation ever had
func (s *postingService) GetOperationHistory(ctx context.Context, tenantID, operationID, userID string) ([]domain.Posting, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	postings, err := s.postingRepo.FindPostingHistory(ctx, tenantID, operationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find posting history",
			slog.String("tenant_id", tenantID),
			slog.String("operation_id", operationID))
		return nil, err
	}
	if len(postings) == 0 {
		return nil, apperrors.NewNotFoundError("operation " + operationID)
	}
	return postings, nil
}

// VerifyPostings lists active operations that do not balance
func (s *postingService) VerifyPostings(ctx context.Context, tenantID, userID string) ([]domain.UnbalancedGroup, error) {
	if err := s.AuthorizeUser(ctx, userID, tenantID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	groups, err := s.postingRepo.FindUnbalancedOperations(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to verify postings",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if groups == nil {
		groups = []domain.UnbalancedGroup{}
	}
	if len(groups) > 0 {
		s.LogWarn(ctx, "Unbalanced operations found",
			slog.String("tenant_id", tenantID),
			slog.Int("count", len(groups)))
	}
	return groups, nil
}

// apply validates a posting set and writes it under the document lock.
func (s *postingService) apply(ctx context.Context, write domain.OperationWrite) (*domain.OperationResult, error) {
	if write.OperationID == "" {
		return nil, fmt.Errorf("%w: operation id is required", apperrors.ErrValidation)
	}
	if err := accounting.ValidatePostingBalance(write.Lines); err != nil {
		return nil, err
	}
	if err := s.checkAccounts(ctx, write.TenantID, write.Lines); err != nil {
		return nil, err
	}
	write.Now = s.now().UTC()

	lockKey := "postings:" + write.TenantID + ":" + write.OperationID
	release, err := s.locker.Lock(ctx, lockKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to obtain document lock",
			slog.String("tenant_id", write.TenantID),
			slog.String("operation_id", write.OperationID))
		return nil, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.LogError(ctx, err, "Failed to release document lock",
				slog.String("lock_key", lockKey))
		}
	}()

	result, err := s.postingRepo.ApplyOperation(ctx, write)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to apply posting set",
				slog.String("tenant_id", write.TenantID),
				slog.String("operation_id", write.OperationID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Posting set written",
		slog.String("tenant_id", write.TenantID),
		slog.String("operation_id", result.OperationID),
		slog.String("transaction_id", result.TransactionID),
		slog.Int("postings", len(result.Postings)),
		slog.Int("superseded", result.Superseded))
	return result, nil
}

// checkAccounts ensures every line references an account of the tenant.
func (s *postingService) checkAccounts(ctx context.Context, tenantID string, lines []domain.PostingLine) error {
	ids := make([]string, len(lines))
	for i, l := range lines {
		ids[i] = l.AccountID
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, tenantID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for posting set",
			slog.String("tenant_id", tenantID))
		return err
	}
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return fmt.Errorf("%w: account %s does not exist in tenant", apperrors.ErrNotFound, id)
		}
	}
	return nil
}
