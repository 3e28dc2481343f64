package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Account repository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, tenantID, name string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string, subhead *domain.AccountSubhead, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, subhead, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountChildAccounts(ctx context.Context, tenantID, accountID string) (int, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, tenantID, accountID string) error {
	args := m.Called(ctx, tenantID, accountID)
	return args.Error(0)
}

// --- Posting repository ---

type MockPostingRepository struct {
	mock.Mock
}

func (m *MockPostingRepository) FindActivePostings(ctx context.Context, tenantID, operationID string) ([]domain.Posting, error) {
	args := m.Called(ctx, tenantID, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockPostingRepository) FindPostingHistory(ctx context.Context, tenantID, operationID string) ([]domain.Posting, error) {
	args := m.Called(ctx, tenantID, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockPostingRepository) CountActivePostingsForAccount(ctx context.Context, tenantID, accountID string) (int, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockPostingRepository) FindUnbalancedOperations(ctx context.Context, tenantID string) ([]domain.UnbalancedGroup, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnbalancedGroup), args.Error(1)
}

func (m *MockPostingRepository) ApplyOperation(ctx context.Context, write domain.OperationWrite) (*domain.OperationResult, error) {
	args := m.Called(ctx, write)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationResult), args.Error(1)
}

// --- Tenant repository ---

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so services may mutate it freely.
	t := *args.Get(0).(*domain.Tenant)
	return &t, args.Error(1)
}

func (m *MockTenantRepository) UpdateTenantSettings(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantMember(ctx context.Context, userID, tenantID string) (*domain.TenantMember, error) {
	args := m.Called(ctx, userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantMember), args.Error(1)
}

func (m *MockTenantRepository) ListTenantMembers(ctx context.Context, tenantID string) ([]domain.TenantMember, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TenantMember), args.Error(1)
}

// --- Stock repository ---

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ListStockEntries(ctx context.Context, tenantID string, upTo time.Time) ([]domain.StockEntry, error) {
	args := m.Called(ctx, tenantID, upTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Reporting and document repositories ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListLedgerRows(ctx context.Context, tenantID string, start *time.Time, end time.Time) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, tenantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

func (m *MockReportingRepository) AccountTotalsBefore(ctx context.Context, tenantID string, before time.Time) ([]domain.AccountTotal, error) {
	args := m.Called(ctx, tenantID, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotal), args.Error(1)
}

func (m *MockReportingRepository) SubheadAccountTotals(ctx context.Context, tenantID string, subhead domain.AccountSubhead, start *time.Time, end time.Time) ([]domain.AccountTotal, error) {
	args := m.Called(ctx, tenantID, subhead, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotal), args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) ListSalesInvoices(ctx context.Context, tenantID string, from, to time.Time) ([]domain.SalesInvoice, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesInvoice), args.Error(1)
}

func (m *MockDocumentRepository) ListPurchaseBills(ctx context.Context, tenantID string, from, to time.Time) ([]domain.PurchaseBill, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseBill), args.Error(1)
}

// --- Locker ---

// recordingLocker grants every lock and remembers the keys it saw.
type recordingLocker struct {
	mu       sync.Mutex
	keys     []string
	released int
	err      error
}

func (l *recordingLocker) Lock(_ context.Context, key string) (portsrepo.ReleaseFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	l.keys = append(l.keys, key)
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.released++
		return nil
	}, nil
}

// --- In-memory posting store ---

// memoryPostingStore applies operations with the supersede semantics of the SQL store.
type memoryPostingStore struct {
	mu       sync.Mutex
	postings []domain.Posting
	counters map[string]int64
}

func newMemoryPostingStore() *memoryPostingStore {
	return &memoryPostingStore{counters: map[string]int64{}}
}

func (s *memoryPostingStore) active(tenantID, operationID string) []domain.Posting {
	var out []domain.Posting
	for _, p := range s.postings {
		if p.TenantID == tenantID && p.OperationID == operationID && p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func (s *memoryPostingStore) FindActivePostings(_ context.Context, tenantID, operationID string) ([]domain.Posting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active(tenantID, operationID), nil
}

func (s *memoryPostingStore) FindPostingHistory(_ context.Context, tenantID, operationID string) ([]domain.Posting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Posting
	for _, p := range s.postings {
		if p.TenantID == tenantID && p.OperationID == operationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memoryPostingStore) CountActivePostingsForAccount(_ context.Context, tenantID, accountID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.postings {
		if p.TenantID == tenantID && p.AccountID == accountID && p.IsActive() {
			n++
		}
	}
	return n, nil
}

func (s *memoryPostingStore) FindUnbalancedOperations(_ context.Context, tenantID string) ([]domain.UnbalancedGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	type sums struct {
		txn           string
		debit, credit decimal.Decimal
	}
	byOp := map[string]*sums{}
	for _, p := range s.postings {
		if p.TenantID != tenantID || !p.IsActive() {
			continue
		}
		g, ok := byOp[p.OperationID]
		if !ok {
			g = &sums{txn: p.TransactionID}
			byOp[p.OperationID] = g
		}
		g.debit = g.debit.Add(p.DebitAmount)
		g.credit = g.credit.Add(p.CreditAmount)
	}
	out := []domain.UnbalancedGroup{}
	for op, g := range byOp {
		if !g.debit.Equal(g.credit) {
			out = append(out, domain.UnbalancedGroup{OperationID: op, TransactionID: g.txn, Debit: g.debit, Credit: g.credit})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OperationID < out[j].OperationID })
	return out, nil
}

func (s *memoryPostingStore) ApplyOperation(_ context.Context, w domain.OperationWrite) (*domain.OperationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.active(w.TenantID, w.OperationID)
	if w.Mode == domain.WriteCreate && len(existing) > 0 {
		return nil, apperrors.ErrDuplicate
	}

	createdAt := w.Now
	txnID := w.TransactionID
	for _, p := range existing {
		if p.CreatedDateTime.Before(createdAt) {
			createdAt = p.CreatedDateTime
		}
		if txnID == "" {
			txnID = p.TransactionID
		}
	}
	if w.StampAt != nil {
		createdAt = *w.StampAt
	}
	if txnID == "" && w.SequenceKey != "" {
		s.counters[w.TenantID+"/"+w.SequenceKey]++
		txnID = domain.FormatSequence(w.SequenceKey, s.counters[w.TenantID+"/"+w.SequenceKey])
	}
	if txnID == "" {
		txnID = w.OperationID
	}

	supersededAt := w.Now
	superseded := 0
	for i := range s.postings {
		p := &s.postings[i]
		if p.TenantID == w.TenantID && p.OperationID == w.OperationID && p.IsActive() {
			by := w.UserID
			p.SupersededAt = &supersededAt
			p.SupersededBy = &by
			superseded++
		}
	}

	result := &domain.OperationResult{OperationID: w.OperationID, TransactionID: txnID, CreatedAt: createdAt, Superseded: superseded}
	for _, l := range w.Lines {
		p := domain.Posting{
			PostingID:       uuid.NewString(),
			TenantID:        w.TenantID,
			OperationID:     w.OperationID,
			TransactionID:   txnID,
			AccountID:       l.AccountID,
			Action:          w.Action,
			DebitAmount:     l.Debit,
			CreditAmount:    l.Credit,
			Remark:          l.Remark,
			CreatedDateTime: createdAt,
			CreatedBy:       w.UserID,
		}
		s.postings = append(s.postings, p)
		result.Postings = append(result.Postings, p)
	}
	return result, nil
}
