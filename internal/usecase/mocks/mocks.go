// Package mocks provides hand-written test doubles for the usecase
// interfaces. Each mock keeps a small in-memory store and allows individual
// methods to be overridden with Func fields.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

func scopedKey(clubID, id string) string {
	return clubID + "/" + id
}

// MockTransaction is a no-op transaction that records its outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockClubRepository is an in-memory ClubRepository.
type MockClubRepository struct {
	mu    sync.RWMutex
	clubs map[string]*domain.Club

	CreateTxFunc       func(ctx context.Context, tx usecase.Transaction, club *domain.Club) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Club, error)
	GetBySubdomainFunc func(ctx context.Context, subdomain string) (*domain.Club, error)
	ListFunc           func(ctx context.Context, limit, offset int) ([]*domain.Club, error)
}

func NewMockClubRepository() *MockClubRepository {
	return &MockClubRepository{clubs: make(map[string]*domain.Club)}
}

func (m *MockClubRepository) CreateTx(ctx context.Context, tx usecase.Transaction, club *domain.Club) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, club)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clubs[club.ID] = club
	return nil
}

func (m *MockClubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if club, ok := m.clubs[id]; ok {
		return club, nil
	}
	return nil, domain.ErrClubNotFound
}

func (m *MockClubRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Club, error) {
	if m.GetBySubdomainFunc != nil {
		return m.GetBySubdomainFunc(ctx, subdomain)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, club := range m.clubs {
		if club.Subdomain == subdomain {
			return club, nil
		}
	}
	return nil, domain.ErrClubNotFound
}

func (m *MockClubRepository) List(ctx context.Context, limit, offset int) ([]*domain.Club, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	clubs := make([]*domain.Club, 0, len(m.clubs))
	for _, club := range m.clubs {
		clubs = append(clubs, club)
	}
	return clubs, nil
}

// MockCashFundRepository is an in-memory CashFundRepository keyed by club.
type MockCashFundRepository struct {
	mu    sync.RWMutex
	funds map[string]*domain.CashFund

	CreateTxFunc           func(ctx context.Context, tx usecase.Transaction, fund *domain.CashFund) error
	GetByClubFunc          func(ctx context.Context, clubID string) (*domain.CashFund, error)
	GetByClubForUpdateFunc func(ctx context.Context, tx usecase.Transaction, clubID string) (*domain.CashFund, error)
	UpdateBalancesFunc     func(ctx context.Context, tx usecase.Transaction, fund *domain.CashFund, updatedAt time.Time) error
}

func NewMockCashFundRepository() *MockCashFundRepository {
	return &MockCashFundRepository{funds: make(map[string]*domain.CashFund)}
}

// Seed stores a fund for its club.
func (m *MockCashFundRepository) Seed(fund *domain.CashFund) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.funds[fund.ClubID] = fund
}

func (m *MockCashFundRepository) CreateTx(ctx context.Context, tx usecase.Transaction, fund *domain.CashFund) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, fund)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.funds[fund.ClubID] = fund
	return nil
}

func (m *MockCashFundRepository) GetByClub(ctx context.Context, clubID string) (*domain.CashFund, error) {
	if m.GetByClubFunc != nil {
		return m.GetByClubFunc(ctx, clubID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if fund, ok := m.funds[clubID]; ok {
		copied := *fund
		return &copied, nil
	}
	return nil, domain.ErrCashFundNotFound
}

func (m *MockCashFundRepository) GetByClubForUpdate(ctx context.Context, tx usecase.Transaction, clubID string) (*domain.CashFund, error) {
	if m.GetByClubForUpdateFunc != nil {
		return m.GetByClubForUpdateFunc(ctx, tx, clubID)
	}
	return m.GetByClub(ctx, clubID)
}

func (m *MockCashFundRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, fund *domain.CashFund, updatedAt time.Time) error {
	if m.UpdateBalancesFunc != nil {
		return m.UpdateBalancesFunc(ctx, tx, fund, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.funds[fund.ClubID]
	if !ok {
		return domain.ErrCashFundNotFound
	}
	stored.Balance = fund.Balance
	stored.TotalCredited = fund.TotalCredited
	stored.TotalDebited = fund.TotalDebited
	stored.Version = fund.Version
	stored.UpdatedAt = updatedAt
	return nil
}

// MockMemberRepository is an in-memory MemberRepository scoped by club.
type MockMemberRepository struct {
	mu      sync.RWMutex
	members map[string]*domain.Member

	CreateFunc           func(ctx context.Context, member *domain.Member) error
	GetByIDFunc          func(ctx context.Context, clubID, id string) (*domain.Member, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, clubID, id string) (*domain.Member, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, clubID, id string, balance domain.Amount, version int64, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, clubID string, limit, offset int) ([]*domain.Member, error)
}

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{members: make(map[string]*domain.Member)}
}

// Seed stores a member under its club scope.
func (m *MockMemberRepository) Seed(member *domain.Member) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[scopedKey(member.ClubID, member.ID)] = member
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	m.Seed(member)
	return nil
}

func (m *MockMemberRepository) GetByID(ctx context.Context, clubID, id string) (*domain.Member, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, clubID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if member, ok := m.members[scopedKey(clubID, id)]; ok {
		copied := *member
		return &copied, nil
	}
	return nil, domain.ErrMemberNotFound
}

func (m *MockMemberRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, clubID, id string) (*domain.Member, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, clubID, id)
	}
	return m.GetByID(ctx, clubID, id)
}

func (m *MockMemberRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, clubID, id string, balance domain.Amount, version int64, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, clubID, id, balance, version, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.members[scopedKey(clubID, id)]
	if !ok {
		return domain.ErrMemberNotFound
	}
	member.Balance = balance
	member.Version = version
	member.UpdatedAt = updatedAt
	return nil
}

func (m *MockMemberRepository) List(ctx context.Context, clubID string, limit, offset int) ([]*domain.Member, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, clubID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var members []*domain.Member
	for _, member := range m.members {
		if member.ClubID == clubID {
			members = append(members, member)
		}
	}
	return members, nil
}

// MockBankAccountRepository is an in-memory BankAccountRepository scoped by
// club.
type MockBankAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount

	CreateFunc     func(ctx context.Context, account *domain.BankAccount) error
	GetByIDFunc    func(ctx context.Context, clubID, id string) (*domain.BankAccount, error)
	GetByIDTxFunc  func(ctx context.Context, tx usecase.Transaction, clubID, id string) (*domain.BankAccount, error)
	ListFunc       func(ctx context.Context, clubID string, limit, offset int) ([]*domain.BankAccount, error)
	DeleteFunc     func(ctx context.Context, clubID, id string) error
}

func NewMockBankAccountRepository() *MockBankAccountRepository {
	return &MockBankAccountRepository{accounts: make(map[string]*domain.BankAccount)}
}

// Seed stores a bank account under its club scope.
func (m *MockBankAccountRepository) Seed(account *domain.BankAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[scopedKey(account.ClubID, account.ID)] = account
}

func (m *MockBankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.Seed(account)
	return nil
}

func (m *MockBankAccountRepository) GetByID(ctx context.Context, clubID, id string) (*domain.BankAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, clubID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[scopedKey(clubID, id)]; ok {
		return account, nil
	}
	return nil, domain.ErrBankAccountNotFound
}

func (m *MockBankAccountRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, clubID, id string) (*domain.BankAccount, error) {
	if m.GetByIDTxFunc != nil {
		return m.GetByIDTxFunc(ctx, tx, clubID, id)
	}
	return m.GetByID(ctx, clubID, id)
}

func (m *MockBankAccountRepository) List(ctx context.Context, clubID string, limit, offset int) ([]*domain.BankAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, clubID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.BankAccount
	for _, account := range m.accounts {
		if account.ClubID == clubID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (m *MockBankAccountRepository) Delete(ctx context.Context, clubID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, clubID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := scopedKey(clubID, id)
	if _, ok := m.accounts[key]; !ok {
		return domain.ErrBankAccountNotFound
	}
	delete(m.accounts, key)
	return nil
}

// MockEntryRepository is an in-memory append-only EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	Entries []*domain.LedgerEntry

	CreateFunc            func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error
	ListFunc              func(ctx context.Context, filter usecase.EntryFilter) ([]*domain.LedgerEntry, error)
	ListMemberCreditsFunc func(ctx context.Context, clubID, memberID string) ([]*domain.LedgerEntry, error)
	SumFundEntriesFunc    func(ctx context.Context, clubID string) (domain.Amount, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockEntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.LedgerEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, entry := range m.Entries {
		if entry.ClubID != filter.ClubID {
			continue
		}
		if filter.OperationType != nil && entry.OperationType != *filter.OperationType {
			continue
		}
		if filter.MemberID != nil && (entry.MemberID == nil || *entry.MemberID != *filter.MemberID) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (m *MockEntryRepository) ListMemberCredits(ctx context.Context, clubID, memberID string) ([]*domain.LedgerEntry, error) {
	if m.ListMemberCreditsFunc != nil {
		return m.ListMemberCreditsFunc(ctx, clubID, memberID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, entry := range m.Entries {
		if entry.ClubID != clubID || entry.OperationType != domain.OperationCredit {
			continue
		}
		if entry.MemberID == nil || *entry.MemberID != memberID {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (m *MockEntryRepository) SumFundEntries(ctx context.Context, clubID string) (domain.Amount, error) {
	if m.SumFundEntriesFunc != nil {
		return m.SumFundEntriesFunc(ctx, clubID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := domain.ZeroAmount
	for _, entry := range m.Entries {
		if entry.ClubID == clubID && entry.OperationType.AffectsFund() {
			sum = sum.Add(entry.Amount)
		}
	}
	return sum, nil
}

// CountForClub returns how many entries were appended for a club.
func (m *MockEntryRepository) CountForClub(clubID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, entry := range m.Entries {
		if entry.ClubID == clubID {
			count++
		}
	}
	return count
}

// MockIDGenerator generates deterministic sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + itoa(m.counter)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// MockCache is an in-memory Cache without TTL expiry.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
