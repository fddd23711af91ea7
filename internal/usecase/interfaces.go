package usecase

import (
	"context"
	"time"

	"github.com/clubkit/treasury/internal/domain"
)

// ClubRepository defines data access for clubs.
type ClubRepository interface {
	CreateTx(ctx context.Context, tx Transaction, club *domain.Club) error
	GetByID(ctx context.Context, id string) (*domain.Club, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*domain.Club, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Club, error)
}

// CashFundRepository defines data access for cash funds. Every method is
// scoped by club; a fund belonging to another club is never visible.
type CashFundRepository interface {
	CreateTx(ctx context.Context, tx Transaction, fund *domain.CashFund) error
	GetByClub(ctx context.Context, clubID string) (*domain.CashFund, error)
	// GetByClubForUpdate locks the club's fund row for the duration of the
	// transaction. This serializes fund operations per club.
	GetByClubForUpdate(ctx context.Context, tx Transaction, clubID string) (*domain.CashFund, error)
	UpdateBalances(ctx context.Context, tx Transaction, fund *domain.CashFund, updatedAt time.Time) error
}

// MemberRepository defines data access for members, scoped by club.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, clubID, id string) (*domain.Member, error)
	// GetByIDForUpdate locks the member row. Credits to the same member are
	// serialized; credits to different members of one club are not.
	GetByIDForUpdate(ctx context.Context, tx Transaction, clubID, id string) (*domain.Member, error)
	UpdateBalance(ctx context.Context, tx Transaction, clubID, id string, balance domain.Amount, version int64, updatedAt time.Time) error
	List(ctx context.Context, clubID string, limit, offset int) ([]*domain.Member, error)
}

// BankAccountRepository defines data access for bank accounts, scoped by club.
type BankAccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByID(ctx context.Context, clubID, id string) (*domain.BankAccount, error)
	// GetByIDTx re-checks ownership inside a transaction so a concurrent
	// delete is detected before the operation commits.
	GetByIDTx(ctx context.Context, tx Transaction, clubID, id string) (*domain.BankAccount, error)
	List(ctx context.Context, clubID string, limit, offset int) ([]*domain.BankAccount, error)
	Delete(ctx context.Context, clubID, id string) error
}

// EntryFilter narrows ledger entry listings. ClubID is mandatory.
type EntryFilter struct {
	ClubID        string
	OperationType *domain.OperationType
	MemberID      *string
	Limit         int
	Offset        int
}

// EntryRepository defines data access for ledger entries. Entries are
// append-only: there is no update or delete.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	List(ctx context.Context, filter EntryFilter) ([]*domain.LedgerEntry, error)
	// ListMemberCredits returns all credit entries for a member in
	// chronological order (operation_at ASC, id ASC).
	ListMemberCredits(ctx context.Context, clubID, memberID string) ([]*domain.LedgerEntry, error)
	// SumFundEntries returns the signed sum of all fund-affecting entries
	// for a club.
	SumFundEntries(ctx context.Context, clubID string) (domain.Amount, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique, time-ordered IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries read-only operations on transient store errors. Mutating
// operations are never auto-retried; they surface ErrConcurrencyConflict to
// the caller instead.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
