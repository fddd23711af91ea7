package usecase

import (
	"context"

	"github.com/clubkit/treasury/internal/domain"
)

// TenantGuard verifies that every entity referenced by an operation belongs
// to the caller's club before anything is mutated. Checks run against
// tx-scoped reads so they hold for the duration of the unit of work, and a
// concurrently deleted row fails the operation. The guard fails closed: a
// store error during verification aborts the operation.
type TenantGuard struct {
	fundRepo   CashFundRepository
	memberRepo MemberRepository
	bankRepo   BankAccountRepository
}

// NewTenantGuard creates a new TenantGuard.
func NewTenantGuard(
	fundRepo CashFundRepository,
	memberRepo MemberRepository,
	bankRepo BankAccountRepository,
) *TenantGuard {
	return &TenantGuard{
		fundRepo:   fundRepo,
		memberRepo: memberRepo,
		bankRepo:   bankRepo,
	}
}

// LockFund verifies the club owns a cash fund and locks its row.
func (g *TenantGuard) LockFund(ctx context.Context, tx Transaction, clubID string) (*domain.CashFund, error) {
	fund, err := g.fundRepo.GetByClubForUpdate(ctx, tx, clubID)
	if err != nil {
		return nil, err
	}

	return fund, nil
}

// LockMember verifies the member belongs to the club and locks its row.
// A member of another club is indistinguishable from a missing one.
func (g *TenantGuard) LockMember(ctx context.Context, tx Transaction, clubID, memberID string) (*domain.Member, error) {
	member, err := g.memberRepo.GetByIDForUpdate(ctx, tx, clubID, memberID)
	if err != nil {
		return nil, err
	}

	return member, nil
}

// CheckBankAccount verifies the bank account belongs to the club, inside the
// caller's transaction.
func (g *TenantGuard) CheckBankAccount(ctx context.Context, tx Transaction, clubID, accountID string) (*domain.BankAccount, error) {
	account, err := g.bankRepo.GetByIDTx(ctx, tx, clubID, accountID)
	if err != nil {
		return nil, err
	}

	return account, nil
}
