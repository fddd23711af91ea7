package usecase

import (
	"context"
	"time"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/infrastructure/metrics"
)

// TreasuryUseCase is the transactional core of the club treasury: it
// validates and applies credit and transfer operations, updates balances and
// appends one audit entry per operation, all inside a single store
// transaction scoped to one club.
type TreasuryUseCase struct {
	txManager  TransactionManager
	guard      *TenantGuard
	fundRepo   CashFundRepository
	memberRepo MemberRepository
	entryRepo  EntryRepository
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewTreasuryUseCase creates a new TreasuryUseCase. metrics may be nil.
func NewTreasuryUseCase(
	txManager TransactionManager,
	guard *TenantGuard,
	fundRepo CashFundRepository,
	memberRepo MemberRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *TreasuryUseCase {
	return &TreasuryUseCase{
		txManager:  txManager,
		guard:      guard,
		fundRepo:   fundRepo,
		memberRepo: memberRepo,
		entryRepo:  entryRepo,
		idGen:      idGen,
		metrics:    m,
	}
}

// CreditMemberInput represents input for crediting a member balance.
type CreditMemberInput struct {
	Principal   domain.Principal
	MemberID    string
	Amount      domain.Amount
	Description string
	// OperationAt may be backdated for corrections; defaults to now.
	OperationAt *time.Time
}

// CreditMemberResult is the outcome of a successful credit.
type CreditMemberResult struct {
	EntryID       string
	MemberBalance domain.Amount
}

// CreditMember adjusts a member's personal balance by a signed, non-zero
// amount and appends the audit entry, atomically. The member row is locked
// for the duration, so concurrent credits to one member never interleave;
// credits to different members of the same club proceed in parallel.
func (uc *TreasuryUseCase) CreditMember(ctx context.Context, input CreditMemberInput) (*CreditMemberResult, error) {
	if !input.Principal.CanOperateTreasury() {
		return nil, domain.ErrForbidden
	}

	if input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	clubID := input.Principal.ClubID

	member, err := uc.guard.LockMember(ctx, tx, clubID, input.MemberID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newBalance := member.ApplyCredit(input.Amount)

	err = uc.memberRepo.UpdateBalance(ctx, tx, clubID, member.ID, newBalance, member.Version+1, now)
	if err != nil {
		return nil, err
	}

	entry := &domain.LedgerEntry{
		ID:            uc.idGen.Generate(),
		ClubID:        clubID,
		ActingUserID:  input.Principal.UserID,
		MemberID:      &member.ID,
		OperationType: domain.OperationCredit,
		Amount:        input.Amount,
		Description:   input.Description,
		OperationAt:   operationAt(input.OperationAt, now),
		CreatedAt:     now,
	}

	err = uc.entryRepo.Create(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CreditsApplied.Inc()
		uc.metrics.OperationDuration.Observe(time.Since(now).Seconds())
	}

	return &CreditMemberResult{
		EntryID:       entry.ID,
		MemberBalance: newBalance,
	}, nil
}

// TransferInput represents input for a fund/bank transfer operation.
type TransferInput struct {
	Principal     domain.Principal
	BankAccountID string
	Amount        domain.Amount
	Description   string
	OperationAt   *time.Time
}

// TransferResult is the outcome of a successful transfer.
type TransferResult struct {
	EntryID     string
	FundBalance domain.Amount
}

// TransferBankToCash moves a strictly positive amount from a club bank
// account into the cash fund.
func (uc *TreasuryUseCase) TransferBankToCash(ctx context.Context, input TransferInput) (*TransferResult, error) {
	return uc.transferFund(ctx, input, domain.OperationBankToCash)
}

// TransferCashToBank moves a strictly positive amount from the cash fund to
// a club bank account. The fund may not go negative.
func (uc *TreasuryUseCase) TransferCashToBank(ctx context.Context, input TransferInput) (*TransferResult, error) {
	return uc.transferFund(ctx, input, domain.OperationCashToBank)
}

func (uc *TreasuryUseCase) transferFund(ctx context.Context, input TransferInput, opType domain.OperationType) (*TransferResult, error) {
	if !input.Principal.CanOperateTreasury() {
		return nil, domain.ErrForbidden
	}

	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	clubID := input.Principal.ClubID

	// Locking the fund row serializes all fund operations for this club.
	fund, err := uc.guard.LockFund(ctx, tx, clubID)
	if err != nil {
		return nil, err
	}

	account, err := uc.guard.CheckBankAccount(ctx, tx, clubID, input.BankAccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryAmount := input.Amount

	switch opType {
	case domain.OperationBankToCash:
		fund.Balance, fund.TotalCredited = fund.ApplyDeposit(input.Amount)
	case domain.OperationCashToBank:
		if err := fund.ValidateWithdraw(input.Amount); err != nil {
			if uc.metrics != nil {
				uc.metrics.TransfersRejected.Inc()
			}
			return nil, err
		}

		fund.Balance, fund.TotalDebited = fund.ApplyWithdraw(input.Amount)
		entryAmount = input.Amount.Neg()
	}

	fund.Version++

	err = uc.fundRepo.UpdateBalances(ctx, tx, fund, now)
	if err != nil {
		return nil, err
	}

	entry := &domain.LedgerEntry{
		ID:            uc.idGen.Generate(),
		ClubID:        clubID,
		ActingUserID:  input.Principal.UserID,
		BankAccountID: &account.ID,
		OperationType: opType,
		Amount:        entryAmount,
		Description:   input.Description,
		OperationAt:   operationAt(input.OperationAt, now),
		CreatedAt:     now,
	}

	err = uc.entryRepo.Create(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersApplied.Inc()
		uc.metrics.OperationDuration.Observe(time.Since(now).Seconds())
	}

	return &TransferResult{
		EntryID:     entry.ID,
		FundBalance: fund.Balance,
	}, nil
}

// FundSnapshot is the reporting view of a club's cash fund.
type FundSnapshot struct {
	Balance       domain.Amount
	TotalCredited domain.Amount
	TotalDebited  domain.Amount
}

// GetFundSnapshot returns the current fund balances for a club.
func (uc *TreasuryUseCase) GetFundSnapshot(ctx context.Context, clubID string) (*FundSnapshot, error) {
	fund, err := uc.fundRepo.GetByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	return &FundSnapshot{
		Balance:       fund.Balance,
		TotalCredited: fund.TotalCredited,
		TotalDebited:  fund.TotalDebited,
	}, nil
}

// GetMemberBalance returns the stored balance of a club member.
func (uc *TreasuryUseCase) GetMemberBalance(ctx context.Context, clubID, memberID string) (domain.Amount, error) {
	member, err := uc.memberRepo.GetByID(ctx, clubID, memberID)
	if err != nil {
		return domain.ZeroAmount, err
	}

	return member.Balance, nil
}

func operationAt(requested *time.Time, now time.Time) time.Time {
	if requested != nil {
		return requested.UTC()
	}

	return now
}
