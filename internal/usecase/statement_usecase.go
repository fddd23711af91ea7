package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clubkit/treasury/internal/domain"
)

// StatementUseCase is the read side of the ledger: paginated history and
// per-member statements. It never mutates state; divergence between derived
// and stored balances is reported, not healed.
type StatementUseCase struct {
	entryRepo  EntryRepository
	memberRepo MemberRepository
	fundRepo   CashFundRepository
	retrier    Retrier
	logger     zerolog.Logger
}

// NewStatementUseCase creates a new StatementUseCase. retrier may be nil.
func NewStatementUseCase(
	entryRepo EntryRepository,
	memberRepo MemberRepository,
	fundRepo CashFundRepository,
	retrier Retrier,
	logger zerolog.Logger,
) *StatementUseCase {
	return &StatementUseCase{
		entryRepo:  entryRepo,
		memberRepo: memberRepo,
		fundRepo:   fundRepo,
		retrier:    retrier,
		logger:     logger,
	}
}

// ListEntriesInput represents input for listing ledger entries.
type ListEntriesInput struct {
	ClubID        string
	OperationType *domain.OperationType
	MemberID      *string
	Limit         int
	Offset        int
}

// ListEntries lists a club's ledger entries, newest operation first with the
// entry ID as a stable tie-break.
func (uc *StatementUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.LedgerEntry, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	if input.Offset < 0 {
		input.Offset = 0
	}

	var entries []*domain.LedgerEntry

	err := uc.retry(ctx, func() error {
		var err error
		entries, err = uc.entryRepo.List(ctx, EntryFilter{
			ClubID:        input.ClubID,
			OperationType: input.OperationType,
			MemberID:      input.MemberID,
			Limit:         input.Limit,
			Offset:        input.Offset,
		})

		return err
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// StatementLine is one credit entry with the running total after it.
type StatementLine struct {
	Entry          *domain.LedgerEntry
	RunningBalance domain.Amount
}

// MemberStatement is a member's full credit history with a consistency
// check against the stored balance.
type MemberStatement struct {
	MemberID        string
	Lines           []StatementLine
	StoredBalance   domain.Amount
	ComputedBalance domain.Amount
	Consistent      bool
}

// GetMemberStatement returns all credit entries for a member in
// chronological order with a running total recomputed at read time. If the
// recomputed total diverges from the stored balance the statement is flagged
// inconsistent and a warning is logged; the stored balance is never
// corrected here.
func (uc *StatementUseCase) GetMemberStatement(ctx context.Context, clubID, memberID string) (*MemberStatement, error) {
	member, err := uc.memberRepo.GetByID(ctx, clubID, memberID)
	if err != nil {
		return nil, err
	}

	var entries []*domain.LedgerEntry

	err = uc.retry(ctx, func() error {
		var err error
		entries, err = uc.entryRepo.ListMemberCredits(ctx, clubID, memberID)

		return err
	})
	if err != nil {
		return nil, err
	}

	running := domain.ZeroAmount
	lines := make([]StatementLine, 0, len(entries))

	for _, entry := range entries {
		running = running.Add(entry.Amount)
		lines = append(lines, StatementLine{
			Entry:          entry,
			RunningBalance: running,
		})
	}

	consistent := running.Equal(member.Balance)
	if !consistent {
		uc.logger.Warn().
			Str("club_id", clubID).
			Str("member_id", memberID).
			Str("stored_balance", member.Balance.String()).
			Str("computed_balance", running.String()).
			Msg("member balance diverges from ledger entries")
	}

	return &MemberStatement{
		MemberID:        memberID,
		Lines:           lines,
		StoredBalance:   member.Balance,
		ComputedBalance: running,
		Consistent:      consistent,
	}, nil
}

// FundConsistencyReport compares a club's stored fund balance with the
// signed sum of its fund-affecting ledger entries.
type FundConsistencyReport struct {
	ClubID          string
	StoredBalance   domain.Amount
	ComputedBalance domain.Amount
	Difference      domain.Amount
	Consistent      bool
	CheckedAt       time.Time
}

// CheckFundConsistency recomputes the fund balance from the ledger and
// compares it with the stored one. Divergence is reported with a warning.
func (uc *StatementUseCase) CheckFundConsistency(ctx context.Context, clubID string) (*FundConsistencyReport, error) {
	fund, err := uc.fundRepo.GetByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	var computed domain.Amount

	err = uc.retry(ctx, func() error {
		var err error
		computed, err = uc.entryRepo.SumFundEntries(ctx, clubID)

		return err
	})
	if err != nil {
		return nil, err
	}

	consistent := computed.Equal(fund.Balance) && fund.Consistent()
	if !consistent {
		uc.logger.Warn().
			Str("club_id", clubID).
			Str("stored_balance", fund.Balance.String()).
			Str("computed_balance", computed.String()).
			Msg("cash fund balance diverges from ledger entries")
	}

	return &FundConsistencyReport{
		ClubID:          clubID,
		StoredBalance:   fund.Balance,
		ComputedBalance: computed,
		Difference:      fund.Balance.Sub(computed),
		Consistent:      consistent,
		CheckedAt:       time.Now().UTC(),
	}, nil
}

func (uc *StatementUseCase) retry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}

	return uc.retrier.Retry(ctx, operation)
}
