package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository. The ledger_entries
// table is append-only; this repository has no update or delete.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const insertEntrySQL = `
INSERT INTO ledger_entries (id, club_id, acting_user_id, member_id, bank_account_id, operation_type, amount, description, operation_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Create appends a ledger entry inside the caller's transaction.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertEntrySQL,
		entry.ID,
		entry.ClubID,
		entry.ActingUserID,
		entry.MemberID,
		entry.BankAccountID,
		string(entry.OperationType),
		amountToNumeric(entry.Amount),
		entry.Description,
		timeToPgTimestamptz(entry.OperationAt),
		timeToPgTimestamptz(entry.CreatedAt),
	)

	return err
}

const selectEntrySQL = `
SELECT id, club_id, acting_user_id, member_id, bank_account_id, operation_type, amount, description, operation_at, created_at
FROM ledger_entries`

// List lists a club's entries, newest operation first. Entry IDs are
// time-ordered, so they break ties between entries sharing an operation
// timestamp deterministically.
func (r *EntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.LedgerEntry, error) {
	sql := selectEntrySQL + ` WHERE club_id = $1`
	args := []any{filter.ClubID}

	if filter.OperationType != nil {
		args = append(args, string(*filter.OperationType))
		sql += ` AND operation_type = $` + strconv.Itoa(len(args))
	}

	if filter.MemberID != nil {
		args = append(args, *filter.MemberID)
		sql += ` AND member_id = $` + strconv.Itoa(len(args))
	}

	args = append(args, int32(filter.Limit))
	sql += ` ORDER BY operation_at DESC, id ASC LIMIT $` + strconv.Itoa(len(args))

	args = append(args, int32(filter.Offset))
	sql += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows, filter.Limit)
}

const listMemberCreditsSQL = selectEntrySQL + `
WHERE club_id = $1 AND member_id = $2 AND operation_type = $3
ORDER BY operation_at ASC, id ASC`

// ListMemberCredits returns a member's credit entries in chronological
// order, for running-total statements.
func (r *EntryRepository) ListMemberCredits(ctx context.Context, clubID, memberID string) ([]*domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, listMemberCreditsSQL, clubID, memberID, string(domain.OperationCredit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows, 0)
}

const sumFundEntriesSQL = `
SELECT COALESCE(SUM(amount), 0)
FROM ledger_entries
WHERE club_id = $1 AND operation_type IN ($2, $3)`

// SumFundEntries returns the signed sum of a club's fund-affecting entries.
func (r *EntryRepository) SumFundEntries(ctx context.Context, clubID string) (domain.Amount, error) {
	var sum pgtype.Numeric

	err := r.pool.QueryRow(ctx, sumFundEntriesSQL,
		clubID,
		string(domain.OperationBankToCash),
		string(domain.OperationCashToBank),
	).Scan(&sum)
	if err != nil {
		return domain.ZeroAmount, err
	}

	return numericToAmount(sum), nil
}

func collectEntries(rows pgx.Rows, capacity int) ([]*domain.LedgerEntry, error) {
	entries := make([]*domain.LedgerEntry, 0, capacity)

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		entry         domain.LedgerEntry
		operationType string
		amount        pgtype.Numeric
	)

	err := row.Scan(
		&entry.ID,
		&entry.ClubID,
		&entry.ActingUserID,
		&entry.MemberID,
		&entry.BankAccountID,
		&operationType,
		&amount,
		&entry.Description,
		&entry.OperationAt,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.OperationType = domain.OperationType(operationType)
	entry.Amount = numericToAmount(amount)

	return &entry, nil
}
