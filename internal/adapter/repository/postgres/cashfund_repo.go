package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

// CashFundRepository implements usecase.CashFundRepository.
type CashFundRepository struct {
	pool *pgxpool.Pool
}

// NewCashFundRepository creates a new CashFundRepository.
func NewCashFundRepository(pool *pgxpool.Pool) *CashFundRepository {
	return &CashFundRepository{pool: pool}
}

const insertCashFundSQL = `
INSERT INTO cash_funds (id, club_id, balance, total_credited, total_debited, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// CreateTx creates a club's cash fund inside the caller's transaction. The
// unique constraint on club_id guarantees at most one fund per club.
func (r *CashFundRepository) CreateTx(ctx context.Context, tx usecase.Transaction, fund *domain.CashFund) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertCashFundSQL,
		fund.ID,
		fund.ClubID,
		amountToNumeric(fund.Balance),
		amountToNumeric(fund.TotalCredited),
		amountToNumeric(fund.TotalDebited),
		fund.Version,
		timeToPgTimestamptz(fund.CreatedAt),
		timeToPgTimestamptz(fund.UpdatedAt),
	)

	return err
}

const selectCashFundSQL = `
SELECT id, club_id, balance, total_credited, total_debited, version, created_at, updated_at
FROM cash_funds
WHERE club_id = $1`

// GetByClub retrieves a club's cash fund.
func (r *CashFundRepository) GetByClub(ctx context.Context, clubID string) (*domain.CashFund, error) {
	return scanCashFund(r.pool.QueryRow(ctx, selectCashFundSQL, clubID))
}

// GetByClubForUpdate retrieves a club's cash fund with a FOR UPDATE lock,
// serializing fund operations per club.
func (r *CashFundRepository) GetByClubForUpdate(ctx context.Context, tx usecase.Transaction, clubID string) (*domain.CashFund, error) {
	pgxTx := tx.(*Tx).PgxTx()

	fund, err := scanCashFund(pgxTx.QueryRow(ctx, selectCashFundSQL+` FOR UPDATE`, clubID))
	if err != nil {
		return nil, translateError(err)
	}

	return fund, nil
}

const updateCashFundSQL = `
UPDATE cash_funds
SET balance = $2, total_credited = $3, total_debited = $4, version = $5, updated_at = $6
WHERE club_id = $1`

// UpdateBalances writes a fund's balance and running totals.
func (r *CashFundRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, fund *domain.CashFund, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, updateCashFundSQL,
		fund.ClubID,
		amountToNumeric(fund.Balance),
		amountToNumeric(fund.TotalCredited),
		amountToNumeric(fund.TotalDebited),
		fund.Version,
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCashFundNotFound
	}

	return nil
}

func scanCashFund(row pgx.Row) (*domain.CashFund, error) {
	var (
		fund     domain.CashFund
		balance  pgtype.Numeric
		credited pgtype.Numeric
		debited  pgtype.Numeric
	)

	err := row.Scan(
		&fund.ID,
		&fund.ClubID,
		&balance,
		&credited,
		&debited,
		&fund.Version,
		&fund.CreatedAt,
		&fund.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCashFundNotFound
		}

		return nil, err
	}

	fund.Balance = numericToAmount(balance)
	fund.TotalCredited = numericToAmount(credited)
	fund.TotalDebited = numericToAmount(debited)

	return &fund, nil
}
