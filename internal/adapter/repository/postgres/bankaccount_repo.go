package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

// BankAccountRepository implements usecase.BankAccountRepository.
type BankAccountRepository struct {
	pool *pgxpool.Pool
}

// NewBankAccountRepository creates a new BankAccountRepository.
func NewBankAccountRepository(pool *pgxpool.Pool) *BankAccountRepository {
	return &BankAccountRepository{pool: pool}
}

const insertBankAccountSQL = `
INSERT INTO bank_accounts (id, club_id, name, address, iban, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create creates a new bank account.
func (r *BankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	_, err := r.pool.Exec(ctx, insertBankAccountSQL,
		account.ID,
		account.ClubID,
		account.Name,
		account.Address,
		account.IBAN,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

const selectBankAccountSQL = `
SELECT id, club_id, name, address, iban, created_at, updated_at
FROM bank_accounts
WHERE club_id = $1 AND id = $2`

// GetByID retrieves a bank account of a club.
func (r *BankAccountRepository) GetByID(ctx context.Context, clubID, id string) (*domain.BankAccount, error) {
	return scanBankAccount(r.pool.QueryRow(ctx, selectBankAccountSQL, clubID, id))
}

// GetByIDTx retrieves a bank account inside the caller's transaction, so a
// concurrent delete is seen before the operation commits.
func (r *BankAccountRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, clubID, id string) (*domain.BankAccount, error) {
	pgxTx := tx.(*Tx).PgxTx()

	return scanBankAccount(pgxTx.QueryRow(ctx, selectBankAccountSQL, clubID, id))
}

const listBankAccountsSQL = `
SELECT id, club_id, name, address, iban, created_at, updated_at
FROM bank_accounts
WHERE club_id = $1
ORDER BY name, id
LIMIT $2 OFFSET $3`

// List lists a club's bank accounts ordered by name.
func (r *BankAccountRepository) List(ctx context.Context, clubID string, limit, offset int) ([]*domain.BankAccount, error) {
	rows, err := r.pool.Query(ctx, listBankAccountsSQL, clubID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.BankAccount, 0, limit)

	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// Delete removes a bank account. Ledger entries that referenced it keep the
// audit record; the foreign key sets their reference to null.
func (r *BankAccountRepository) Delete(ctx context.Context, clubID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE club_id = $1 AND id = $2`, clubID, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrBankAccountNotFound
	}

	return nil
}

func scanBankAccount(row pgx.Row) (*domain.BankAccount, error) {
	var account domain.BankAccount

	err := row.Scan(
		&account.ID,
		&account.ClubID,
		&account.Name,
		&account.Address,
		&account.IBAN,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankAccountNotFound
		}

		return nil, err
	}

	return &account, nil
}
