package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

// ClubRepository implements usecase.ClubRepository.
type ClubRepository struct {
	pool *pgxpool.Pool
}

// NewClubRepository creates a new ClubRepository.
func NewClubRepository(pool *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

const insertClubSQL = `
INSERT INTO clubs (id, name, subdomain, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`

// CreateTx creates a new club inside the caller's transaction.
func (r *ClubRepository) CreateTx(ctx context.Context, tx usecase.Transaction, club *domain.Club) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, insertClubSQL,
		club.ID,
		club.Name,
		club.Subdomain,
		timeToPgTimestamptz(club.CreatedAt),
		timeToPgTimestamptz(club.UpdatedAt),
	)

	return err
}

const selectClubSQL = `
SELECT id, name, subdomain, created_at, updated_at
FROM clubs`

// GetByID retrieves a club by ID.
func (r *ClubRepository) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	row := r.pool.QueryRow(ctx, selectClubSQL+` WHERE id = $1`, id)

	return scanClub(row)
}

// GetBySubdomain retrieves a club by subdomain.
func (r *ClubRepository) GetBySubdomain(ctx context.Context, subdomain string) (*domain.Club, error) {
	row := r.pool.QueryRow(ctx, selectClubSQL+` WHERE subdomain = $1`, subdomain)

	return scanClub(row)
}

// List lists clubs ordered by creation time.
func (r *ClubRepository) List(ctx context.Context, limit, offset int) ([]*domain.Club, error) {
	rows, err := r.pool.Query(ctx, selectClubSQL+` ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := make([]*domain.Club, 0, limit)

	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}

	return clubs, rows.Err()
}

func scanClub(row pgx.Row) (*domain.Club, error) {
	var club domain.Club

	err := row.Scan(&club.ID, &club.Name, &club.Subdomain, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClubNotFound
		}

		return nil, err
	}

	return &club, nil
}
