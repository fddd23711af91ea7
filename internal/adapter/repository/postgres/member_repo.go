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

// MemberRepository implements usecase.MemberRepository. Every query is
// scoped by club_id, so a member of another club behaves like a missing row.
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

const insertMemberSQL = `
INSERT INTO members (id, club_id, name, balance, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Create creates a new member.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	_, err := r.pool.Exec(ctx, insertMemberSQL,
		member.ID,
		member.ClubID,
		member.Name,
		amountToNumeric(member.Balance),
		member.Version,
		timeToPgTimestamptz(member.CreatedAt),
		timeToPgTimestamptz(member.UpdatedAt),
	)

	return err
}

const selectMemberSQL = `
SELECT id, club_id, name, balance, version, created_at, updated_at
FROM members
WHERE club_id = $1 AND id = $2`

// GetByID retrieves a member of a club.
func (r *MemberRepository) GetByID(ctx context.Context, clubID, id string) (*domain.Member, error) {
	return scanMember(r.pool.QueryRow(ctx, selectMemberSQL, clubID, id))
}

// GetByIDForUpdate retrieves a member with a FOR UPDATE lock. Credits to the
// same member serialize; members of one club lock independently.
func (r *MemberRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, clubID, id string) (*domain.Member, error) {
	pgxTx := tx.(*Tx).PgxTx()

	member, err := scanMember(pgxTx.QueryRow(ctx, selectMemberSQL+` FOR UPDATE`, clubID, id))
	if err != nil {
		return nil, translateError(err)
	}

	return member, nil
}

const updateMemberBalanceSQL = `
UPDATE members
SET balance = $3, version = $4, updated_at = $5
WHERE club_id = $1 AND id = $2`

// UpdateBalance writes a member's balance and version.
func (r *MemberRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, clubID, id string, balance domain.Amount, version int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, updateMemberBalanceSQL,
		clubID,
		id,
		amountToNumeric(balance),
		version,
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

const listMembersSQL = `
SELECT id, club_id, name, balance, version, created_at, updated_at
FROM members
WHERE club_id = $1
ORDER BY name, id
LIMIT $2 OFFSET $3`

// List lists a club's members ordered by name.
func (r *MemberRepository) List(ctx context.Context, clubID string, limit, offset int) ([]*domain.Member, error) {
	rows, err := r.pool.Query(ctx, listMembersSQL, clubID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.Member, 0, limit)

	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var (
		member  domain.Member
		balance pgtype.Numeric
	)

	err := row.Scan(
		&member.ID,
		&member.ClubID,
		&member.Name,
		&balance,
		&member.Version,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}

		return nil, err
	}

	member.Balance = numericToAmount(balance)

	return &member, nil
}
