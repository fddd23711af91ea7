package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/clubkit/treasury/internal/domain"
)

// ClubUseCase handles club administration. Creating a club also creates its
// single zero-balance cash fund in the same transaction, so the one-fund-
// per-club invariant holds by construction.
type ClubUseCase struct {
	txManager TransactionManager
	clubRepo  ClubRepository
	fundRepo  CashFundRepository
	cache     Cache
	idGen     IDGenerator
}

// NewClubUseCase creates a new ClubUseCase. cache may be nil.
func NewClubUseCase(
	txManager TransactionManager,
	clubRepo ClubRepository,
	fundRepo CashFundRepository,
	cache Cache,
	idGen IDGenerator,
) *ClubUseCase {
	return &ClubUseCase{
		txManager: txManager,
		clubRepo:  clubRepo,
		fundRepo:  fundRepo,
		cache:     cache,
		idGen:     idGen,
	}
}

// CreateClubInput represents input for creating a club.
type CreateClubInput struct {
	Name      string
	Subdomain string
}

// CreateClub creates a club together with its cash fund.
func (uc *ClubUseCase) CreateClub(ctx context.Context, input CreateClubInput) (*domain.Club, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateSubdomain(input.Subdomain); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	club := &domain.Club{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Subdomain: input.Subdomain,
		CreatedAt: now,
		UpdatedAt: now,
	}

	fund := &domain.CashFund{
		ID:        uc.idGen.Generate(),
		ClubID:    club.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.clubRepo.CreateTx(ctx, tx, club); err != nil {
		return nil, err
	}

	if err := uc.fundRepo.CreateTx(ctx, tx, fund); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return club, nil
}

// GetClub retrieves a club by ID.
func (uc *ClubUseCase) GetClub(ctx context.Context, id string) (*domain.Club, error) {
	return uc.clubRepo.GetByID(ctx, id)
}

// ResolveSubdomain resolves a club by its subdomain, with a short-lived
// cache in front of the store. Only the identity row is cached, never
// balances.
func (uc *ClubUseCase) ResolveSubdomain(ctx context.Context, subdomain string) (*domain.Club, error) {
	cacheKey := "club:subdomain:" + subdomain

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, cacheKey); err == nil && data != nil {
			var club domain.Club
			if err := json.Unmarshal(data, &club); err == nil {
				return &club, nil
			}
		}
	}

	club, err := uc.clubRepo.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(club); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, data, ClubCacheTTL)
		}
	}

	return club, nil
}

// ListClubsInput represents input for listing clubs.
type ListClubsInput struct {
	Limit  int
	Offset int
}

// ListClubs lists clubs with pagination.
func (uc *ClubUseCase) ListClubs(ctx context.Context, input ListClubsInput) ([]*domain.Club, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.clubRepo.List(ctx, input.Limit, input.Offset)
}
