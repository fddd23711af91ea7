package usecase

import (
	"context"
	"time"

	"github.com/clubkit/treasury/internal/domain"
)

// MemberUseCase handles member administration. Member balances start at
// zero and are mutated only by the treasury engine.
type MemberUseCase struct {
	memberRepo MemberRepository
	idGen      IDGenerator
}

// NewMemberUseCase creates a new MemberUseCase.
func NewMemberUseCase(memberRepo MemberRepository, idGen IDGenerator) *MemberUseCase {
	return &MemberUseCase{
		memberRepo: memberRepo,
		idGen:      idGen,
	}
}

// CreateMemberInput represents input for creating a member.
type CreateMemberInput struct {
	ClubID string
	Name   string
}

// CreateMember creates a new member with a zero balance.
func (uc *MemberUseCase) CreateMember(ctx context.Context, input CreateMemberInput) (*domain.Member, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	member := &domain.Member{
		ID:        uc.idGen.Generate(),
		ClubID:    input.ClubID,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// GetMember retrieves a member of a club.
func (uc *MemberUseCase) GetMember(ctx context.Context, clubID, id string) (*domain.Member, error) {
	return uc.memberRepo.GetByID(ctx, clubID, id)
}

// ListMembersInput represents input for listing members.
type ListMembersInput struct {
	ClubID string
	Limit  int
	Offset int
}

// ListMembers lists a club's members with pagination.
func (uc *MemberUseCase) ListMembers(ctx context.Context, input ListMembersInput) ([]*domain.Member, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.memberRepo.List(ctx, input.ClubID, input.Limit, input.Offset)
}
