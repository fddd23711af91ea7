package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
	"github.com/clubkit/treasury/internal/usecase/mocks"
)

func TestMemberUseCase_CreateMember(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	uc := usecase.NewMemberUseCase(memberRepo, mocks.NewMockIDGenerator())

	member, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{
		ClubID: "club-1",
		Name:   "Alex",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !member.Balance.IsZero() {
		t.Errorf("new member must start at zero balance, got %s", member.Balance)
	}

	got, err := uc.GetMember(context.Background(), "club-1", member.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name != "Alex" {
		t.Errorf("expected Alex, got %s", got.Name)
	}

	if _, err := uc.CreateMember(context.Background(), usecase.CreateMemberInput{ClubID: "club-1"}); !errors.Is(err, domain.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestMemberUseCase_GetMemberScopedByClub(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Seed(&domain.Member{ID: "mem-1", ClubID: "club-1", Name: "Alex"})

	uc := usecase.NewMemberUseCase(memberRepo, mocks.NewMockIDGenerator())

	if _, err := uc.GetMember(context.Background(), "club-2", "mem-1"); !errors.Is(err, domain.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound for foreign club, got %v", err)
	}
}

func TestMemberUseCase_ListMembers(t *testing.T) {
	memberRepo := mocks.NewMockMemberRepository()
	memberRepo.Seed(&domain.Member{ID: "mem-1", ClubID: "club-1", Name: "Alex"})
	memberRepo.Seed(&domain.Member{ID: "mem-2", ClubID: "club-1", Name: "Sam"})
	memberRepo.Seed(&domain.Member{ID: "mem-3", ClubID: "club-2", Name: "Kim"})

	uc := usecase.NewMemberUseCase(memberRepo, mocks.NewMockIDGenerator())

	members, err := uc.ListMembers(context.Background(), usecase.ListMembersInput{ClubID: "club-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(members) != 2 {
		t.Errorf("expected 2 members for club-1, got %d", len(members))
	}
}
