package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

func TestCreditDeniedAcrossClubs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	env := newTreasuryEnv(t)
	env.db.TruncateAll(ctx)

	clubA := env.db.CreateTestClub(ctx, "Club A", "club-a")
	clubB := env.db.CreateTestClub(ctx, "Club B", "club-b")
	memberB := env.db.CreateTestMember(ctx, clubB.ID, "Bela")

	// A treasurer of club A must not be able to touch club B's member.
	_, err := env.treasuryUC.CreditMember(ctx, usecase.CreditMemberInput{
		Principal: treasurer(clubA.ID),
		MemberID:  memberB.ID,
		Amount:    domain.MustParseAmount("10.00"),
	})
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}

	balance, err := env.treasuryUC.GetMemberBalance(ctx, clubB.ID, memberB.ID)
	if err != nil {
		t.Fatalf("failed to read balance: %v", err)
	}

	if !balance.IsZero() {
		t.Fatalf("expected balance untouched at 0.00, got %s", balance)
	}
}

func TestTransferDeniedForForeignBankAccount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	env := newTreasuryEnv(t)
	env.db.TruncateAll(ctx)

	clubA := env.db.CreateTestClub(ctx, "Club A", "club-a")
	clubB := env.db.CreateTestClub(ctx, "Club B", "club-b")
	accountB := env.db.CreateTestBankAccount(ctx, clubB.ID, "Main", "DE89370400440532013000")

	_, err := env.treasuryUC.TransferBankToCash(ctx, usecase.TransferInput{
		Principal:     treasurer(clubA.ID),
		BankAccountID: accountB.ID,
		Amount:        domain.MustParseAmount("10.00"),
	})
	if !errors.Is(err, domain.ErrBankAccountNotFound) {
		t.Fatalf("expected ErrBankAccountNotFound, got %v", err)
	}
}

func TestEntryListingIsClubScoped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	env := newTreasuryEnv(t)
	env.db.TruncateAll(ctx)

	clubA := env.db.CreateTestClub(ctx, "Club A", "club-a")
	clubB := env.db.CreateTestClub(ctx, "Club B", "club-b")
	memberA := env.db.CreateTestMember(ctx, clubA.ID, "Anna")
	memberB := env.db.CreateTestMember(ctx, clubB.ID, "Bela")

	for club, member := range map[*domain.Club]*domain.Member{clubA: memberA, clubB: memberB} {
		_, err := env.treasuryUC.CreditMember(ctx, usecase.CreditMemberInput{
			Principal: treasurer(club.ID),
			MemberID:  member.ID,
			Amount:    domain.MustParseAmount("5.00"),
		})
		if err != nil {
			t.Fatalf("credit in %s failed: %v", club.Subdomain, err)
		}
	}

	entries, err := env.statementUC.ListEntries(ctx, usecase.ListEntriesInput{ClubID: clubA.ID})
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry for club A, got %d", len(entries))
	}

	if entries[0].ClubID != clubA.ID {
		t.Fatalf("expected entry scoped to club A, got club %s", entries[0].ClubID)
	}
}
