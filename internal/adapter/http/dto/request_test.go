package dto

import (
	"testing"
	"time"

	"github.com/clubkit/treasury/internal/domain"
	"github.com/clubkit/treasury/internal/usecase"
)

func TestCreateClubRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateClubRequest{Name: "Chess Club", Subdomain: "chess"}

	got := req.ToUseCaseInput()
	want := usecase.CreateClubInput{Name: "Chess Club", Subdomain: "chess"}

	if got != want {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}

func TestCreditMemberRequest_ToUseCaseInput(t *testing.T) {
	now := time.Now()
	principal := domain.Principal{UserID: "user-1", ClubID: "club-1", Role: domain.RoleTreasurer}

	tests := []struct {
		name        string
		request     *CreditMemberRequest
		wantAmount  string
		expectError bool
	}{
		{
			name: "valid amount",
			request: &CreditMemberRequest{
				Amount:      "12.34",
				Description: "tournament fee",
				OperationAt: &now,
			},
			wantAmount: "12.34",
		},
		{
			name:       "negative amount",
			request:    &CreditMemberRequest{Amount: "-5.00"},
			wantAmount: "-5.00",
		},
		{
			name:        "not a number",
			request:     &CreditMemberRequest{Amount: "bad"},
			expectError: true,
		},
		{
			name:        "too many decimals",
			request:     &CreditMemberRequest{Amount: "1.999"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput(principal, "mem-1")

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Principal != principal || got.MemberID != "mem-1" {
				t.Fatalf("unexpected scoping: %+v", got)
			}

			if !got.Amount.Equal(domain.MustParseAmount(tt.wantAmount)) {
				t.Fatalf("amount = %s, want %s", got.Amount, tt.wantAmount)
			}
		})
	}
}

func TestTransferRequest_ToUseCaseInput(t *testing.T) {
	principal := domain.Principal{UserID: "user-1", ClubID: "club-1", Role: domain.RoleTreasurer}

	req := &TransferRequest{
		BankAccountID: "bank-1",
		Amount:        "100.00",
		Description:   "cash deposit",
	}

	got, err := req.ToUseCaseInput(principal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.BankAccountID != "bank-1" || !got.Amount.Equal(domain.MustParseAmount("100.00")) {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}

	if _, err := (&TransferRequest{Amount: "1.2.3"}).ToUseCaseInput(principal); err == nil {
		t.Fatalf("expected error for malformed amount")
	}
}
