package domain

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	if err := ValidateName("Chess Club Treasury"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateName("   "); err == nil {
		t.Error("expected error for blank name")
	}

	if err := ValidateName(strings.Repeat("x", MaxNameLength+1)); err == nil {
		t.Error("expected error for overlong name")
	}
}

func TestValidateSubdomain(t *testing.T) {
	tests := []struct {
		subdomain   string
		expectError bool
	}{
		{"chessclub", false},
		{"chess-club", false},
		{"c1", false},
		{"", true},
		{"-leading", true},
		{"trailing-", true},
		{"UPPER", true},
		{"has.dot", true},
		{strings.Repeat("a", MaxSubdomainLength + 1), true},
	}

	for _, tt := range tests {
		err := ValidateSubdomain(tt.subdomain)

		if tt.expectError && err == nil {
			t.Errorf("expected error for %q", tt.subdomain)
		}

		if !tt.expectError && err != nil {
			t.Errorf("unexpected error for %q: %v", tt.subdomain, err)
		}
	}
}

func TestValidateIBAN(t *testing.T) {
	tests := []struct {
		name        string
		iban        string
		expectError bool
	}{
		{"german iban", "DE89370400440532013000", false},
		{"with spaces", "DE89 3704 0044 0532 0130 00", false},
		{"british iban", "GB82WEST12345698765432", false},
		{"bad checksum", "DE89370400440532013001", true},
		{"too short", "DE8937", true},
		{"not an iban", "hello world", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIBAN(tt.iban)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription("membership fee March"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateDescription(strings.Repeat("x", MaxDescriptionLength+1)); err == nil {
		t.Error("expected error for overlong description")
	}
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Errorf("expected defaults (50, 0), got (%d, %d)", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("expected limit capped at 1000, got %d", limit)
	}
}

func TestOperationType(t *testing.T) {
	for _, op := range []OperationType{OperationCredit, OperationBankToCash, OperationCashToBank} {
		if !op.Valid() {
			t.Errorf("expected %s to be valid", op)
		}
	}

	if OperationType("withdrawal").Valid() {
		t.Error("expected unknown operation type to be invalid")
	}

	if OperationCredit.AffectsFund() {
		t.Error("credit entries must not affect the fund")
	}

	if !OperationBankToCash.AffectsFund() || !OperationCashToBank.AffectsFund() {
		t.Error("transfer entries must affect the fund")
	}
}
