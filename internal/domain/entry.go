package domain

import "time"

// OperationType identifies which balance a ledger entry affects.
type OperationType string

const (
	// OperationCredit adjusts a member's personal balance.
	OperationCredit OperationType = "credit"
	// OperationBankToCash moves money from a bank account into the cash fund.
	OperationBankToCash OperationType = "bank_to_cash"
	// OperationCashToBank moves money from the cash fund to a bank account.
	OperationCashToBank OperationType = "cash_to_bank"
)

// Valid reports whether the operation type is a known one.
func (t OperationType) Valid() bool {
	switch t {
	case OperationCredit, OperationBankToCash, OperationCashToBank:
		return true
	}

	return false
}

// AffectsFund reports whether entries of this type contribute to the cash
// fund balance.
func (t OperationType) AffectsFund() bool {
	return t == OperationBankToCash || t == OperationCashToBank
}

// LedgerEntry is one immutable audit record of a balance-affecting
// operation. Entries are append-only: corrections are made by inserting a
// compensating entry, never by editing history.
type LedgerEntry struct {
	ID            string
	ClubID        string
	ActingUserID  string
	MemberID      *string
	BankAccountID *string
	OperationType OperationType
	// Amount is signed: positive increases the fund or member balance,
	// negative decreases it.
	Amount      Amount
	Description string
	// OperationAt is supplied by the caller and may be backdated for
	// corrections. CreatedAt always reflects true commit order.
	OperationAt time.Time
	CreatedAt   time.Time
}
