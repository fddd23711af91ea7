package domain

import "errors"

var (
	// Amount and operation errors
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("cash fund may not go negative")

	// Tenant scoping errors
	ErrClubNotFound        = errors.New("club not found")
	ErrCashFundNotFound    = errors.New("cash fund not found for club")
	ErrMemberNotFound      = errors.New("member not found in club")
	ErrBankAccountNotFound = errors.New("bank account not found in club")

	// Consistency and concurrency errors
	ErrLedgerInconsistency = errors.New("ledger entries diverge from stored balance")
	ErrConcurrencyConflict = errors.New("operation conflicted with a concurrent transaction")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrForbidden    = errors.New("insufficient role for operation")
)
