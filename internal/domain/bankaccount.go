package domain

import "time"

// BankAccount is an external account associated with a club, used only as a
// transfer counterparty reference. Rows are managed by administrative flows;
// the ledger core only reads identifiers. Ledger entries referencing a
// deleted account keep the entry and lose the reference (set to null).
type BankAccount struct {
	ID        string
	ClubID    string
	Name      string
	Address   string
	IBAN      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
