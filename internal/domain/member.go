package domain

import "time"

// Member is a club member with a personal balance representing money owed
// to or by the club. The balance is mutated only through credit operations
// recorded in the ledger.
type Member struct {
	ID        string
	ClubID    string
	Name      string
	Balance   Amount
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyCredit returns the member balance after crediting amount. The amount
// may be negative (a correction or a charge).
func (m *Member) ApplyCredit(amount Amount) Amount {
	return m.Balance.Add(amount)
}
