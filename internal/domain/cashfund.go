package domain

import "time"

// CashFund is the club's on-hand money balance. Exactly one exists per club,
// created with the club and never deleted while the club exists.
type CashFund struct {
	ID            string
	ClubID        string
	Balance       Amount
	TotalCredited Amount
	TotalDebited  Amount
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateWithdraw checks that withdrawing amount would not drive the fund
// negative.
func (f *CashFund) ValidateWithdraw(amount Amount) error {
	if f.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}

	return nil
}

// ApplyDeposit returns the fund balances after depositing amount.
func (f *CashFund) ApplyDeposit(amount Amount) (balance, totalCredited Amount) {
	return f.Balance.Add(amount), f.TotalCredited.Add(amount)
}

// ApplyWithdraw returns the fund balances after withdrawing amount.
func (f *CashFund) ApplyWithdraw(amount Amount) (balance, totalDebited Amount) {
	return f.Balance.Sub(amount), f.TotalDebited.Add(amount)
}

// Consistent reports whether balance == totalCredited - totalDebited.
func (f *CashFund) Consistent() bool {
	return f.Balance.Equal(f.TotalCredited.Sub(f.TotalDebited))
}
