package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// AmountScale is the fixed number of fractional digits for monetary values.
const AmountScale = 2

// Amount is an exact fixed-point monetary value with two fractional digits.
// The zero value is 0.00. Arithmetic is only defined between Amounts; there
// is no implicit conversion from floats or strings, so a stored balance can
// never be concatenated with a numeric input by accident.
type Amount struct {
	d decimal.Decimal
}

// ZeroAmount is the 0.00 amount.
var ZeroAmount = Amount{}

// NewAmountFromCents creates an Amount from an integer number of cents.
func NewAmountFromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -AmountScale)}
}

// ParseAmount parses a decimal-formatted string into an Amount.
// It fails with ErrInvalidAmount if the string is not a finite decimal or
// carries more than two fractional digits of precision.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, s)
	}

	return AmountFromDecimal(d)
}

// AmountFromDecimal converts an arbitrary decimal into an Amount.
// Values that are not exactly representable at two fractional digits are
// rejected rather than rounded.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if !d.Equal(d.Truncate(AmountScale)) {
		return Amount{}, fmt.Errorf("%w: %s has more than %d fractional digits", ErrInvalidAmount, d, AmountScale)
	}

	return Amount{d: d}, nil
}

// MustParseAmount is ParseAmount that panics on error. For fixtures and tests.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Abs returns the absolute value of a.
func (a Amount) Abs() Amount {
	return Amount{d: a.d.Abs()}
}

// Cmp compares two amounts: -1 if a < b, 0 if equal, 1 if a > b.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.d.LessThan(b.d)
}

// IsZero reports whether a is 0.00.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a.d.IsPositive()
}

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// Decimal returns the underlying decimal value. Storage adapters use this
// for explicit conversion to numeric columns.
func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String formats the amount with exactly two fractional digits.
func (a Amount) String() string {
	return a.d.StringFixed(AmountScale)
}

// MarshalJSON encodes the amount as a quoted fixed-point string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON decodes a quoted or bare decimal, re-validating precision.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
