package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clubkit/treasury/internal/domain"
)

func TestAmountNumericRoundTrip(t *testing.T) {
	amounts := []string{"0.00", "10.50", "-3.75", "12345.01"}

	for _, s := range amounts {
		a := domain.MustParseAmount(s)
		got := numericToAmount(amountToNumeric(a))
		if !got.Equal(a) {
			t.Errorf("round trip of %s gave %s", a, got)
		}
	}
}

func TestNumericToAmountInvalid(t *testing.T) {
	var a = numericToAmount(amountToNumeric(domain.ZeroAmount))
	if !a.IsZero() {
		t.Errorf("expected zero, got %s", a)
	}
}

func TestTranslateError(t *testing.T) {
	if translateError(nil) != nil {
		t.Error("nil must stay nil")
	}

	plain := errors.New("boom")
	if translateError(plain) != plain {
		t.Error("non-pg errors must pass through")
	}

	for _, code := range []string{pgErrDeadlock, pgErrSerializationFailure} {
		err := translateError(&pgconn.PgError{Code: code})
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			t.Errorf("code %s must translate to ErrConcurrencyConflict, got %v", code, err)
		}
	}

	other := &pgconn.PgError{Code: "23505"}
	if !errors.Is(translateError(other), other) {
		t.Error("other pg errors must pass through")
	}
}
