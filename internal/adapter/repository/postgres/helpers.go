package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/clubkit/treasury/internal/domain"
)

// Type conversion helpers.
func amountToNumeric(a domain.Amount) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(a.String())

	return n
}

func numericToAmount(n pgtype.Numeric) domain.Amount {
	if !n.Valid {
		return domain.ZeroAmount
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	a, err := domain.AmountFromDecimal(d.Round(domain.AmountScale))
	if err != nil {
		return domain.ZeroAmount
	}

	return a
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// translateError maps lock and serialization conflicts to the domain error
// the caller is expected to retry on. Everything else passes through.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrDeadlock, pgErrSerializationFailure:
			return domain.ErrConcurrencyConflict
		}
	}

	return err
}
