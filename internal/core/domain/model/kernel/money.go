package kernel

import (
	"fmt"

	"mangoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative US dollar amount with cent precision.
// The zero value is a valid amount of $0.00.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is $0.00.
var ZeroMoney = Money{}

// NewMoney builds Money from a decimal amount. Negative amounts are rejected and
// the value is rounded half away from zero to cents.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(2)}, nil
}

// MustMoney parses a literal amount such as "59.99". It panics on malformed input
// and is meant for static price tables.
func MustMoney(literal string) Money {
	m, err := NewMoney(decimal.RequireFromString(literal))
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromFloat converts a float amount (e.g. a persisted column) to Money.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Decimal returns the amount as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for JSON payloads and float columns.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// IsZero reports whether the amount is $0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts, ignoring representation (264 == 264.00).
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan compares amounts.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m * n.
func (m Money) Mul(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(2)}
}

// Split divides m into n equal parts rounded to cents. n must be positive.
func (m Money) Split(n int) (Money, error) {
	if n <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"parts", fmt.Errorf("%d is not greater than 0", n))
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(n))).Round(2)}, nil
}

// String renders the amount with two decimals, e.g. "135.99".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
