package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// paisePerRupee is the number of paise in one rupee.
const paisePerRupee = 100

// ErrNegativeMoney is returned when constructing a Money from a negative amount.
var ErrNegativeMoney = errs.NewValueIsInvalidError("money amount cannot be negative")

// Money is an immutable value object representing a non-negative amount of
// Indian rupees. Amounts are stored as an integer number of paise so that
// arithmetic on prices never accumulates floating point drift.
//
// The zero value is a valid zero amount, which keeps Money convenient to use
// in aggregates that start without a price.
type Money struct {
	paise int64
}

// NewMoneyFromPaise creates a Money from an integer amount of paise.
func NewMoneyFromPaise(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{paise: paise}, nil
}

// NewMoneyFromRupees creates a Money from a rupee amount, rounding to the
// nearest paisa. This is the constructor used at API boundaries where amounts
// arrive as decimal rupees.
func NewMoneyFromRupees(rupees float64) (Money, error) {
	if rupees < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{paise: int64(rupees*paisePerRupee + 0.5)}, nil
}

// Paise returns the amount as an integer number of paise.
func (m Money) Paise() int64 {
	return m.paise
}

// Rupees returns the amount as decimal rupees.
func (m Money) Rupees() float64 {
	return float64(m.paise) / paisePerRupee
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.paise == 0
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// Sub returns the difference of the two amounts.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.paise > m.paise {
		return Money{}, ErrNegativeMoney
	}
	return Money{paise: m.paise - other.paise}, nil
}

// MulInt returns the amount multiplied by a non-negative integer factor.
func (m Money) MulInt(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{paise: m.paise * factor}, nil
}

// MulFloat returns the amount scaled by a non-negative factor, rounded to the
// nearest paisa. Used for percentage bounds on negotiation offers and for
// estimate ranges.
func (m Money) MulFloat(factor float64) (Money, error) {
	if factor < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{paise: int64(float64(m.paise)*factor + 0.5)}, nil
}

// LessThan reports whether m is strictly less than other.
func (m Money) LessThan(other Money) bool {
	return m.paise < other.paise
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.paise > other.paise
}

// IsEqual reports whether the two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.paise == other.paise
}

// String formats the amount as decimal rupees, e.g. "₹1250.00".
func (m Money) String() string {
	return fmt.Sprintf("₹%d.%02d", m.paise/paisePerRupee, m.paise%paisePerRupee)
}
