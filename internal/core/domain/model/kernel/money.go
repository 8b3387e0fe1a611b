package kernel

import (
	"fmt"

	"greenspace/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in
// Vietnamese dong. Amounts in this system are whole-dong values; there is no
// fractional unit.
//
// The zero value is a valid amount of zero dong. Money is immutable and
// thread-safe.
//
// Example usage:
//
//	price, err := kernel.NewMoney(5_000_000)
//	if err != nil {
//	    // handle error
//	}
//	total := price.Add(materialCost)
type Money struct {
	amount int64
}

// NewMoney creates a Money value from a whole-dong amount.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the whole-dong amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Multiply returns the amount scaled by a non-negative quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount * int64(quantity)}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted with a currency suffix.
func (m Money) String() string {
	return fmt.Sprintf("%d VND", m.amount)
}
