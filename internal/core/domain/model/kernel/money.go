package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Money is a value object representing a Naira amount stored in kobo
// (minor units). Keeping amounts in integer minor units makes sums and
// unit-price × quantity products exact, with no floating-point drift.
//
// The zero value is a valid ₦0.00 amount. Negative amounts are invalid
// and cannot be constructed.
type Money struct {
	kobo int64
}

// NewMoneyFromKobo creates a Money amount from kobo minor units.
// The amount must not be negative.
func NewMoneyFromKobo(kobo int64) (Money, error) {
	if kobo < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d kobo is negative", kobo),
		)
	}
	return Money{kobo: kobo}, nil
}

// ZeroMoney returns the ₦0.00 amount, useful as a summation seed.
func ZeroMoney() Money {
	return Money{}
}

// NewMoneyFromNaira creates a Money amount from whole Naira.
func NewMoneyFromNaira(naira int64) (Money, error) {
	return NewMoneyFromKobo(naira * 100)
}

// Kobo returns the amount in kobo minor units.
func (m Money) Kobo() int64 {
	return m.kobo
}

// IsZero reports whether the amount is ₦0.00.
func (m Money) IsZero() bool {
	return m.kobo == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.kobo == other.kobo
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{kobo: m.kobo + other.kobo}
}

// MultiplyQuantity returns the amount multiplied by an item quantity.
// The quantity must be positive.
func (m Money) MultiplyQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Money{kobo: m.kobo * int64(quantity)}, nil
}

// String returns the human-readable Naira representation, e.g. "₦500.00".
func (m Money) String() string {
	return fmt.Sprintf("₦%d.%02d", m.kobo/100, m.kobo%100)
}
