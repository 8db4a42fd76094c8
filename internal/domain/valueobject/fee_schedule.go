package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// FeeSchedule is a processor's fee structure: a percentage of the transaction
// amount plus a fixed component.
type FeeSchedule struct {
	percentage decimal.Decimal
	fixed      decimal.Decimal
}

// NewFeeSchedule validates and creates a FeeSchedule. Both components must be
// non-negative.
func NewFeeSchedule(percentage, fixed decimal.Decimal) (FeeSchedule, error) {
	if percentage.IsNegative() {
		return FeeSchedule{}, fmt.Errorf("fee percentage must not be negative, got: %s", percentage.String())
	}
	if fixed.IsNegative() {
		return FeeSchedule{}, fmt.Errorf("fixed fee must not be negative, got: %s", fixed.String())
	}
	return FeeSchedule{percentage: percentage, fixed: fixed}, nil
}

// FeeFor computes the fee for the given amount: amount * percentage/100 + fixed.
func (f FeeSchedule) FeeFor(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(f.percentage).Div(oneHundred).Add(f.fixed)
}

// Percentage returns the percentage component.
func (f FeeSchedule) Percentage() decimal.Decimal {
	return f.percentage
}

// Fixed returns the fixed component.
func (f FeeSchedule) Fixed() decimal.Decimal {
	return f.fixed
}
