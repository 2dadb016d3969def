package v1

import "github.com/shopspring/decimal"

var centsPerUnit = decimal.NewFromInt(100)

// toCents converts a decimal currency amount into integer minor units.
//
// The ledger and the database only ever see integer cents, so amounts
// with fractional cents are rejected instead of rounded.
func toCents(amount decimal.Decimal) (int64, error) {
	cents := amount.Mul(centsPerUnit)
	if !cents.IsInteger() {
		return 0, errAmountFraction
	}

	return cents.IntPart(), nil
}

// fromCents converts integer minor units into a decimal currency amount.
func fromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centsPerUnit)
}
