// Package money holds the fixed-point arithmetic used by the conversion
// engine. All functions are pure and safe for concurrent use.
package money

import "github.com/shopspring/decimal"

// BaseDecimalPlaces is the accounting scale of the hub's base currency.
// Conversions into base always round to this scale regardless of any
// currency's own decimal places.
const BaseDecimalPlaces = 2

// RateDecimalPlaces is the storage scale of exchange rates.
const RateDecimalPlaces = 6

// RoundHalfUp rounds d to the given number of fractional digits, with an
// exact half rounded away from zero toward the larger magnitude.
func RoundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// ConvertToBase converts an amount in a foreign currency into the base
// currency using the currency's base-relative rate. A zero rate yields zero
// rather than dividing by zero.
func ConvertToBase(amount, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return RoundHalfUp(amount.Div(rate), BaseDecimalPlaces)
}

// ConvertFromBase converts a base-currency amount into a foreign currency,
// rounding to the target currency's decimal places. A zero rate yields zero.
func ConvertFromBase(amount, rate decimal.Decimal, decimalPlaces int) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return RoundHalfUp(amount.Mul(rate), int32(decimalPlaces))
}

// NormalizeRate rounds a rate to its storage scale.
func NormalizeRate(rate decimal.Decimal) decimal.Decimal {
	return RoundHalfUp(rate, RateDecimalPlaces)
}
