package entities

import (
	"math"

	"github.com/shopspring/decimal"
)

// CurrencyPrecision is the number of decimal places kept for EUR amounts
const CurrencyPrecision = 2

// Round2 rounds an amount to the nearest cent, halves away from zero.
// Non-finite values are returned unchanged.
func Round2(amount float64) float64 {
	if !IsFinite(amount) {
		return amount
	}
	return decimal.NewFromFloat(amount).Round(CurrencyPrecision).InexactFloat64()
}

// Sum2 adds amounts exactly and rounds the result to the nearest cent
func Sum2(amounts ...float64) float64 {
	total := decimal.Zero
	for _, amount := range amounts {
		if !IsFinite(amount) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(amount))
	}
	return total.Round(CurrencyPrecision).InexactFloat64()
}

// Percent returns amount × pct/100 rounded to the nearest cent
func Percent(amount, pct float64) float64 {
	if !IsFinite(amount) || !IsFinite(pct) {
		return 0
	}
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(CurrencyPrecision).
		InexactFloat64()
}

// FloorToEuro drops the cents of an amount
func FloorToEuro(amount float64) float64 {
	if !IsFinite(amount) {
		return amount
	}
	return decimal.NewFromFloat(amount).Floor().InexactFloat64()
}

// IsFinite reports whether v is neither NaN nor ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Amount returns a pointer to v, for populating optional amounts
func Amount(v float64) *float64 {
	return &v
}
