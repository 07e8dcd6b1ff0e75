// Package types - Quote engine domain types
package types

import (
	"math"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

// CurrencyCAD is the only currency the engine quotes in.
const CurrencyCAD Currency = "CAD"

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// RoundCents rounds a float cent amount to the nearest integer cent.
func RoundCents(v float64) int64 {
	return int64(math.Round(v))
}

// DollarsToCents converts a dollar amount to integer cents.
func DollarsToCents(dollars float64) int64 {
	return RoundCents(dollars * 100)
}

// Dollars returns the decimal dollar value of a cent amount.
func Dollars(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

// FormatDollars renders a cent amount as a display string ("$69.99").
func FormatDollars(cents int64) string {
	return "$" + Dollars(cents).StringFixed(2)
}
