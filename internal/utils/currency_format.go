package utils

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrencyPrefix is the South African Rand symbol used on every amount.
const DefaultCurrencyPrefix = "R"

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatCurrency renders an amount as "<prefix> 12.34".
// Example: amount -0.455 with prefix "R" returns "R -0.46"
func FormatCurrency(amount decimal.Decimal, prefix string) string {
	if prefix == "" {
		prefix = DefaultCurrencyPrefix
	}
	return prefix + " " + FormatWithPrecision(amount, 2)
}
