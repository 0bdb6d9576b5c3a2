package commission

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SupplierAmount converts a supplier commission percentage into an amount of the sale.
// Example: amount 10.00 at 5% returns 0.50.
func SupplierAmount(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// ValidPercentage reports whether pct lies within [0, 100].
func ValidPercentage(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(hundred)
}

// Sum adds up the given amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Average returns total/count rounded to 2 places, or zero when count is 0.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}
