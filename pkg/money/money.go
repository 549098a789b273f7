package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromFloat creates a decimal from a float, rounded to 2 places
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses a decimal from a string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// Mul multiplies two decimals, rounds to 2 places
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(2)
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// LineTotal computes quantity * unit price * exchange rate, rounded to
// 2 places. This is the per-line total in the exporter's local currency.
func LineTotal(quantity, unitPrice, exchangeRate float64) float64 {
	total := decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromFloat(unitPrice)).
		Mul(decimal.NewFromFloat(exchangeRate)).
		Round(2)
	f, _ := total.Float64()
	return f
}

// InvoiceTotal sums line totals plus freight, insurance and other charges,
// rounded to 2 places.
func InvoiceTotal(lineTotals []float64, freight, insurance, other float64) float64 {
	total := Zero
	for _, lt := range lineTotals {
		total = total.Add(decimal.NewFromFloat(lt))
	}
	total = total.
		Add(decimal.NewFromFloat(freight)).
		Add(decimal.NewFromFloat(insurance)).
		Add(decimal.NewFromFloat(other)).
		Round(2)
	f, _ := total.Float64()
	return f
}
