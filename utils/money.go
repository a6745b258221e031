package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cents rounds an amount to the two-place precision money is kept in.
func Cents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatAmount renders an amount like "LKR 12,500.00" ("-LKR 1,000.00" for negatives).
func FormatAmount(currency string, amount decimal.Decimal) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i:]
	}

	var b strings.Builder
	b.Grow(len(currency) + len(s) + len(whole)/3 + 2)
	if neg {
		b.WriteByte('-')
	}
	if currency != "" {
		b.WriteString(currency)
		b.WriteByte(' ')
	}

	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteString(frac)

	return b.String()
}

// PercentChange returns (current - previous) / previous * 100 rounded to two places.
// A zero previous value yields zero instead of an infinite change.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
}
