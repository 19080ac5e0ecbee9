package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonDigit = regexp.MustCompile(`[^\d]`)

// ParseCurrency converts a display amount such as "Rp12.000.000" into whole
// rupiah by dropping every non-digit character. ok is false when no digit is
// left.
func ParseCurrency(display string) (amount decimal.Decimal, ok bool) {
	digits := nonDigit.ReplaceAllString(display, "")
	if digits == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CurrencyParam renders a display amount as the integer string the backend
// expects, or "" when there is nothing to send.
func CurrencyParam(display string) string {
	d, ok := ParseCurrency(display)
	if !ok {
		return ""
	}
	return d.String()
}

// FormatIDR renders d as rupiah without fraction digits: Rp12.000.000
func FormatIDR(d decimal.Decimal) string {
	rounded := d.Round(0)
	neg := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}

// FormatNullIDR renders a nullable amount, empty when absent
func FormatNullIDR(n decimal.NullDecimal) string {
	if !n.Valid {
		return ""
	}
	return FormatIDR(n.Decimal)
}
