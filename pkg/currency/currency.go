// Package currency formats naira amounts for statements and reports:
// fixed two decimal places with thousands separators.
package currency

import (
	"strconv"
	"strings"
)

// Marker is the currency prefix used on printed documents. The core PDF
// fonts have no glyph for the naira sign, so documents carry the plain-N
// convention the shop's paper receipts already use.
const Marker = "N"

// Format renders an amount as a thousands-separated string with two
// decimal places, e.g. 1234567.5 -> "1,234,567.50".
func Format(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Naira renders an amount with the currency marker, e.g. "N12,500.00".
func Naira(amount float64) string {
	return Marker + Format(amount)
}
