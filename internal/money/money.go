// Package money formats decimal currency amounts the way the console UI
// displays them: "." as thousands separator, "," as decimal separator.
package money

import (
	"math"
	"strconv"
	"strings"
)

// FormatCents renders an amount of integer cents, e.g. 698990 -> "6.989,90".
func FormatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(pad2(frac))
	return b.String()
}

// Format renders a decimal amount, rounding to cents first.
func Format(amount float64) string {
	return FormatCents(int64(math.Round(amount * 100)))
}

// ParseCents recovers integer cents from a formatted string by stripping
// every non-digit character, so it accepts partial user input like "6989,9_".
func ParseCents(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	cents, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return cents
}

// Parse recovers a decimal amount from a formatted string.
func Parse(s string) float64 {
	return float64(ParseCents(s)) / 100
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
