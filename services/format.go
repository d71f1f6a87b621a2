package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatEUR formats an amount using European notation with no decimal places,
// e.g. 1329 -> "1.329". Thousands are grouped with "." as used on Turkish
// price lists. NaN renders as an empty string so broken values never leak
// into documents as "NaN".
func FormatEUR(amount float64) string {
	return FormatEURDec(amount, 0)
}

// FormatEURDec formats an amount using European notation with the given number
// of decimal places, e.g. 1329.5 -> "1.329,50". The decimal separator is ","
// and thousands are grouped with ".".
func FormatEURDec(amount float64, decimals int) string {
	if math.IsNaN(amount) {
		return ""
	}

	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.*f", decimals, amount)

	intPart := raw
	decPart := ""
	if decimals > 0 {
		parts := strings.SplitN(raw, ".", 2)
		intPart = parts[0]
		decPart = parts[1]
	}

	result := groupThousands(intPart)
	if decPart != "" {
		result += "," + decPart
	}
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts "." separators into an integer string, grouping
// digits in threes from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}
