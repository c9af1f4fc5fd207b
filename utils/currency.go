package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney renders an amount for display: symbol prefix, dots grouping
// the thousands, and a comma decimal part only when the amount isn't whole
// (peso convention, e.g. "$3.500" or "$3.500,50"). Purely presentational;
// report payloads always carry the numeric value alongside.
func FormatMoney(amount float64, symbol string) string {
	negative := amount < 0
	amount = math.Abs(amount)

	// Round to cents first so 1999.999 doesn't group as 1.999.
	cents := math.Round(amount * 100)
	whole := int64(cents) / 100
	frac := int64(cents) % 100

	grouped := groupThousands(fmt.Sprintf("%d", whole))

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(grouped)
	if frac != 0 {
		b.WriteString(fmt.Sprintf(",%02d", frac))
	}
	return b.String()
}

// groupThousands inserts a dot every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
