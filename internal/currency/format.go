package currency

import (
	"fmt"
	"strings"

	"github.com/verdantfin/fintrack/internal/model"
)

// Format renders an amount with the currency's symbol, two decimal places,
// and locale-appropriate digit grouping: Western thousands for USD, the
// Indian lakh/crore pattern for INR (1,23,456.78). Negative amounts place
// the sign before the symbol.
func Format(amount float64, c model.Currency) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	fixed := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped string
	if c == model.CurrencyINR {
		grouped = groupIndian(intPart)
	} else {
		grouped = groupWestern(intPart)
	}

	out := c.Symbol() + grouped + "." + fracPart
	if negative {
		return "-" + out
	}
	return out
}

// groupWestern inserts a separator every three digits: 1,234,567.
func groupWestern(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian separates the last three digits, then every two: 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
