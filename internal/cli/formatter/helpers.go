package formatter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money formats a decimal amount for display with two fraction digits and
// thin spaces as thousands separators, e.g. "3 011 011.04".
func Money(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	frac := s[len(s)-3:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}

// Qty formats a quantity without trailing zeros, e.g. "2", "1.5".
func Qty(d decimal.Decimal) string {
	return d.String()
}

// Date formats a calendar date as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// TruncID shortens a UUID to its first eight characters for table display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Truncate cuts a string to max runes, appending an ellipsis when shortened.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
