// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with the configured currency
// symbol and two decimal places. e.g., 15.5 -> "$15.50"
func FormatAmount(d decimal.Decimal, currency string) string {
	return currency + d.StringFixed(2)
}

// FormatCount adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatNote renders a possibly-empty note for display.
func FormatNote(note string) string {
	if note == "" {
		return "—"
	}
	return note
}

// FormatSkips describes a number of records dropped by the
// lenient-skip policy, for a footer line under a summary.
func FormatSkips(n int) string {
	if n == 1 {
		return "1 record skipped"
	}
	return fmt.Sprintf("%d records skipped", n)
}
