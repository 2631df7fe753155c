package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Bar is one labeled value in a horizontal bar chart.
type Bar struct {
	Label string
	Value decimal.Decimal
}

// BarChart renders labeled horizontal bars scaled to the largest
// value, with the formatted amount after each bar:
//
//	Food    ██████████████  $15.50
//	Travel  ████            $4.20
func BarChart(bars []Bar, currency string, width int, color lipgloss.Color) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}

	labelW := 0
	peak := decimal.Zero
	for _, bar := range bars {
		if len(bar.Label) > labelW {
			labelW = len(bar.Label)
		}
		if bar.Value.GreaterThan(peak) {
			peak = bar.Value
		}
	}
	if peak.Sign() <= 0 {
		peak = decimal.New(1, 0)
	}

	barStyle := lipgloss.NewStyle().Foreground(color)

	var b strings.Builder
	for _, bar := range bars {
		frac, _ := bar.Value.Div(peak).Float64()
		n := int(frac * float64(width))
		if n < 1 && bar.Value.Sign() > 0 {
			n = 1
		}

		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s", labelW, bar.Label)))
		b.WriteString("  ")
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteString(strings.Repeat(" ", width-n+2))
		b.WriteString(valueStyle.Render(FormatAmount(bar.Value, currency)))
		b.WriteString("\n")
	}
	return b.String()
}
