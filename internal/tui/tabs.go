package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"outlay/internal/cli"
	"outlay/internal/model"
	"outlay/internal/tui/components"
	"outlay/internal/tui/theme"
)

const historyRows = 15

func (a App) View() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	statusStyle := lipgloss.NewStyle().Foreground(t.Yellow)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  outlay"))
	b.WriteString(dimStyle.Render("  personal expense tracker"))
	b.WriteString("\n\n")

	switch {
	case !a.loaded:
		b.WriteString("  " + a.spinner.View())
		b.WriteString(dimStyle.Render(" Loading expenses..."))
		b.WriteString("\n")
		return b.String()
	case a.loadErr != nil:
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(errStyle.Render(fmt.Sprintf("  Could not load expenses: %v", a.loadErr)))
		b.WriteString("\n")
		return b.String()
	case a.addForm != nil:
		b.WriteString(a.addForm.View())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(components.TabBar(tabNames, a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case 0:
		b.WriteString(a.viewOverview())
	case 1:
		b.WriteString(a.viewBreakdown())
	case 2:
		b.WriteString(a.viewTrends())
	case 3:
		b.WriteString(a.viewHistory())
	}

	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(statusStyle.Render("  " + a.status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("  tab/h/l switch · a add · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (a App) viewOverview() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	if len(a.expenses) == 0 {
		return labelStyle.Render("  No expenses recorded yet. Press a to add one.") + "\n"
	}

	currency := a.cfg.General.Currency
	line := func(label, value string) string {
		return fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", label)),
			valueStyle.Render(value))
	}

	var b strings.Builder
	b.WriteString(line("Records", cli.FormatCount(int64(a.breakdown.Count))))
	b.WriteString(line("Total Spent", cli.FormatAmount(a.breakdown.GrandTotal, currency)))
	b.WriteString("\n")

	// Monthly trajectory as a sparkline, oldest to newest
	if len(a.periods.Monthly) > 0 {
		values := make([]float64, len(a.periods.Monthly))
		for i, pt := range a.periods.Monthly {
			values[i], _ = pt.Total.Float64()
		}
		b.WriteString(labelStyle.Render("  Monthly trend  "))
		b.WriteString(components.Sparkline(values, t.Accent))
		b.WriteString("\n")
	}

	if a.skips.Total() > 0 {
		warn := lipgloss.NewStyle().Foreground(t.Orange)
		b.WriteString("\n")
		b.WriteString(warn.Render("  " + cli.FormatSkips(a.skips.Total())))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) viewBreakdown() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.breakdown.ByCategory) == 0 {
		return labelStyle.Render("  No expense data available yet.") + "\n"
	}

	bars := make([]cli.Bar, 0, len(a.breakdown.ByCategory))
	for _, ct := range a.breakdown.ByCategory {
		bars = append(bars, cli.Bar{Label: string(ct.Category), Value: ct.Total})
	}

	var b strings.Builder
	b.WriteString(cli.BarChart(bars, a.cfg.General.Currency, barWidth(a.width), t.Accent))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("  Grand total %s",
		cli.FormatAmount(a.breakdown.GrandTotal, a.cfg.General.Currency))))
	b.WriteString("\n")
	return b.String()
}

func (a App) viewTrends() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.periods.Weekly) == 0 && len(a.periods.Monthly) == 0 {
		return labelStyle.Render("  Need some expense data first.") + "\n"
	}

	var b strings.Builder
	b.WriteString(a.viewPeriod("Weekly", a.periods.Weekly, t.Blue))
	b.WriteString("\n")
	b.WriteString(a.viewPeriod("Monthly", a.periods.Monthly, t.Green))
	return b.String()
}

func (a App) viewPeriod(title string, totals []model.PeriodTotal, color lipgloss.Color) string {
	t := theme.Active
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	var b strings.Builder
	b.WriteString(headerStyle.Render("  " + title))
	b.WriteString("\n")

	bars := make([]cli.Bar, 0, len(totals))
	for _, pt := range totals {
		bars = append(bars, cli.Bar{Label: pt.Key, Value: pt.Total})
	}
	b.WriteString(cli.BarChart(bars, a.cfg.General.Currency, barWidth(a.width), color))
	return b.String()
}

func (a App) viewHistory() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	if len(a.expenses) == 0 {
		return labelStyle.Render("  No expenses found.") + "\n"
	}

	// Snapshot is already newest-first
	shown := a.expenses
	if len(shown) > historyRows {
		shown = shown[:historyRows]
	}

	var b strings.Builder
	for _, e := range shown {
		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			labelStyle.Render(e.Timestamp),
			valueStyle.Render(fmt.Sprintf("%-6s", string(e.Category))),
			valueStyle.Render(fmt.Sprintf("%9s", cli.FormatAmount(e.Amount, a.cfg.General.Currency))),
			labelStyle.Render(cli.FormatNote(e.Note)),
		))
	}
	if len(a.expenses) > historyRows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  … %d more, see `outlay list`", len(a.expenses)-historyRows)))
		b.WriteString("\n")
	}
	return b.String()
}

// barWidth scales chart bars to the terminal, with a sane floor.
func barWidth(termWidth int) int {
	w := termWidth / 3
	if w < 20 {
		w = 20
	}
	if w > 50 {
		w = 50
	}
	return w
}
