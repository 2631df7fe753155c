// Package components holds small reusable view helpers for the TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"outlay/internal/tui/theme"
)

// TabBar renders a horizontal tab strip with the active tab highlighted.
func TabBar(names []string, active int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Padding(0, 2)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 2)

	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	return "  " + strings.Join(parts, " ")
}
