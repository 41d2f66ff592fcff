package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rule renders the horizontal line under a column header. The line is
// heavier when the column is highlighted.
func Rule(width int, highlighted bool) string {
	if width <= 0 {
		return ""
	}
	t := T()
	if highlighted {
		return lipgloss.NewStyle().Foreground(t.BorderFocus).Render(strings.Repeat("━", width))
	}
	return lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width))
}
