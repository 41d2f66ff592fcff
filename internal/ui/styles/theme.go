package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the board.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focus, column headers
	Secondary lipgloss.Color // Gold/orange - the dragged card

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Borders
	Border      lipgloss.Color // Card and rule borders
	BorderFocus lipgloss.Color // Focused card, destination column

	// Status colors
	Success lipgloss.Color // Green - combine target
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Border   lipgloss.Style
	Focus    lipgloss.Style // Focused card
	Target   lipgloss.Style // Card the dragged card would combine with
	Dragging lipgloss.Style // Card being dragged
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:    base.Bold(true),
		Border:   lipgloss.NewStyle().Foreground(t.Border),
		Focus:    lipgloss.NewStyle().Foreground(t.BorderFocus).Bold(true),
		Target:   lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Dragging: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
	}
}
