package boardview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/drag"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/keymap"
	"github.com/llehouerou/reorder/internal/ui/render"
	"github.com/llehouerou/reorder/internal/ui/styles"
)

const cardWidth = columnWidth - 2*cardInset

// View renders the board.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	lines := make([]string, 0, m.Height)
	lines = append(lines, m.headerView(), m.ruleView())
	lines = append(lines, m.bodyView()...)
	lines = append(lines, m.statusView())
	if help := m.helpView(); help != "" {
		lines = append(lines, help)
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpView() string {
	return m.help.View(keymap.HelpFor(m.context()))
}

func (m Model) headerView() string {
	cols := m.h.layout.columns
	var b strings.Builder
	cursor := 0
	for i, c := range cols {
		b.WriteString(strings.Repeat(" ", max(c.Left-cursor, 0)))
		title := styles.ColumnHeader(render.Sanitize(c.Title), i, len(cols)) +
			styles.T().S().Muted.Render(fmt.Sprintf(" (%d)", len(c.Cards)))
		title = ansi.Truncate(title, columnWidth, "…")
		b.WriteString(title)
		cursor = max(c.Left, cursor) + lipgloss.Width(title)
	}
	return ansi.Truncate(b.String(), m.Width, "")
}

func (m Model) ruleView() string {
	highlighted := m.highlightedColumn()
	var b strings.Builder
	cursor := 0
	for i, c := range m.h.layout.columns {
		b.WriteString(strings.Repeat(" ", max(c.Left-cursor, 0)))
		b.WriteString(styles.Rule(columnWidth, i == highlighted))
		cursor = c.Left + columnWidth
	}
	return ansi.Truncate(b.String(), m.Width, "")
}

// highlightedColumn is the column under the dragged card, or the focused
// column when idle.
func (m Model) highlightedColumn() int {
	h := m.h
	if h.session.IsDragging() {
		if dest, ok := h.session.Impact().Destination(); ok {
			if _, i, ok := h.layout.column(string(dest)); ok {
				return i
			}
		}
		return -1
	}
	if h.dropping != nil {
		return -1
	}
	return h.focusCol
}

// activeImpact is the impact being shown: the live drag or the animating drop.
func (m Model) activeImpact() (impact.DragImpact, dimension.DraggableID, bool) {
	h := m.h
	switch {
	case h.dropping != nil:
		return h.dropping.outcome.Impact, h.dropping.outcome.Result.DraggableID, true
	case h.session.IsDragging():
		return h.session.Impact(), h.session.Critical().ID, true
	}
	return impact.NoImpact(), "", false
}

func (m Model) bodyView() []string {
	h := m.h
	cv := newCanvas(m.Width, max(h.bodyHeight, 0))
	cards := cardsByID(h.board.Columns())
	imp, dragging, active := m.activeImpact()

	target := dimension.DraggableID("")
	if c, ok := imp.Combine(); ok {
		target = c.DraggableID
	}
	shift := int(math.Round(imp.DisplacedBy.Value))

	for i, c := range h.layout.columns {
		clip := rect{top: 0, left: c.Left, bottom: h.layout.frameHeight, right: c.Left + columnWidth}
		if len(c.Cards) == 0 {
			cv.put(c.Left+cardInset+1, 1, "(empty)", styleMuted, clip)
			continue
		}
		for j, id := range c.Cards {
			did := dimension.DraggableID(id)
			if active && did == dragging {
				continue
			}
			top := h.layout.cardTop(c, j) - headerHeight
			if imp.Displaced.IsDisplaced(did) {
				top += shift
			}
			style := styleText
			switch {
			case did == target:
				style = styleTarget
			case !active && i == h.focusCol && j == h.focusRow:
				style = styleFocus
			}
			drawCard(cv, c.Left+cardInset, top, cards[id], style, clip)
		}
	}

	if active {
		center := m.draggingCenter()
		top := int(math.Round(center.Y-slotHeight/2.0)) - headerHeight
		left := int(math.Round(center.X - cardWidth/2.0))
		drawCard(cv, left, top, cards[string(dragging)], styleDragging, cv.bounds())
	}

	return cv.render(palette())
}

// draggingCenter is where the dragged card is drawn. Dropped cards travel
// from where they were released to where they land.
func (m Model) draggingCenter() geometry.Position {
	h := m.h
	if d := h.dropping; d != nil {
		t := float64(d.frame) / dropFrames
		return d.outcome.From.Lerp(d.outcome.To, t)
	}
	return h.session.Current().Client.BorderBoxCenter
}

// drawCard draws a bordered card with its top-left corner at x, y.
func drawCard(cv *canvas, x, y int, card board.Card, style int, clip rect) {
	border := styleBorder
	if style != styleText {
		border = style
	}
	inner := cardWidth - 2

	suffix := ""
	if n := len(card.Merged); n > 0 {
		suffix = fmt.Sprintf(" +%d", n)
	}
	title := render.Fit(render.Truncate(card.Title, max(inner-2-len(suffix), 1))+suffix, inner-2)

	cv.put(x, y, "╭"+strings.Repeat("─", inner)+"╮", border, clip)
	n := cv.put(x, y+1, "│ ", border, clip)
	n += cv.put(x+n, y+1, title, style, clip)
	cv.put(x+n, y+1, " │", border, clip)
	cv.put(x, y+2, "╰"+strings.Repeat("─", inner)+"╯", border, clip)
}

func cardsByID(cols []board.Column) map[string]board.Card {
	cards := make(map[string]board.Card)
	for _, c := range cols {
		for _, card := range c.Cards {
			cards[card.ID] = card
		}
	}
	return cards
}

func palette() [styleCount]lipgloss.Style {
	s := styles.T().S()
	var p [styleCount]lipgloss.Style
	p[styleBorder] = s.Border
	p[styleText] = s.Base
	p[styleFocus] = s.Focus
	p[styleTarget] = s.Target
	p[styleDragging] = s.Dragging
	p[styleMuted] = s.Muted
	return p
}

func (m Model) statusView() string {
	h := m.h
	s := styles.T().S()
	var left string
	switch {
	case h.errText != "":
		left = s.Error.Render(h.errText)
	case h.session.IsDragging():
		left = s.Muted.Render(m.dragStatus())
	case h.message != "":
		left = s.Muted.Render(h.message)
	default:
		left = s.Muted.Render(m.summary())
	}

	right := "combine " + onOff(h.combine)
	switch {
	case h.session.IsDragging() && h.session.Mode() == drag.ModeSnap:
		right = "keyboard drag"
	case h.session.IsDragging():
		right = "mouse drag"
	}
	line := render.Row(left, s.Subtle.Render(right), m.Width)
	return ansi.Truncate(line, m.Width, "…")
}

func (m Model) dragStatus() string {
	h := m.h
	title := h.cardTitle(string(h.session.Critical().ID))
	switch h.session.Phase() {
	case drag.PhaseCollecting, drag.PhaseDropPending:
		return "Updating board…"
	}
	imp := h.session.Impact()
	if r, ok := imp.Reorder(); ok {
		c, _ := h.board.Column(string(r.Destination.DroppableID))
		return fmt.Sprintf("'%s' → %s, %s place", title, c.Title, humanize.Ordinal(r.Destination.Index+1))
	}
	if c, ok := imp.Combine(); ok {
		return fmt.Sprintf("Combine '%s' with '%s'", title, h.cardTitle(string(c.DraggableID)))
	}
	return "Not over a column"
}

func (m Model) summary() string {
	cols := m.h.board.Columns()
	cards := 0
	for _, c := range cols {
		cards += len(c.Cards)
	}
	return english.Plural(len(cols), "column", "") + ", " + english.Plural(cards, "card", "")
}
