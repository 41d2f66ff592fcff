package boardview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell styles, indexes into the palette passed to render.
const (
	styleNone = iota
	styleBorder
	styleText
	styleFocus
	styleTarget
	styleDragging
	styleMuted
	styleCount
)

type cell struct {
	// text is empty for the second half of a wide rune
	text  string
	style int
}

// rect is a clip area in canvas coordinates, bottom and right exclusive.
type rect struct {
	top, left, bottom, right int
}

// canvas is a grid of terminal cells that later draws overwrite.
type canvas struct {
	width, height int
	cells         [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		row := make([]cell, c.width)
		for x := range row {
			row[x] = cell{text: " "}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) bounds() rect {
	return rect{bottom: c.height, right: c.width}
}

// put writes s starting at x, y. Cells outside clip are skipped. Returns the
// number of cells advanced.
func (c *canvas) put(x, y int, s string, style int, clip rect) int {
	clip = intersect(clip, c.bounds())
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if y >= clip.top && y < clip.bottom {
			switch {
			case w == 2 && x >= clip.left && x+1 < clip.right:
				c.cells[y][x] = cell{text: string(r), style: style}
				c.cells[y][x+1] = cell{style: style}
			case w == 2 && x >= clip.left && x < clip.right:
				// no room for the second half
				c.cells[y][x] = cell{text: " ", style: style}
			case w == 1 && x >= clip.left && x < clip.right:
				c.cells[y][x] = cell{text: string(r), style: style}
			}
		}
		x += w
	}
	return x - start
}

// render joins the cells into styled lines, one style call per run.
func (c *canvas) render(palette [styleCount]lipgloss.Style) []string {
	lines := make([]string, 0, c.height)
	for _, row := range c.cells {
		var line, run strings.Builder
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == styleNone {
				line.WriteString(run.String())
			} else {
				line.WriteString(palette[current].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.text == "" {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		lines = append(lines, line.String())
	}
	return lines
}

func intersect(a, b rect) rect {
	return rect{
		top:    max(a.top, b.top),
		left:   max(a.left, b.left),
		bottom: min(a.bottom, b.bottom),
		right:  min(a.right, b.right),
	}
}
