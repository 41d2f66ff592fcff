package dimension

import "github.com/llehouerou/reorder/internal/geometry"

// Viewport is the visible part of the page.
type Viewport struct {
	// Frame is in page coordinates.
	Frame  geometry.Rect
	Scroll ScrollDetails
}

// NewViewport builds a viewport of the given size scrolled to scroll.
func NewViewport(width, height float64, scroll, maxScroll geometry.Position) Viewport {
	return Viewport{
		Frame: geometry.RectFromSize(scroll.X, scroll.Y, width, height),
		Scroll: ScrollDetails{
			Initial: scroll,
			Current: scroll,
			Max:     maxScroll,
		},
	}
}

// ScrollTo returns the viewport after the window scrolled to newScroll.
func (v Viewport) ScrollTo(newScroll geometry.Position) Viewport {
	diff := newScroll.Subtract(v.Scroll.Initial)
	return Viewport{
		Frame: geometry.RectFromSize(newScroll.X, newScroll.Y, v.Frame.Width, v.Frame.Height),
		Scroll: ScrollDetails{
			Initial: v.Scroll.Initial,
			Current: newScroll,
			Max:     v.Scroll.Max,
			Diff: ScrollDiff{
				Value:        diff,
				Displacement: diff.Negate(),
			},
		},
	}
}
