package geometry

// Spacing describes the four edges of a box, or the thickness of each side of
// a margin, border or padding.
type Spacing struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Rect is a spacing with its derived measurements.
type Rect struct {
	Spacing
	Width  float64
	Height float64
	X      float64
	Y      float64
	Center Position
}

// NewRect derives a Rect from its edges.
func NewRect(s Spacing) Rect {
	width := s.Right - s.Left
	height := s.Bottom - s.Top
	return Rect{
		Spacing: s,
		Width:   width,
		Height:  height,
		X:       s.Left,
		Y:       s.Top,
		Center: Position{
			X: (s.Right + s.Left) / 2,
			Y: (s.Bottom + s.Top) / 2,
		},
	}
}

// RectFromSize builds a rect from its top-left corner and size.
func RectFromSize(x, y, width, height float64) Rect {
	return NewRect(Spacing{Top: y, Left: x, Right: x + width, Bottom: y + height})
}

// Offset moves every edge by the given position.
func (s Spacing) Offset(p Position) Spacing {
	return Spacing{
		Top:    s.Top + p.Y,
		Right:  s.Right + p.X,
		Bottom: s.Bottom + p.Y,
		Left:   s.Left + p.X,
	}
}

// Equal reports whether all four edges match.
func (s Spacing) Equal(o Spacing) bool {
	return s.Top == o.Top && s.Right == o.Right && s.Bottom == o.Bottom && s.Left == o.Left
}

// Corners returns the four corner points of the spacing.
func (s Spacing) Corners() []Position {
	return []Position{
		{X: s.Left, Y: s.Top},
		{X: s.Right, Y: s.Top},
		{X: s.Left, Y: s.Bottom},
		{X: s.Right, Y: s.Bottom},
	}
}

// Expand grows target outward by the thickness in by.
func Expand(target, by Spacing) Spacing {
	return Spacing{
		Top:    target.Top - by.Top,
		Left:   target.Left - by.Left,
		Bottom: target.Bottom + by.Bottom,
		Right:  target.Right + by.Right,
	}
}

// Shrink pulls target inward by the thickness in by.
func Shrink(target, by Spacing) Spacing {
	return Spacing{
		Top:    target.Top + by.Top,
		Left:   target.Left + by.Left,
		Bottom: target.Bottom - by.Bottom,
		Right:  target.Right - by.Right,
	}
}

// Clip intersects subject with frame. It returns false when the result has
// no area left.
func Clip(frame, subject Spacing) (Rect, bool) {
	clipped := NewRect(Spacing{
		Top:    max(subject.Top, frame.Top),
		Right:  min(subject.Right, frame.Right),
		Bottom: min(subject.Bottom, frame.Bottom),
		Left:   max(subject.Left, frame.Left),
	})
	if clipped.Width <= 0 || clipped.Height <= 0 {
		return Rect{}, false
	}
	return clipped, true
}
