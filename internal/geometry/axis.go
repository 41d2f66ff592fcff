package geometry

// Line names a coordinate of a Position.
type Line int

const (
	LineX Line = iota
	LineY
)

// Direction is the layout direction of a list.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

func (d Direction) String() string {
	if d == DirectionHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Axis describes which coordinates and edges a list lays its items along.
// Use the Vertical and Horizontal values; the zero value is vertical.
type Axis struct {
	Direction Direction
}

var (
	Vertical   = Axis{Direction: DirectionVertical}
	Horizontal = Axis{Direction: DirectionHorizontal}
)

// AxisFor returns the axis matching a direction.
func AxisFor(d Direction) Axis {
	return Axis{Direction: d}
}

// IsVertical reports whether items are stacked top to bottom.
func (a Axis) IsVertical() bool {
	return a.Direction == DirectionVertical
}

// LineName is the coordinate items move along.
func (a Axis) LineName() Line {
	if a.IsVertical() {
		return LineY
	}
	return LineX
}

// CrossLineName is the coordinate perpendicular to the line.
func (a Axis) CrossLineName() Line {
	if a.IsVertical() {
		return LineX
	}
	return LineY
}

// Line returns the main-axis coordinate of p.
func (a Axis) Line(p Position) float64 {
	if a.IsVertical() {
		return p.Y
	}
	return p.X
}

// CrossLine returns the cross-axis coordinate of p.
func (a Axis) CrossLine(p Position) float64 {
	if a.IsVertical() {
		return p.X
	}
	return p.Y
}

// Patch builds a position with value on the main axis and cross on the other.
func (a Axis) Patch(value, cross float64) Position {
	return Patch(a.LineName(), value, cross)
}

// Start is the leading edge on the main axis.
func (a Axis) Start(s Spacing) float64 {
	if a.IsVertical() {
		return s.Top
	}
	return s.Left
}

// End is the trailing edge on the main axis.
func (a Axis) End(s Spacing) float64 {
	if a.IsVertical() {
		return s.Bottom
	}
	return s.Right
}

// Size is the extent of r on the main axis.
func (a Axis) Size(r Rect) float64 {
	if a.IsVertical() {
		return r.Height
	}
	return r.Width
}

// CrossStart is the leading edge on the cross axis.
func (a Axis) CrossStart(s Spacing) float64 {
	if a.IsVertical() {
		return s.Left
	}
	return s.Top
}

// CrossEnd is the trailing edge on the cross axis.
func (a Axis) CrossEnd(s Spacing) float64 {
	if a.IsVertical() {
		return s.Right
	}
	return s.Bottom
}

// CrossSize is the extent of r on the cross axis.
func (a Axis) CrossSize(r Rect) float64 {
	if a.IsVertical() {
		return r.Width
	}
	return r.Height
}

// WithEnd returns s with its main-axis end edge replaced.
func (a Axis) WithEnd(s Spacing, end float64) Spacing {
	if a.IsVertical() {
		s.Bottom = end
	} else {
		s.Right = end
	}
	return s
}

// ExpandLine grows s by amount on both main-axis edges.
func (a Axis) ExpandLine(s Spacing, amount float64) Spacing {
	if a.IsVertical() {
		return Expand(s, Spacing{Top: amount, Bottom: amount})
	}
	return Expand(s, Spacing{Left: amount, Right: amount})
}
