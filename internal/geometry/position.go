// Package geometry provides the position, rectangle and box-model arithmetic
// used by the drag engine. All values are immutable: every operation returns
// a new value.
package geometry

import "math"

// Position is a point in page or client space.
type Position struct {
	X float64
	Y float64
}

// Origin is the zero position.
var Origin = Position{}

// Add returns p + o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Subtract returns p - o.
func (p Position) Subtract(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Negate flips the sign of both coordinates.
func (p Position) Negate() Position {
	return Position{X: -p.X, Y: -p.Y}
}

// Lerp returns the point a fraction t of the way from p to o.
func (p Position) Lerp(o Position, t float64) Position {
	return Position{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

// Equal reports whether both coordinates match exactly.
func (p Position) Equal(o Position) bool {
	return p.X == o.X && p.Y == o.Y
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Closest returns the smallest distance from target to any of the points.
// It returns +Inf when points is empty.
func Closest(target Position, points []Position) float64 {
	best := math.Inf(1)
	for _, p := range points {
		if d := Distance(target, p); d < best {
			best = d
		}
	}
	return best
}

// Patch builds a position with value on the given line and otherValue on the
// other coordinate.
func Patch(line Line, value, otherValue float64) Position {
	if line == LineX {
		return Position{X: value, Y: otherValue}
	}
	return Position{X: otherValue, Y: value}
}
