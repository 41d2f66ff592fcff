package impact

import "github.com/llehouerou/reorder/internal/geometry"

// VerticalDirection is the last vertical movement of the user.
type VerticalDirection int

const (
	Down VerticalDirection = iota
	Up
)

// HorizontalDirection is the last horizontal movement of the user.
type HorizontalDirection int

const (
	Right HorizontalDirection = iota
	Left
)

// UserDirection tracks which way the user last moved on each axis.
// The zero value is moving forward on both.
type UserDirection struct {
	Vertical   VerticalDirection
	Horizontal HorizontalDirection
}

// IsForward reports whether the user is moving toward the end of axis.
func (d UserDirection) IsForward(axis geometry.Axis) bool {
	if axis.IsVertical() {
		return d.Vertical == Down
	}
	return d.Horizontal == Right
}

// NextUserDirection derives the direction from two successive centers.
// An axis with no movement keeps its previous direction.
func NextUserDirection(previous UserDirection, oldCenter, newCenter geometry.Position) UserDirection {
	diff := newCenter.Subtract(oldCenter)
	next := previous
	switch {
	case diff.Y > 0:
		next.Vertical = Down
	case diff.Y < 0:
		next.Vertical = Up
	}
	switch {
	case diff.X > 0:
		next.Horizontal = Right
	case diff.X < 0:
		next.Horizontal = Left
	}
	return next
}
