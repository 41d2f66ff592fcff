// Package visibility decides whether a target can be seen through both the
// droppable it sits in and the viewport.
package visibility

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
)

// Args are the inputs shared by every visibility check.
type Args struct {
	Target      geometry.Spacing
	Destination dimension.DroppableDimension
	// Viewport is the visible page frame.
	Viewport geometry.Rect
	// WithDroppableDisplacement shifts the target by the destination's own
	// scroll before testing it.
	WithDroppableDisplacement bool
}

type frameCheck func(frame, subject geometry.Spacing) bool

func check(args Args, isVisibleThrough frameCheck) bool {
	active := args.Destination.Subject.Active
	// the droppable is scrolled out of view
	if active == nil {
		return false
	}

	target := args.Target
	if args.WithDroppableDisplacement && args.Destination.Frame != nil {
		target = target.Offset(args.Destination.Frame.Scroll.Diff.Displacement)
	}

	return isVisibleThrough(active.Spacing, target) &&
		isVisibleThrough(args.Viewport.Spacing, target)
}

// IsPartiallyVisible reports whether any part of the target can be seen.
func IsPartiallyVisible(args Args) bool {
	return check(args, geometry.IsPartiallyVisibleThroughFrame)
}

// IsTotallyVisible reports whether the whole target can be seen.
func IsTotallyVisible(args Args) bool {
	return check(args, geometry.IsTotallyVisibleThroughFrame)
}

// IsTotallyVisibleOnAxis only requires the main-axis edges of the target to be
// visible. The cross axis is ignored.
func IsTotallyVisibleOnAxis(args Args) bool {
	axis := args.Destination.Axis
	return check(args, func(frame, subject geometry.Spacing) bool {
		return geometry.IsTotallyVisibleThroughFrameOnAxis(axis, frame, subject)
	})
}
