// Package movement plans discrete keyboard moves of a dragging item: one
// step along the list it is over, or a jump to the neighbouring list.
package movement

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/invariant"
	"github.com/llehouerou/reorder/internal/visibility"
)

// Command is a directional move request.
type Command int

const (
	MoveUp Command = iota
	MoveDown
	MoveLeft
	MoveRight
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "unknown"
}

func (c Command) isForward() bool {
	return c == MoveDown || c == MoveRight
}

func (c Command) isAlong(axis geometry.Axis) bool {
	if axis.IsVertical() {
		return c == MoveUp || c == MoveDown
	}
	return c == MoveLeft || c == MoveRight
}

// Args are the inputs of Plan.
type Args struct {
	Command   Command
	Draggable dimension.DraggableDimension
	Snapshot  dimension.Map
	Previous  impact.DragImpact
	// PreviousPageBorderBoxCenter is where the dragging item currently is.
	PreviousPageBorderBoxCenter geometry.Position
	Viewport                    dimension.Viewport
	AfterCritical               impact.LiftEffect
}

// Result is a planned move.
type Result struct {
	PageBorderBoxCenter geometry.Position
	Impact              impact.DragImpact
	// ScrollJumpRequest is set when the new position is off screen. The item
	// stays at its previous center and the caller must scroll by this
	// distance.
	ScrollJumpRequest *geometry.Position
}

// Plan computes the result of a directional move. It returns nil, nil when
// the move is not possible, in which case nothing should change.
func Plan(args Args) (*Result, error) {
	const op = "movement.Plan"

	droppables := args.Snapshot.Droppables
	over, isOver := args.Previous.Destination()
	if !isOver {
		over = args.Draggable.Descriptor.DroppableID
	}
	droppable, ok := droppables[over]
	if !ok {
		return nil, invariant.New(op, "unknown droppable %q", over)
	}

	if args.Command.isAlong(droppable.Axis) {
		// nothing to step through
		if !isOver {
			return nil, nil
		}
		return moveToNextPlace(args, droppable)
	}
	return moveCrossAxis(args, droppable)
}

// finalize places the item at the center implied by next, or asks for a
// scroll when that center is not visible on the main axis.
func finalize(args Args, destination dimension.DroppableDimension, next impact.DragImpact) (*Result, error) {
	center, err := impact.PageBorderBoxCenter(impact.CenterArgs{
		Impact:     next,
		Draggable:  args.Draggable,
		Draggables: args.Snapshot.Draggables,
		Droppables: args.Snapshot.Droppables,
	})
	if err != nil {
		return nil, err
	}

	if isVisibleAt(args.Draggable, destination, center, args.Viewport) {
		return &Result{PageBorderBoxCenter: center, Impact: next}, nil
	}

	distance := center.Subtract(args.PreviousPageBorderBoxCenter)
	return &Result{
		PageBorderBoxCenter: args.PreviousPageBorderBoxCenter,
		Impact:              next,
		ScrollJumpRequest:   &distance,
	}, nil
}

func isVisibleAt(draggable dimension.DraggableDimension, destination dimension.DroppableDimension, center geometry.Position, viewport dimension.Viewport) bool {
	change := center.Subtract(draggable.Page.BorderBox.Center)
	return visibility.IsTotallyVisibleOnAxis(visibility.Args{
		Target:      draggable.Page.BorderBox.Spacing.Offset(change),
		Destination: destination,
		Viewport:    viewport.Frame,
		// only the page location of the item matters here
		WithDroppableDisplacement: false,
	})
}

func withoutDraggable(items []dimension.DraggableDimension, id dimension.DraggableID) []dimension.DraggableDimension {
	out := make([]dimension.DraggableDimension, 0, len(items))
	for _, d := range items {
		if d.ID() != id {
			out = append(out, d)
		}
	}
	return out
}
