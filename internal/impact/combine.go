package impact

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
)

type combineArgs struct {
	center            geometry.Position
	draggable         dimension.DraggableDimension
	destination       dimension.DroppableDimension
	insideDestination []dimension.DraggableDimension
	previous          DragImpact
	direction         UserDirection
}

// directionFor keeps the direction recorded when combining with id began.
func directionFor(id dimension.DraggableID, current UserDirection, previous DragImpact) UserDirection {
	c, ok := previous.Combine()
	if !ok || c.DraggableID != id {
		return current
	}
	return c.WhenEntered
}

// isCombiningWith checks the center against two thirds of the candidate:
// the leading two thirds when moving forward, the trailing two thirds when
// moving backward.
func isCombiningWith(axis geometry.Axis, center float64, borderBox geometry.Rect, shift float64, forward bool) bool {
	start := axis.Start(borderBox.Spacing) + shift
	end := axis.End(borderBox.Spacing) + shift
	third := axis.Size(borderBox) / 3

	if forward {
		return geometry.IsWithin(start, end-third, center)
	}
	return geometry.IsWithin(start+third, end, center)
}

func getCombine(args combineArgs) (Combine, bool) {
	if !args.destination.IsCombineEnabled {
		return Combine{}, false
	}

	axis := args.destination.Axis
	center := axis.Line(args.center)

	for _, child := range args.insideDestination {
		id := child.ID()
		if id == args.draggable.ID() {
			continue
		}

		shift := 0.0
		if args.previous.Displaced.IsDisplaced(id) {
			shift = args.previous.DisplacedBy.Value
		}

		direction := directionFor(id, args.direction, args.previous)
		if isCombiningWith(axis, center, child.Page.BorderBox, shift, direction.IsForward(axis)) {
			return Combine{
				DraggableID: id,
				DroppableID: args.destination.ID(),
				WhenEntered: direction,
			}, true
		}
	}
	return Combine{}, false
}
