package impact

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
)

// OverArgs are the inputs of DroppableOver.
type OverArgs struct {
	Target     geometry.Position
	Draggable  dimension.DraggableDimension
	Droppables map[dimension.DroppableID]dimension.DroppableDimension
	Previous   DragImpact
}

// DroppableOver returns the droppable whose active subject contains target.
// Only droppables of the dragging item's type are considered. When several
// overlap, the previous destination wins, then the smallest one. A target
// over no droppable reports false; the previous destination is not kept.
func DroppableOver(args OverArgs) (dimension.DroppableDimension, bool) {
	var candidates []dimension.DroppableDimension
	for _, d := range dimension.SortedDroppables(args.Droppables) {
		if d.Descriptor.Type != args.Draggable.Descriptor.Type {
			continue
		}
		active := d.Subject.Active
		if active == nil {
			continue
		}
		if geometry.IsPositionInFrame(active.Spacing, args.Target) {
			candidates = append(candidates, d)
		}
	}

	switch len(candidates) {
	case 0:
		return dimension.DroppableDimension{}, false
	case 1:
		return candidates[0], true
	}

	if previous, ok := args.Previous.Destination(); ok {
		for _, c := range candidates {
			if c.ID() == previous {
				return c, true
			}
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if area(*c.Subject.Active) < area(*best.Subject.Active) {
			best = c
		}
	}
	return best, true
}

func area(r geometry.Rect) float64 {
	return r.Width * r.Height
}
