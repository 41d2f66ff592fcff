package impact

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/invariant"
)

// RelativeArgs position a moving box next to another box.
type RelativeArgs struct {
	Axis           geometry.Axis
	MoveRelativeTo geometry.BoxModel
	IsMoving       geometry.BoxModel
}

func distanceFromStartToCenter(axis geometry.Axis, box geometry.BoxModel) float64 {
	return axis.Start(box.Margin) + axis.Size(box.BorderBox)/2
}

func distanceFromEndToCenter(axis geometry.Axis, box geometry.BoxModel) float64 {
	return axis.End(box.Margin) + axis.Size(box.BorderBox)/2
}

func crossAxisCenter(axis geometry.Axis, target geometry.Rect, isMoving geometry.BoxModel) float64 {
	return axis.CrossStart(target.Spacing) + axis.CrossStart(isMoving.Margin) + axis.CrossSize(isMoving.BorderBox)/2
}

// GoAfter returns the border box center of IsMoving placed right after
// MoveRelativeTo.
func GoAfter(args RelativeArgs) geometry.Position {
	axis := args.Axis
	target := args.MoveRelativeTo.MarginBox
	return axis.Patch(
		axis.End(target.Spacing)+distanceFromStartToCenter(axis, args.IsMoving),
		crossAxisCenter(axis, target, args.IsMoving),
	)
}

// GoBefore returns the border box center of IsMoving placed right before
// MoveRelativeTo.
func GoBefore(args RelativeArgs) geometry.Position {
	axis := args.Axis
	target := args.MoveRelativeTo.MarginBox
	return axis.Patch(
		axis.Start(target.Spacing)-distanceFromEndToCenter(axis, args.IsMoving),
		crossAxisCenter(axis, target, args.IsMoving),
	)
}

// GoIntoStart returns the border box center of IsMoving placed at the start
// of the content box of MoveRelativeTo.
func GoIntoStart(args RelativeArgs) geometry.Position {
	axis := args.Axis
	target := args.MoveRelativeTo.ContentBox
	return axis.Patch(
		axis.Start(target.Spacing)+distanceFromStartToCenter(axis, args.IsMoving),
		crossAxisCenter(axis, target, args.IsMoving),
	)
}

// CenterArgs are the inputs of PageBorderBoxCenter.
type CenterArgs struct {
	Impact     DragImpact
	Draggable  dimension.DraggableDimension
	Draggables map[dimension.DraggableID]dimension.DraggableDimension
	Droppables map[dimension.DroppableID]dimension.DroppableDimension
}

// PageBorderBoxCenter returns where the center of the dragging item rests
// for an impact, including the scroll of the destination.
func PageBorderBoxCenter(args CenterArgs) (geometry.Position, error) {
	const op = "impact.PageBorderBoxCenter"

	original := args.Draggable.Page.BorderBox.Center
	id, ok := args.Impact.Destination()
	if !ok {
		return original, nil
	}
	destination, ok := args.Droppables[id]
	if !ok {
		return geometry.Position{}, invariant.New(op, "unknown droppable %q", id)
	}

	var center geometry.Position
	switch at := args.Impact.At.(type) {
	case Combine:
		target, ok := args.Draggables[at.DraggableID]
		if !ok {
			return geometry.Position{}, invariant.New(op, "unknown combine target %q", at.DraggableID)
		}
		center = target.Page.BorderBox.Center
		if args.Impact.Displaced.IsDisplaced(at.DraggableID) {
			center = center.Add(args.Impact.DisplacedBy.Point)
		}
	case Reorder:
		var err error
		center, err = reorderCenter(args, destination, at)
		if err != nil {
			return geometry.Position{}, err
		}
	}

	return dimension.WithDroppableDisplacement(destination, center), nil
}

func reorderCenter(args CenterArgs, destination dimension.DroppableDimension, at Reorder) (geometry.Position, error) {
	axis := destination.Axis
	draggable := args.Draggable
	isHome := draggable.Descriptor.DroppableID == destination.ID()

	if isHome && at.Destination.Index == draggable.Descriptor.Index {
		return draggable.Page.BorderBox.Center, nil
	}

	if all := args.Impact.Displaced.All; len(all) > 0 {
		closest, ok := args.Draggables[all[0]]
		if !ok {
			return geometry.Position{}, invariant.New("impact.PageBorderBoxCenter", "unknown displaced item %q", all[0])
		}
		rel := RelativeArgs{
			Axis:           axis,
			MoveRelativeTo: closest.Page.Offset(args.Impact.DisplacedBy.Point),
			IsMoving:       draggable.Page,
		}
		// pulled back items sit before the dragging item
		if args.Impact.DisplacedBy.Value < 0 {
			return GoAfter(rel), nil
		}
		return GoBefore(rel), nil
	}

	var inside []dimension.DraggableDimension
	for _, d := range dimension.InsideDroppable(destination.ID(), args.Draggables) {
		if d.ID() != draggable.ID() {
			inside = append(inside, d)
		}
	}
	if len(inside) == 0 {
		return GoIntoStart(RelativeArgs{Axis: axis, MoveRelativeTo: destination.Page, IsMoving: draggable.Page}), nil
	}
	return GoAfter(RelativeArgs{Axis: axis, MoveRelativeTo: inside[len(inside)-1].Page, IsMoving: draggable.Page}), nil
}
