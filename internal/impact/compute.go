package impact

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
)

// ComputeArgs are the inputs of Compute.
type ComputeArgs struct {
	PageBorderBoxCenter geometry.Position
	Draggable           dimension.DraggableDimension
	Draggables          map[dimension.DraggableID]dimension.DraggableDimension
	Droppables          map[dimension.DroppableID]dimension.DroppableDimension
	Previous            DragImpact
	Viewport            dimension.Viewport
	Direction           UserDirection
	AfterCritical       LiftEffect
}

// Compute resolves the impact of the dragging item centered at
// PageBorderBoxCenter.
func Compute(args ComputeArgs) DragImpact {
	destination, ok := DroppableOver(OverArgs{
		Target:     args.PageBorderBoxCenter,
		Draggable:  args.Draggable,
		Droppables: args.Droppables,
		Previous:   args.Previous,
	})
	if !ok || !destination.IsEnabled {
		return NoImpact()
	}

	inside := dimension.InsideDroppable(destination.ID(), args.Draggables)
	// where the item is relative to the scrolled content of the droppable
	center := dimension.WithDroppableScroll(destination, args.PageBorderBoxCenter)

	if combine, ok := getCombine(combineArgs{
		center:            center,
		draggable:         args.Draggable,
		destination:       destination,
		insideDestination: inside,
		previous:          args.Previous,
		direction:         args.Direction,
	}); ok {
		return withCombine(args, destination, combine)
	}

	reorder := reorderArgs{
		center:            center,
		draggable:         args.Draggable,
		destination:       destination,
		insideDestination: inside,
		previous:          args.Previous,
		viewport:          args.Viewport,
		direction:         args.Direction,
		afterCritical:     args.AfterCritical,
	}
	if args.Draggable.Descriptor.DroppableID == destination.ID() {
		return inHomeList(reorder)
	}
	return inForeignList(reorder)
}

// withCombine keeps the displacement of the list being combined in, since
// combining does not move anything.
func withCombine(args ComputeArgs, destination dimension.DroppableDimension, combine Combine) DragImpact {
	if previous, ok := args.Previous.Destination(); ok && previous == destination.ID() {
		return DragImpact{
			Displaced:   args.Previous.Displaced,
			DisplacedBy: args.Previous.DisplacedBy,
			At:          combine,
		}
	}
	return DragImpact{
		Displaced:   EmptyGroups(),
		DisplacedBy: NewDisplacedBy(destination.Axis, args.Draggable.DisplaceBy, true),
		At:          combine,
	}
}

// RecomputeArgs are the inputs of Recompute.
type RecomputeArgs struct {
	Impact      DragImpact
	Destination dimension.DroppableDimension
	Draggables  map[dimension.DraggableID]dimension.DraggableDimension
	Viewport    dimension.Viewport
	// ForceShouldAnimate overrides the animation flag when set.
	ForceShouldAnimate *bool
}

// Recompute refreshes which displaced items are visible, for example after a
// scroll. Which items are displaced does not change.
func Recompute(args RecomputeArgs) DragImpact {
	displaced := lookup(args.Impact.Displaced.All, args.Draggables)
	return DragImpact{
		Displaced: GetDisplacementGroups(GroupsArgs{
			Displaced:          displaced,
			Destination:        args.Destination,
			DisplacedBy:        args.Impact.DisplacedBy,
			Last:               &args.Impact.Displaced,
			Viewport:           args.Viewport.Frame,
			ForceShouldAnimate: args.ForceShouldAnimate,
		}),
		DisplacedBy: args.Impact.DisplacedBy,
		At:          args.Impact.At,
	}
}
