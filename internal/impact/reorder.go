package impact

import (
	"slices"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/invariant"
)

type reorderArgs struct {
	center            geometry.Position
	draggable         dimension.DraggableDimension
	destination       dimension.DroppableDimension
	insideDestination []dimension.DraggableDimension
	previous          DragImpact
	viewport          dimension.Viewport
	direction         UserDirection
	afterCritical     LiftEffect
}

// inHomeList resolves a drag over the list the item was lifted from. Only the
// items on the side of the lift position the center is on can be displaced.
// Ties at an exact edge resolve to the earlier index.
func inHomeList(args reorderArgs) DragImpact {
	axis := args.destination.Axis
	original := axis.Line(args.draggable.Page.BorderBox.Center)
	current := axis.Line(args.center)
	size := axis.Line(args.draggable.DisplaceBy)

	inFrontOfStart := current > original
	forward := args.direction.IsForward(axis)
	towardStart := forward != inFrontOfStart

	var displaced []dimension.DraggableDimension
	for _, child := range args.insideDestination {
		id := child.ID()
		if id == args.draggable.ID() {
			continue
		}
		if args.afterCritical.IsAfterCritical(id) != inFrontOfStart {
			continue
		}

		wasDisplaced := args.previous.Displaced.IsDisplaced(id)
		start := axis.Start(child.Page.BorderBox.Spacing)
		end := axis.End(child.Page.BorderBox.Spacing)

		if inFrontOfStart {
			if towardStart {
				shift := 0.0
				if wasDisplaced {
					shift = -size
				}
				if current > end+shift {
					displaced = append(displaced, child)
				}
				continue
			}
			if wasDisplaced || current > start {
				displaced = append(displaced, child)
			}
			continue
		}

		if towardStart {
			shift := 0.0
			if wasDisplaced {
				shift = size
			}
			if current <= start+shift {
				displaced = append(displaced, child)
			}
			continue
		}
		if wasDisplaced || current <= end {
			displaced = append(displaced, child)
		}
	}

	// closest to the dragging item first
	if inFrontOfStart {
		slices.Reverse(displaced)
	}

	home := args.draggable.Descriptor.Index
	index := home - len(displaced)
	if inFrontOfStart {
		index = home + len(displaced)
	}

	return buildReorder(args, displaced, index, !inFrontOfStart)
}

// inForeignList resolves a drag over another list. The item goes before the
// first item whose visible center is at or after the drag center and pushes
// the rest of the list forward.
func inForeignList(args reorderArgs) DragImpact {
	axis := args.destination.Axis
	current := axis.Line(args.center)
	size := axis.Line(args.draggable.DisplaceBy)

	index := len(args.insideDestination)
	for i, child := range args.insideDestination {
		center := axis.Line(child.Page.BorderBox.Center)
		if args.previous.Displaced.IsDisplaced(child.ID()) {
			center += size
		}
		if current <= center {
			index = i
			break
		}
	}

	return buildReorder(args, args.insideDestination[index:], index, true)
}

func buildReorder(args reorderArgs, displaced []dimension.DraggableDimension, index int, forward bool) DragImpact {
	displacedBy := NewDisplacedBy(args.destination.Axis, args.draggable.DisplaceBy, forward)
	return DragImpact{
		Displaced: GetDisplacementGroups(GroupsArgs{
			Displaced:   displaced,
			Destination: args.destination,
			DisplacedBy: displacedBy,
			Last:        &args.previous.Displaced,
			Viewport:    args.viewport.Frame,
		}),
		DisplacedBy: displacedBy,
		At: Reorder{Destination: dimension.Location{
			DroppableID: args.destination.ID(),
			Index:       index,
		}},
	}
}

// ReorderArgs are the inputs of ReorderAt.
type ReorderArgs struct {
	Draggable   dimension.DraggableDimension
	Destination dimension.DroppableDimension
	// Draggables is every item in the snapshot.
	Draggables    map[dimension.DraggableID]dimension.DraggableDimension
	Index         int
	Last          *DisplacementGroups
	Viewport      dimension.Viewport
	AfterCritical LiftEffect
}

// ReorderAt builds the impact of the dragging item resting at index in
// destination, independent of where the pointer is.
func ReorderAt(args ReorderArgs) (DragImpact, error) {
	const op = "impact.ReorderAt"

	inside := dimension.InsideDroppable(args.Destination.ID(), args.Draggables)
	isHome := args.Draggable.Descriptor.DroppableID == args.Destination.ID()
	last := args.Last
	if last == nil {
		empty := EmptyGroups()
		last = &empty
	}
	build := func(displaced []dimension.DraggableDimension, forward bool) DragImpact {
		return buildReorder(reorderArgs{
			draggable:   args.Draggable,
			destination: args.Destination,
			previous:    DragImpact{Displaced: *last},
			viewport:    args.Viewport,
		}, displaced, args.Index, forward)
	}

	if !isHome {
		if err := invariant.Check(args.Index >= 0 && args.Index <= len(inside), op,
			"index %d out of range for %q with %d items", args.Index, args.Destination.ID(), len(inside)); err != nil {
			return DragImpact{}, err
		}
		return build(inside[args.Index:], true), nil
	}

	if err := invariant.Check(args.Index >= 0 && args.Index < len(inside), op,
		"index %d out of range for home %q with %d items", args.Index, args.Destination.ID(), len(inside)); err != nil {
		return DragImpact{}, err
	}

	home := args.Draggable.Descriptor.Index
	if args.Index == home {
		displacedBy := NewDisplacedBy(args.Destination.Axis, args.Draggable.DisplaceBy, true)
		return homeImpact(args.Draggable, displacedBy), nil
	}

	var displaced []dimension.DraggableDimension
	forward := args.Index < home
	for _, child := range inside {
		if child.ID() == args.Draggable.ID() {
			continue
		}
		i := child.Descriptor.Index
		if forward && i >= args.Index && i < home {
			displaced = append(displaced, child)
		}
		if !forward && i > home && i <= args.Index {
			displaced = append(displaced, child)
		}
	}
	if !forward {
		slices.Reverse(displaced)
	}

	if err := invariant.Check(len(displaced) > 0, op,
		"moving %q to index %d must displace at least one item", args.Draggable.ID(), args.Index); err != nil {
		return DragImpact{}, err
	}
	return build(displaced, forward), nil
}
