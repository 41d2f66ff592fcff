package movement

import (
	"cmp"
	"slices"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/visibility"
)

func moveCrossAxis(args Args, source dimension.DroppableDimension) (*Result, error) {
	center := args.PreviousPageBorderBoxCenter
	destination, ok := bestCrossAxisDroppable(args, source, center)
	if !ok {
		return nil, nil
	}

	inside := dimension.InsideDroppable(destination.ID(), args.Snapshot.Draggables)
	anchor, hasAnchor := closestDraggable(destination, inside, center, args.Viewport)
	// items exist but none can be seen
	if len(inside) > 0 && !hasAnchor {
		return nil, nil
	}

	index := 0
	if hasAnchor {
		isHome := args.Draggable.Descriptor.DroppableID == destination.ID()
		index = anchor.Descriptor.Index
		goingBefore := destination.Axis.Line(center) < destination.Axis.Line(anchor.Page.BorderBox.Center)
		if !isHome && !goingBefore {
			index++
		}
	}

	next, err := impact.ReorderAt(impact.ReorderArgs{
		Draggable:     args.Draggable,
		Destination:   destination,
		Draggables:    args.Snapshot.Draggables,
		Index:         index,
		Viewport:      args.Viewport,
		AfterCritical: args.AfterCritical,
	})
	if err != nil {
		return nil, err
	}
	return finalize(args, destination, next)
}

// bestCrossAxisDroppable finds the nearest enabled list beside the source in
// the direction of the move that overlaps it on the main axis.
func bestCrossAxisDroppable(args Args, source dimension.DroppableDimension, center geometry.Position) (dimension.DroppableDimension, bool) {
	active := source.Subject.Active
	if active == nil {
		return dimension.DroppableDimension{}, false
	}
	axis := source.Axis
	forward := args.Command.isForward()
	overlapsSource := func(v float64) bool {
		return geometry.IsWithin(axis.Start(active.Spacing), axis.End(active.Spacing), v)
	}

	var candidates []dimension.DroppableDimension
	for _, d := range dimension.SortedDroppables(args.Snapshot.Droppables) {
		target := d.Subject.Active
		if d.ID() == source.ID() || !d.IsEnabled || target == nil {
			continue
		}
		if d.Descriptor.Type != args.Draggable.Descriptor.Type {
			continue
		}
		if !geometry.IsPartiallyVisibleThroughFrame(args.Viewport.Frame.Spacing, target.Spacing) {
			continue
		}
		if forward && !(axis.CrossEnd(active.Spacing) < axis.CrossEnd(target.Spacing)) {
			continue
		}
		if !forward && !(axis.CrossStart(target.Spacing) < axis.CrossStart(active.Spacing)) {
			continue
		}
		overlapsTarget := func(v float64) bool {
			return geometry.IsWithin(axis.Start(target.Spacing), axis.End(target.Spacing), v)
		}
		if !overlapsSource(axis.Start(target.Spacing)) && !overlapsSource(axis.End(target.Spacing)) &&
			!overlapsTarget(axis.Start(active.Spacing)) && !overlapsTarget(axis.End(active.Spacing)) {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return dimension.DroppableDimension{}, false
	}

	crossStart := func(d dimension.DroppableDimension) float64 {
		return axis.CrossStart(d.Subject.Active.Spacing)
	}
	slices.SortStableFunc(candidates, func(a, b dimension.DroppableDimension) int {
		if forward {
			return cmp.Compare(crossStart(a), crossStart(b))
		}
		return cmp.Compare(crossStart(b), crossStart(a))
	})
	// only the nearest column of lists
	nearest := crossStart(candidates[0])
	candidates = slices.DeleteFunc(candidates, func(d dimension.DroppableDimension) bool {
		return crossStart(d) != nearest
	})
	if len(candidates) == 1 {
		return candidates[0], true
	}

	start := func(d dimension.DroppableDimension) float64 {
		return axis.Start(d.Subject.Active.Spacing)
	}
	var contains []dimension.DroppableDimension
	for _, d := range candidates {
		if geometry.IsWithin(start(d), axis.End(d.Subject.Active.Spacing), axis.Line(center)) {
			contains = append(contains, d)
		}
	}
	if len(contains) > 0 {
		return slices.MinFunc(contains, func(a, b dimension.DroppableDimension) int {
			return cmp.Compare(start(a), start(b))
		}), true
	}

	return slices.MinFunc(candidates, func(a, b dimension.DroppableDimension) int {
		first := geometry.Closest(center, a.Subject.Active.Spacing.Corners())
		second := geometry.Closest(center, b.Subject.Active.Spacing.Corners())
		if first != second {
			return cmp.Compare(first, second)
		}
		return cmp.Compare(start(a), start(b))
	}), true
}

// closestDraggable is the totally visible item nearest to center.
func closestDraggable(destination dimension.DroppableDimension, inside []dimension.DraggableDimension, center geometry.Position, viewport dimension.Viewport) (dimension.DraggableDimension, bool) {
	var visible []dimension.DraggableDimension
	for _, d := range inside {
		if visibility.IsTotallyVisible(visibility.Args{
			Target:                    d.Page.BorderBox.Spacing,
			Destination:               destination,
			Viewport:                  viewport.Frame,
			WithDroppableDisplacement: true,
		}) {
			visible = append(visible, d)
		}
	}
	if len(visible) == 0 {
		return dimension.DraggableDimension{}, false
	}

	distance := func(d dimension.DraggableDimension) float64 {
		return geometry.Distance(center, dimension.WithDroppableDisplacement(destination, d.Page.BorderBox.Center))
	}
	return slices.MinFunc(visible, func(a, b dimension.DraggableDimension) int {
		if c := cmp.Compare(distance(a), distance(b)); c != 0 {
			return c
		}
		return a.Descriptor.Index - b.Descriptor.Index
	}), true
}
