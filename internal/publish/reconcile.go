// Package publish merges dimensions that appear or disappear while a drag is
// in progress into the drag snapshot.
package publish

import (
	"cmp"
	"maps"
	"slices"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/invariant"
	"github.com/llehouerou/reorder/internal/logger"
)

// Published is one batch of changes collected in a frame.
type Published struct {
	// Additions are measured against the current window and droppable
	// scroll, as a fresh measurement would be.
	Additions []dimension.DraggableDimension
	Removals  []dimension.DraggableID
	// Modified are re-measured droppables whose content changed.
	Modified []dimension.DroppableDimension
}

// IsEmpty reports whether the batch carries no change.
func (p Published) IsEmpty() bool {
	return len(p.Additions) == 0 && len(p.Removals) == 0 && len(p.Modified) == 0
}

// Args are the inputs of Reconcile.
type Args struct {
	Published Published
	Snapshot  dimension.Map
	Viewport  dimension.Viewport
	Critical  dimension.DraggableID
	// PageBorderBoxCenter is where the dragging item currently is.
	PageBorderBoxCenter geometry.Position
	Direction           impact.UserDirection
}

// Result is the drag state after a batch was merged.
type Result struct {
	Snapshot dimension.Map
	// Critical is the dragging item in the merged snapshot. Its index may
	// have changed.
	Critical dimension.DraggableDimension
	// Shift is how far the dragging item moved in the merged snapshot.
	// Initial and current drag positions move by the same amount.
	Shift               geometry.Position
	PageBorderBoxCenter geometry.Position
	Impact              impact.DragImpact
	LiftImpact          impact.DragImpact
	AfterCritical       impact.LiftEffect
}

const op invariant.Op = "publish.Reconcile"

// Reconcile merges a published batch into the snapshot and resolves the
// impact of the dragging item against the merged dimensions, starting from
// its home impact.
func Reconcile(args Args) (Result, error) {
	original, ok := args.Snapshot.Draggables[args.Critical]
	if !ok {
		return Result{}, invariant.New(op, "dragging item %q is not in the snapshot", args.Critical)
	}
	for _, id := range args.Published.Removals {
		if id == args.Critical {
			return Result{}, invariant.New(op, "cannot remove the dragging item %q", id)
		}
	}

	additions, err := shiftAdditions(args.Published.Additions, args.Snapshot.Droppables, args.Viewport)
	if err != nil {
		return Result{}, err
	}

	droppables, err := patchModified(args.Snapshot.Droppables, args.Published.Modified, args.Viewport.Scroll.Initial)
	if err != nil {
		return Result{}, err
	}

	draggables := merge(args.Snapshot.Draggables, additions, args.Published.Removals, droppables)
	snapshot := dimension.Map{Draggables: draggables, Droppables: droppables}

	updated := draggables[args.Critical]
	home, ok := droppables[updated.Descriptor.DroppableID]
	if !ok {
		return Result{}, invariant.New(op, "home %q of %q is missing", updated.Descriptor.DroppableID, args.Critical)
	}

	liftImpact, effect, err := impact.GetLiftEffect(impact.LiftArgs{
		Draggable:  updated,
		Home:       home,
		Draggables: draggables,
		Viewport:   args.Viewport,
	})
	if err != nil {
		return Result{}, err
	}

	shift := updated.Client.BorderBox.Center.Subtract(original.Client.BorderBox.Center)
	center := args.PageBorderBoxCenter.Add(shift)

	return Result{
		Snapshot:            snapshot,
		Critical:            updated,
		Shift:               shift,
		PageBorderBoxCenter: center,
		Impact: impact.Compute(impact.ComputeArgs{
			PageBorderBoxCenter: center,
			Draggable:           updated,
			Draggables:          draggables,
			Droppables:          droppables,
			Previous:            liftImpact,
			Viewport:            args.Viewport,
			Direction:           args.Direction,
			AfterCritical:       effect,
		}),
		LiftImpact:    liftImpact,
		AfterCritical: effect,
	}, nil
}

// shiftAdditions unwinds the window and droppable scroll that happened since
// the drag started, so additions line up with dimensions captured at lift.
func shiftAdditions(
	additions []dimension.DraggableDimension,
	droppables map[dimension.DroppableID]dimension.DroppableDimension,
	viewport dimension.Viewport,
) ([]dimension.DraggableDimension, error) {
	shifted := make([]dimension.DraggableDimension, 0, len(additions))
	for _, d := range additions {
		droppable, ok := droppables[d.Descriptor.DroppableID]
		if !ok {
			return nil, invariant.New(op, "added item %q belongs to unknown droppable %q", d.ID(), d.Descriptor.DroppableID)
		}
		change := viewport.Scroll.Diff.Value
		if droppable.Frame != nil {
			change = change.Add(droppable.Frame.Scroll.Diff.Value)
		}
		client := d.Client.Offset(change)
		d.Client = client
		d.Page = client.WithScroll(viewport.Scroll.Initial)
		d.Placeholder = dimension.Placeholder{Client: client}
		shifted = append(shifted, d)
	}
	return shifted, nil
}

// patchModified resizes droppables in place. Only the size of a droppable
// may change during a drag: its position, its spacing and its scroll
// container frame are fixed.
func patchModified(
	droppables map[dimension.DroppableID]dimension.DroppableDimension,
	modified []dimension.DroppableDimension,
	initialWindowScroll geometry.Position,
) (map[dimension.DroppableID]dimension.DroppableDimension, error) {
	if len(modified) == 0 {
		return droppables, nil
	}

	log := logger.Component("publish")
	patched := maps.Clone(droppables)
	for _, provided := range modified {
		existing, ok := droppables[provided.ID()]
		if !ok {
			return nil, invariant.New(op, "modified droppable %q is not in the snapshot", provided.ID())
		}
		if err := checkUnchanged(existing, provided); err != nil {
			log.Warn("rejected droppable change during drag", "droppable", provided.ID(), "error", err)
			return nil, err
		}

		old := existing.Client.BorderBox
		fresh := provided.Client.BorderBox
		client := geometry.CreateBox(geometry.Spacing{
			Top:    old.Top,
			Left:   old.Left,
			Right:  old.Left + fresh.Width,
			Bottom: old.Top + fresh.Height,
		}, existing.Client.Margin, existing.Client.Border, existing.Client.Padding)

		frame := existing.Frame
		resized := dimension.NewDroppable(dimension.DroppableArgs{
			Descriptor:       provided.Descriptor,
			IsEnabled:        provided.IsEnabled,
			IsCombineEnabled: provided.IsCombineEnabled,
			Direction:        provided.Axis.Direction,
			Client:           client,
			Page:             client.WithScroll(initialWindowScroll),
			Closest: &dimension.Closest{
				Client:            frame.FrameClient,
				Page:              frame.FrameClient.WithScroll(initialWindowScroll),
				ScrollSize:        provided.Frame.ScrollSize,
				ShouldClipSubject: frame.ShouldClipSubject,
				Scroll:            frame.Scroll.Initial,
			},
		})
		scrolled, err := dimension.Scroll(resized, frame.Scroll.Current)
		if err != nil {
			return nil, err
		}
		patched[scrolled.ID()] = scrolled
	}
	return patched, nil
}

func checkUnchanged(existing, provided dimension.DroppableDimension) error {
	id := provided.ID()
	if existing.Frame == nil || provided.Frame == nil {
		return invariant.New(op, "droppable %q must be a scroll container to change during a drag", id)
	}
	if err := checkSpacing(id, "droppable", existing.Client, provided.Client); err != nil {
		return err
	}
	oldFrame, newFrame := existing.Frame.FrameClient, provided.Frame.FrameClient
	if err := checkSpacing(id, "scroll container", oldFrame, newFrame); err != nil {
		return err
	}
	return invariant.Check(
		oldFrame.BorderBox.Width == newFrame.BorderBox.Width && oldFrame.BorderBox.Height == newFrame.BorderBox.Height,
		op, "the scroll container of %q cannot change size during a drag", id)
}

func checkSpacing(id dimension.DroppableID, what string, old, fresh geometry.BoxModel) error {
	switch {
	case !old.Margin.Equal(fresh.Margin):
		return invariant.New(op, "cannot change the margin of %s %q during a drag", what, id)
	case !old.Border.Equal(fresh.Border):
		return invariant.New(op, "cannot change the border of %s %q during a drag", what, id)
	case !old.Padding.Equal(fresh.Padding):
		return invariant.New(op, "cannot change the padding of %s %q during a drag", what, id)
	}
	return nil
}

// merge applies removals and additions. Items of every touched list are
// shifted along its axis to close the gaps left by removals and open room
// for additions, then re-indexed from zero.
func merge(
	existing map[dimension.DraggableID]dimension.DraggableDimension,
	additions []dimension.DraggableDimension,
	removals []dimension.DraggableID,
	droppables map[dimension.DroppableID]dimension.DroppableDimension,
) map[dimension.DraggableID]dimension.DraggableDimension {
	removed := make(map[dimension.DraggableID]bool, len(removals))
	touched := make(map[dimension.DroppableID]bool)
	for _, id := range removals {
		if d, ok := existing[id]; ok {
			removed[id] = true
			touched[d.Descriptor.DroppableID] = true
		}
	}
	added := make(map[dimension.DroppableID][]dimension.DraggableDimension)
	for _, d := range additions {
		if old, ok := existing[d.ID()]; ok {
			// a re-added item replaces its old measurement
			removed[d.ID()] = true
			touched[old.Descriptor.DroppableID] = true
		}
		added[d.Descriptor.DroppableID] = append(added[d.Descriptor.DroppableID], d)
		touched[d.Descriptor.DroppableID] = true
	}

	merged := make(map[dimension.DraggableID]dimension.DraggableDimension, len(existing)+len(additions))
	for id, d := range existing {
		if !removed[id] && !touched[d.Descriptor.DroppableID] {
			merged[id] = d
		}
	}
	for _, id := range slices.Sorted(maps.Keys(touched)) {
		for _, d := range relayout(id, existing, removed, added[id], droppables[id].Axis) {
			merged[d.ID()] = d
		}
	}
	return merged
}

type slot struct {
	item  dimension.DraggableDimension
	isNew bool
}

func relayout(
	id dimension.DroppableID,
	existing map[dimension.DraggableID]dimension.DraggableDimension,
	removed map[dimension.DraggableID]bool,
	additions []dimension.DraggableDimension,
	axis geometry.Axis,
) []dimension.DraggableDimension {
	size := func(d dimension.DraggableDimension) float64 {
		return axis.Line(d.DisplaceBy)
	}

	var kept []slot
	pulled := 0.0
	for _, d := range dimension.InsideDroppable(id, existing) {
		if removed[d.ID()] {
			pulled += size(d)
			continue
		}
		kept = append(kept, slot{item: d.Offset(axis.Patch(-pulled, 0))})
	}

	slices.SortStableFunc(additions, func(a, b dimension.DraggableDimension) int {
		return cmp.Compare(a.Descriptor.Index, b.Descriptor.Index)
	})
	list := kept
	for _, d := range additions {
		at := min(max(d.Descriptor.Index, 0), len(list))
		list = slices.Insert(list, at, slot{item: d, isNew: true})
	}

	result := make([]dimension.DraggableDimension, 0, len(list))
	pushed := 0.0
	for i, s := range list {
		d := s.item
		if s.isNew {
			pushed += size(d)
		} else if pushed != 0 {
			d = d.Offset(axis.Patch(pushed, 0))
		}
		d.Descriptor.Index = i
		result = append(result, d)
	}
	return result
}
