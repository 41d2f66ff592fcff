package dimension

import (
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/invariant"
)

// AddPlaceholder reserves room for draggable at the end of a foreign list.
// The subject only grows when the list does not already have enough space.
func AddPlaceholder(d DroppableDimension, draggable DraggableDimension, draggables map[DraggableID]DraggableDimension) (DroppableDimension, error) {
	if d.Subject.WithPlaceholder != nil {
		return d, invariant.New("dimension.AddPlaceholder", "droppable %q already has a placeholder", d.ID())
	}

	axis := d.Axis
	size := axis.Patch(axis.Line(draggable.DisplaceBy), 0)
	growth := requiredGrowth(d, size, draggables)

	added := &PlaceholderInSubject{
		PlaceholderSize: size,
		IncreasedBy:     growth,
	}

	if d.Frame == nil {
		d.Subject = subjectFor(d.Subject.Page, added, axis, nil)
		return d, nil
	}

	oldMax := d.Frame.Scroll.Max
	added.OldFrameMaxScroll = &oldMax
	newMax := oldMax
	if growth != nil {
		newMax = oldMax.Add(*growth)
	}

	frame := *d.Frame
	frame.Scroll.Max = newMax
	d.Frame = &frame
	d.Subject = subjectFor(d.Subject.Page, added, axis, &frame)
	return d, nil
}

// RemovePlaceholder undoes AddPlaceholder.
func RemovePlaceholder(d DroppableDimension) (DroppableDimension, error) {
	added := d.Subject.WithPlaceholder
	if added == nil {
		return d, invariant.New("dimension.RemovePlaceholder", "droppable %q has no placeholder", d.ID())
	}

	if d.Frame == nil {
		d.Subject = subjectFor(d.Subject.Page, nil, d.Axis, nil)
		return d, nil
	}

	if added.OldFrameMaxScroll == nil {
		return d, invariant.New("dimension.RemovePlaceholder", "expected droppable %q to record its old max scroll", d.ID())
	}

	frame := *d.Frame
	frame.Scroll.Max = *added.OldFrameMaxScroll
	d.Frame = &frame
	d.Subject = subjectFor(d.Subject.Page, nil, d.Axis, &frame)
	return d, nil
}

func requiredGrowth(d DroppableDimension, placeholderSize geometry.Position, draggables map[DraggableID]DraggableDimension) *geometry.Position {
	axis := d.Axis
	available := axis.Size(d.Subject.Page.ContentBox)

	used := 0.0
	for _, item := range InsideDroppable(d.ID(), draggables) {
		used += axis.Size(item.Client.MarginBox)
	}

	needsToGrowBy := used + axis.Line(placeholderSize) - available
	if needsToGrowBy <= 0 {
		return nil
	}
	growth := axis.Patch(needsToGrowBy, 0)
	return &growth
}
