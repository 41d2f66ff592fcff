package drag

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/impact"
)

// withPlaceholder reserves room for the dragging item in the foreign list it
// is over and releases it from any list it left. The home list never needs
// one since the item already takes room there.
func withPlaceholder(m dimension.Map, draggable dimension.DraggableDimension, next impact.DragImpact) (dimension.Map, error) {
	target, isOver := next.Destination()
	if isOver && target == draggable.Descriptor.DroppableID {
		isOver = false
	}

	out := m
	for _, d := range dimension.SortedDroppables(m.Droppables) {
		if d.Subject.WithPlaceholder == nil || (isOver && d.ID() == target) {
			continue
		}
		removed, err := dimension.RemovePlaceholder(d)
		if err != nil {
			return m, err
		}
		out = out.WithDroppable(removed)
	}

	if !isOver {
		return out, nil
	}
	d, ok := out.Droppables[target]
	if !ok || d.Subject.WithPlaceholder != nil {
		return out, nil
	}
	added, err := dimension.AddPlaceholder(d, draggable, out.Draggables)
	if err != nil {
		return m, err
	}
	return out.WithDroppable(added), nil
}

// withoutPlaceholders strips every placeholder, giving the dimensions as
// they were measured.
func withoutPlaceholders(m dimension.Map) (dimension.Map, error) {
	return withPlaceholder(m, dimension.DraggableDimension{}, impact.NoImpact())
}
