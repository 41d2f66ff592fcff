package dimension

import (
	"maps"
	"slices"
	"strings"
)

// Map is the snapshot of every dimension taking part in a drag.
type Map struct {
	Draggables map[DraggableID]DraggableDimension
	Droppables map[DroppableID]DroppableDimension
}

// NewMap indexes the given dimensions.
func NewMap(draggables []DraggableDimension, droppables []DroppableDimension) Map {
	m := Map{
		Draggables: make(map[DraggableID]DraggableDimension, len(draggables)),
		Droppables: make(map[DroppableID]DroppableDimension, len(droppables)),
	}
	for _, d := range draggables {
		m.Draggables[d.ID()] = d
	}
	for _, d := range droppables {
		m.Droppables[d.ID()] = d
	}
	return m
}

// WithDroppable returns a copy of the map with one droppable replaced.
func (m Map) WithDroppable(d DroppableDimension) Map {
	droppables := maps.Clone(m.Droppables)
	if droppables == nil {
		droppables = make(map[DroppableID]DroppableDimension, 1)
	}
	droppables[d.ID()] = d
	return Map{Draggables: m.Draggables, Droppables: droppables}
}

// InsideDroppable returns the items of a list ordered by index.
func InsideDroppable(id DroppableID, draggables map[DraggableID]DraggableDimension) []DraggableDimension {
	var inside []DraggableDimension
	for _, d := range draggables {
		if d.Descriptor.DroppableID == id {
			inside = append(inside, d)
		}
	}
	slices.SortFunc(inside, func(a, b DraggableDimension) int {
		if a.Descriptor.Index != b.Descriptor.Index {
			return a.Descriptor.Index - b.Descriptor.Index
		}
		return strings.Compare(string(a.ID()), string(b.ID()))
	})
	return inside
}

// SortedDroppables returns the droppables ordered by id so that iteration is
// deterministic.
func SortedDroppables(droppables map[DroppableID]DroppableDimension) []DroppableDimension {
	ids := slices.Sorted(maps.Keys(droppables))
	list := make([]DroppableDimension, 0, len(ids))
	for _, id := range ids {
		list = append(list, droppables[id])
	}
	return list
}
