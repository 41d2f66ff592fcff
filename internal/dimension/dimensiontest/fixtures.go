// Package dimensiontest builds dimensions for tests.
package dimensiontest

import (
	"fmt"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
)

// Box builds a box model with no margin, border or padding.
func Box(top, left, bottom, right float64) geometry.BoxModel {
	return geometry.CreateBox(
		geometry.Spacing{Top: top, Left: left, Bottom: bottom, Right: right},
		geometry.Spacing{}, geometry.Spacing{}, geometry.Spacing{},
	)
}

// Draggable builds an item in droppable at index with the given border box.
// The window is not scrolled.
func Draggable(id string, droppable dimension.DroppableID, index int, box geometry.BoxModel) dimension.DraggableDimension {
	return dimension.NewDraggable(dimension.DraggableDescriptor{
		ID:          dimension.DraggableID(id),
		DroppableID: droppable,
		Type:        dimension.DefaultType,
		Index:       index,
	}, box, geometry.Origin)
}

// Droppable builds an enabled list without a scroll container.
func Droppable(id dimension.DroppableID, direction geometry.Direction, box geometry.BoxModel) dimension.DroppableDimension {
	return dimension.NewDroppable(dimension.DroppableArgs{
		Descriptor: dimension.DroppableDescriptor{ID: id, Type: dimension.DefaultType},
		IsEnabled:  true,
		Direction:  direction,
		Client:     box,
		Page:       box,
	})
}

// ScrollableDroppable builds a list clipped by a scroll container frame.
func ScrollableDroppable(id dimension.DroppableID, direction geometry.Direction, box, frame geometry.BoxModel) dimension.DroppableDimension {
	return dimension.NewDroppable(dimension.DroppableArgs{
		Descriptor: dimension.DroppableDescriptor{ID: id, Type: dimension.DefaultType},
		IsEnabled:  true,
		Direction:  direction,
		Client:     box,
		Page:       box,
		Closest: &dimension.Closest{
			Client: frame,
			Page:   frame,
			ScrollSize: dimension.ScrollSize{
				ScrollWidth:  box.MarginBox.Width,
				ScrollHeight: box.MarginBox.Height,
			},
			ShouldClipSubject: true,
		},
	})
}

// VerticalList builds count items of equal size stacked from top, starting at
// left. Ids are "<droppable>-<index>".
func VerticalList(droppable dimension.DroppableID, count int, top, left, width, height float64) []dimension.DraggableDimension {
	items := make([]dimension.DraggableDimension, 0, count)
	for i := range count {
		start := top + float64(i)*height
		items = append(items, Draggable(
			fmt.Sprintf("%s-%d", droppable, i), droppable, i,
			Box(start, left, start+height, left+width),
		))
	}
	return items
}

// HorizontalList builds count items of equal size laid out from left.
func HorizontalList(droppable dimension.DroppableID, count int, top, left, width, height float64) []dimension.DraggableDimension {
	items := make([]dimension.DraggableDimension, 0, count)
	for i := range count {
		start := left + float64(i)*width
		items = append(items, Draggable(
			fmt.Sprintf("%s-%d", droppable, i), droppable, i,
			Box(top, start, top+height, start+width),
		))
	}
	return items
}

// Viewport builds an unscrolled viewport.
func Viewport(width, height float64) dimension.Viewport {
	return dimension.NewViewport(width, height, geometry.Origin, geometry.Origin)
}
