// Package dimension holds the snapshot of every draggable and droppable
// measured for a drag. Dimensions are values: updating one means building a
// new one and swapping it into a new Map.
package dimension

import "github.com/llehouerou/reorder/internal/geometry"

// DraggableID identifies an item for its whole lifetime.
type DraggableID string

// DroppableID identifies a list.
type DroppableID string

// TypeID is a compatibility tag: items only move between lists of the same type.
type TypeID string

// DefaultType is used when no type is given.
const DefaultType TypeID = "DEFAULT"

// DraggableDescriptor locates an item.
type DraggableDescriptor struct {
	ID          DraggableID
	DroppableID DroppableID
	Type        TypeID
	Index       int
}

// Location is a position inside a list.
type Location struct {
	DroppableID DroppableID
	Index       int
}

// HomeLocation is where the item sits before it is dragged.
func (d DraggableDescriptor) HomeLocation() Location {
	return Location{DroppableID: d.DroppableID, Index: d.Index}
}

// Placeholder is the space a lifted item leaves behind.
type Placeholder struct {
	Client geometry.BoxModel
}

// DraggableDimension is the measured geometry of an item.
type DraggableDimension struct {
	Descriptor  DraggableDescriptor
	Placeholder Placeholder
	// Client is relative to the viewport, Page to the document.
	Client geometry.BoxModel
	Page   geometry.BoxModel
	// DisplaceBy is how far this item pushes others when it is dragged.
	DisplaceBy geometry.Position
}

// ID is a shortcut for Descriptor.ID.
func (d DraggableDimension) ID() DraggableID {
	return d.Descriptor.ID
}

// NewDraggable measures an item from its client box and the window scroll.
func NewDraggable(descriptor DraggableDescriptor, client geometry.BoxModel, windowScroll geometry.Position) DraggableDimension {
	return DraggableDimension{
		Descriptor:  descriptor,
		Placeholder: Placeholder{Client: client},
		Client:      client,
		Page:        client.WithScroll(windowScroll),
		DisplaceBy: geometry.Position{
			X: client.MarginBox.Width,
			Y: client.MarginBox.Height,
		},
	}
}

// Offset moves both the client and page boxes by change.
func (d DraggableDimension) Offset(change geometry.Position) DraggableDimension {
	d.Client = d.Client.Offset(change)
	d.Page = d.Page.Offset(change)
	d.Placeholder = Placeholder{Client: d.Client}
	return d
}
