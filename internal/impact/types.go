// Package impact resolves where a dragging item would land and which other
// items move out of its way. Every function here is pure: it reads a
// dimension snapshot and returns a new DragImpact, never mutating its inputs.
package impact

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
)

// DisplacedBy is how far displaced items move along the destination axis.
// Value is signed: positive pushes items forward, negative pulls them back.
type DisplacedBy struct {
	Value float64
	Point geometry.Position
}

// NewDisplacedBy builds the displacement for an item of size displaceBy.
func NewDisplacedBy(axis geometry.Axis, displaceBy geometry.Position, forward bool) DisplacedBy {
	value := axis.Line(displaceBy)
	if !forward {
		value = -value
	}
	return DisplacedBy{Value: value, Point: axis.Patch(value, 0)}
}

// Displacement is a visible displaced item.
type Displacement struct {
	DraggableID   dimension.DraggableID
	ShouldAnimate bool
}

// DisplacementGroups are the items moved aside by the dragging item.
type DisplacementGroups struct {
	// All lists every displaced item, closest to the dragging item first.
	All       []dimension.DraggableID
	Visible   map[dimension.DraggableID]Displacement
	Invisible map[dimension.DraggableID]bool
}

// EmptyGroups returns groups with nothing displaced.
func EmptyGroups() DisplacementGroups {
	return DisplacementGroups{
		Visible:   map[dimension.DraggableID]Displacement{},
		Invisible: map[dimension.DraggableID]bool{},
	}
}

// IsDisplaced reports whether id is in the groups.
func (g DisplacementGroups) IsDisplaced(id dimension.DraggableID) bool {
	if _, ok := g.Visible[id]; ok {
		return true
	}
	return g.Invisible[id]
}

// Location is where a drag currently resolves to: Reorder or Combine.
type Location interface {
	droppable() dimension.DroppableID
}

// Reorder targets an index inside a list.
type Reorder struct {
	Destination dimension.Location
}

func (r Reorder) droppable() dimension.DroppableID { return r.Destination.DroppableID }

// Combine targets another item to merge with.
type Combine struct {
	DraggableID dimension.DraggableID
	DroppableID dimension.DroppableID
	// WhenEntered is the direction the user moved in when combining began.
	WhenEntered UserDirection
}

func (c Combine) droppable() dimension.DroppableID { return c.DroppableID }

// DragImpact is the resolved effect of the current drag position.
type DragImpact struct {
	Displaced   DisplacementGroups
	DisplacedBy DisplacedBy
	// At is nil when the drag is not over any droppable.
	At Location
}

// NoImpact is the impact of a drag that is not over anything.
func NoImpact() DragImpact {
	return DragImpact{Displaced: EmptyGroups()}
}

// Destination returns the droppable the impact targets.
func (i DragImpact) Destination() (dimension.DroppableID, bool) {
	if i.At == nil {
		return "", false
	}
	return i.At.droppable(), true
}

// Reorder returns the reorder location, if any.
func (i DragImpact) Reorder() (Reorder, bool) {
	r, ok := i.At.(Reorder)
	return r, ok
}

// Combine returns the combine location, if any.
func (i DragImpact) Combine() (Combine, bool) {
	c, ok := i.At.(Combine)
	return c, ok
}

// LiftEffect is the baseline computed when an item is lifted.
type LiftEffect struct {
	// DisplacedBy is the dragging item's size on the home axis, forward.
	DisplacedBy DisplacedBy
	// Effected holds the home items after the dragging item.
	Effected map[dimension.DraggableID]bool
}

// IsAfterCritical reports whether id sat after the dragging item at lift.
func (l LiftEffect) IsAfterCritical(id dimension.DraggableID) bool {
	return l.Effected[id]
}
