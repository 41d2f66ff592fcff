package drag

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/invariant"
)

// CombineResult names the item the dragging item was dropped onto.
type CombineResult struct {
	DraggableID dimension.DraggableID
	DroppableID dimension.DroppableID
}

// Result describes a finished drag for the owner of the lists.
type Result struct {
	DraggableID dimension.DraggableID
	Type        dimension.TypeID
	Source      dimension.Location
	Mode        Mode
	Reason      impact.DropReason
	// Destination is nil when the item was not dropped on a list or the drag
	// was cancelled.
	Destination *dimension.Location
	// Combine is set when the item was dropped onto another item.
	Combine *CombineResult
}

// Outcome is what the host needs to finish a drag visually.
type Outcome struct {
	Result Result
	// Impact is the layout to animate into.
	Impact                 impact.DragImpact
	DidDropInsideDroppable bool
	// NewHomeClientOffset is where the dragging item comes to rest, relative
	// to where it was lifted, in client space.
	NewHomeClientOffset geometry.Position
	// From and To are the client centers of the item when it was dropped and
	// where it comes to rest.
	From geometry.Position
	To   geometry.Position
}

// Drop ends the drag at its current impact. While dimensions are being
// collected the drop waits for the next Publish and Drop returns nil.
func (s *Session) Drop() (*Outcome, error) {
	return s.end(impact.ReasonDrop)
}

// Cancel ends the drag and returns everything home.
func (s *Session) Cancel() (*Outcome, error) {
	return s.end(impact.ReasonCancel)
}

func (s *Session) end(reason impact.DropReason) (*Outcome, error) {
	switch s.phase {
	case PhaseIdle:
		return nil, ErrNotDragging
	case PhaseCollecting:
		s.phase = PhaseDropPending
		s.pendingReason = reason
		return nil, nil
	case PhaseDropPending:
		// a cancel overrides a pending drop
		if reason == impact.ReasonCancel {
			s.pendingReason = reason
		}
		return nil, nil
	}
	return s.complete(reason)
}

func (s *Session) complete(reason impact.DropReason) (*Outcome, error) {
	draggable := s.draggable()
	home, ok := s.dims.Droppables[s.critical.DroppableID]
	if !ok {
		return nil, s.fail(invariant.New("drag.Drop", "home %q of %q is missing", s.critical.DroppableID, s.critical.ID))
	}

	resolved := impact.ResolveDrop(impact.DropArgs{
		Reason:     reason,
		LastImpact: s.impact,
		LiftImpact: s.liftImpact,
		Home:       home,
		Draggables: s.dims.Draggables,
		Viewport:   s.viewport,
	})

	offset := geometry.Origin
	if resolved.DidDropInsideDroppable {
		center, err := impact.PageBorderBoxCenter(impact.CenterArgs{
			Impact:     resolved.Impact,
			Draggable:  draggable,
			Draggables: s.dims.Draggables,
			Droppables: s.dims.Droppables,
		})
		if err != nil {
			return nil, s.fail(err)
		}
		// undo the window scroll since the lift
		clientCenter := center.Add(s.viewport.Scroll.Diff.Displacement)
		offset = clientCenter.Subtract(draggable.Page.BorderBox.Center)
	}

	result := Result{
		DraggableID: s.critical.ID,
		Type:        s.critical.Type,
		Source:      s.critical.HomeLocation(),
		Mode:        s.mode,
		Reason:      reason,
	}
	if resolved.DidDropInsideDroppable {
		switch at := s.impact.At.(type) {
		case impact.Reorder:
			destination := at.Destination
			result.Destination = &destination
		case impact.Combine:
			result.Combine = &CombineResult{DraggableID: at.DraggableID, DroppableID: at.DroppableID}
		}
	}

	outcome := &Outcome{
		Result:                 result,
		Impact:                 resolved.Impact,
		DidDropInsideDroppable: resolved.DidDropInsideDroppable,
		NewHomeClientOffset:    offset,
		From:                   s.current.Client.BorderBoxCenter,
		To:                     s.initial.Client.BorderBoxCenter.Add(offset),
	}
	s.log.Debug("drop",
		"draggable", result.DraggableID,
		"reason", reason,
		"inside", resolved.DidDropInsideDroppable)
	s.reset()
	return outcome, nil
}
