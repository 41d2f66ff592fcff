package drag

import (
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/invariant"
	"github.com/llehouerou/reorder/internal/movement"
	"github.com/llehouerou/reorder/internal/publish"
)

// Move follows the sensor to a new client selection.
func (s *Session) Move(clientSelection geometry.Position) error {
	if err := s.ensureMoving(); err != nil {
		return err
	}
	return s.fail(s.update(clientSelection, nil))
}

// MoveByDirection steps the item one place in a direction. It reports false
// when there is nowhere to go, leaving the drag unchanged. When the new place
// is off screen the impact is applied but the item stays put until the host
// performs ScrollJumpRequest through ScrollWindow.
func (s *Session) MoveByDirection(command movement.Command) (bool, error) {
	if err := s.ensureMoving(); err != nil {
		return false, err
	}
	if s.phase == PhaseCollecting {
		return false, ErrCollecting
	}

	result, err := movement.Plan(movement.Args{
		Command:                     command,
		Draggable:                   s.draggable(),
		Snapshot:                    s.dims,
		Previous:                    s.impact,
		PreviousPageBorderBoxCenter: s.current.Page.BorderBoxCenter,
		Viewport:                    s.viewport,
		AfterCritical:               s.afterCritical,
	})
	if err != nil {
		return false, s.fail(err)
	}
	if result == nil {
		return false, nil
	}

	if err := s.update(s.selectionFor(result.PageBorderBoxCenter), &result.Impact); err != nil {
		return false, s.fail(err)
	}
	s.scrollJump = result.ScrollJumpRequest
	s.log.Debug("move", "command", command, "jump", result.ScrollJumpRequest != nil)
	return true, nil
}

// ScrollWindow applies a window scroll. In snap mode the item keeps its place
// in the document; otherwise it keeps its place under the sensor.
func (s *Session) ScrollWindow(newScroll geometry.Position) error {
	if err := s.ensureMoving(); err != nil {
		return err
	}
	s.viewport = s.viewport.ScrollTo(newScroll)
	return s.fail(s.refresh())
}

// ScrollDroppable applies a scroll of a list's scroll container. The scroll
// is clamped to what the container allows.
func (s *Session) ScrollDroppable(id dimension.DroppableID, newScroll geometry.Position) error {
	if err := s.ensureMoving(); err != nil {
		return err
	}
	d, ok := s.dims.Droppables[id]
	if !ok {
		return s.fail(invariant.New("drag.ScrollDroppable", "unknown droppable %q", id))
	}
	scrolled, err := dimension.Scroll(d, d.ClampScroll(newScroll))
	if err != nil {
		return s.fail(err)
	}
	s.dims = s.dims.WithDroppable(scrolled)
	return s.fail(s.refresh())
}

// refresh brings the positions and impact up to date after a scroll.
func (s *Session) refresh() error {
	if s.mode != ModeSnap || s.phase == PhaseCollecting {
		return s.update(s.current.Client.Selection, nil)
	}

	destination, ok := s.impact.Destination()
	if !ok {
		return s.update(s.current.Client.Selection, nil)
	}
	droppable, ok := s.dims.Droppables[destination]
	if !ok {
		return invariant.New("drag.refresh", "unknown droppable %q", destination)
	}
	next := impact.Recompute(impact.RecomputeArgs{
		Impact:      s.impact,
		Destination: droppable,
		Draggables:  s.dims.Draggables,
		Viewport:    s.viewport,
	})
	center, err := impact.PageBorderBoxCenter(impact.CenterArgs{
		Impact:     next,
		Draggable:  s.draggable(),
		Draggables: s.dims.Draggables,
		Droppables: s.dims.Droppables,
	})
	if err != nil {
		return err
	}
	return s.update(s.selectionFor(center), &next)
}

// CollectionStarting freezes the impact until the next Publish.
func (s *Session) CollectionStarting() error {
	if s.phase != PhaseDragging {
		if s.phase == PhaseIdle {
			return ErrNotDragging
		}
		return nil
	}
	s.phase = PhaseCollecting
	return nil
}

// Publish merges dimensions collected during the drag. When a drop was
// requested while collecting, the drop completes and its outcome is
// returned.
func (s *Session) Publish(published publish.Published) (*Outcome, error) {
	if s.phase != PhaseCollecting && s.phase != PhaseDropPending {
		if s.phase == PhaseIdle {
			return nil, ErrNotDragging
		}
		return nil, invariant.New("drag.Publish", "cannot publish while %s", s.phase)
	}

	base, err := withoutPlaceholders(s.dims)
	if err != nil {
		return nil, s.fail(err)
	}
	result, err := publish.Reconcile(publish.Args{
		Published:           published,
		Snapshot:            base,
		Viewport:            s.viewport,
		Critical:            s.critical.ID,
		PageBorderBoxCenter: s.current.Page.BorderBoxCenter,
		Direction:           s.direction,
	})
	if err != nil {
		return nil, s.fail(err)
	}

	s.initial = shifted(s.initial, result.Shift)
	s.current = shifted(s.current, result.Shift)
	s.critical = result.Critical.Descriptor
	s.liftImpact = result.LiftImpact
	s.afterCritical = result.AfterCritical
	s.impact = result.Impact
	s.dims, err = withPlaceholder(result.Snapshot, result.Critical, result.Impact)
	if err != nil {
		return nil, s.fail(err)
	}
	s.log.Debug("published",
		"added", len(published.Additions),
		"removed", len(published.Removals),
		"modified", len(published.Modified))

	if s.phase == PhaseDropPending {
		s.phase = PhaseDragging
		return s.complete(s.pendingReason)
	}
	s.phase = PhaseDragging
	return nil, nil
}

func shifted(p Positions, change geometry.Position) Positions {
	p.Client.Selection = p.Client.Selection.Add(change)
	p.Client.BorderBoxCenter = p.Client.BorderBoxCenter.Add(change)
	p.Page.Selection = p.Page.Selection.Add(change)
	p.Page.BorderBoxCenter = p.Page.BorderBoxCenter.Add(change)
	return p
}
