// Package drag owns the state of one drag: what is being dragged, where it
// is, and the impact it currently has. A Session feeds sensor intents through
// the impact engine and swaps in a new snapshot and impact on every change.
//
// A Session is not safe for concurrent use. The UI loop drives it.
package drag

import (
	"errors"
	"log/slog"

	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/invariant"
	"github.com/llehouerou/reorder/internal/logger"
)

// Phase is where a session is in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	// PhaseCollecting waits for dimensions published during the drag.
	// Positions still update but the impact is frozen.
	PhaseCollecting
	// PhaseDropPending is a drop requested while collecting.
	PhaseDropPending
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseCollecting:
		return "collecting"
	case PhaseDropPending:
		return "drop pending"
	}
	return "idle"
}

// Mode is how the dragging item follows its sensor.
type Mode int

const (
	// ModeFluid follows a pointer.
	ModeFluid Mode = iota
	// ModeSnap jumps between positions, as with a keyboard.
	ModeSnap
)

func (m Mode) String() string {
	if m == ModeSnap {
		return "snap"
	}
	return "fluid"
}

var (
	ErrAlreadyDragging = errors.New("a drag is already in progress")
	ErrNotDragging     = errors.New("no drag in progress")
	ErrCollecting      = errors.New("dimensions are being collected")
)

// ClientPositions are relative to the viewport.
type ClientPositions struct {
	Selection       geometry.Position
	BorderBoxCenter geometry.Position
	// Offset is how far the selection moved since the lift.
	Offset geometry.Position
}

// PagePositions are relative to the document.
type PagePositions struct {
	Selection       geometry.Position
	BorderBoxCenter geometry.Position
}

// Positions locate the dragging item.
type Positions struct {
	Client ClientPositions
	Page   PagePositions
}

// LiftRequest starts a drag.
type LiftRequest struct {
	ID dimension.DraggableID
	// ClientSelection is where the sensor grabbed the item.
	ClientSelection geometry.Position
	Mode            Mode
	Snapshot        dimension.Map
	Viewport        dimension.Viewport
}

// Session is the state machine of a drag.
type Session struct {
	log *slog.Logger

	phase     Phase
	mode      Mode
	critical  dimension.DraggableDescriptor
	dims      dimension.Map
	viewport  dimension.Viewport
	direction impact.UserDirection

	initial Positions
	current Positions

	impact        impact.DragImpact
	liftImpact    impact.DragImpact
	afterCritical impact.LiftEffect

	scrollJump    *geometry.Position
	pendingReason impact.DropReason
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{log: logger.Component("drag")}
}

// Lift starts a drag. Only one drag can be active at a time.
func (s *Session) Lift(req LiftRequest) error {
	if s.phase != PhaseIdle {
		return ErrAlreadyDragging
	}

	draggable, ok := req.Snapshot.Draggables[req.ID]
	if !ok {
		return invariant.New("drag.Lift", "cannot lift unknown item %q", req.ID)
	}
	home, ok := req.Snapshot.Droppables[draggable.Descriptor.DroppableID]
	if !ok {
		return invariant.New("drag.Lift", "home %q of %q is missing", draggable.Descriptor.DroppableID, req.ID)
	}

	liftImpact, effect, err := impact.GetLiftEffect(impact.LiftArgs{
		Draggable:  draggable,
		Home:       home,
		Draggables: req.Snapshot.Draggables,
		Viewport:   req.Viewport,
	})
	if err != nil {
		return err
	}

	clientCenter := draggable.Client.BorderBox.Center
	scroll := req.Viewport.Scroll.Current
	initial := Positions{
		Client: ClientPositions{
			Selection:       req.ClientSelection,
			BorderBoxCenter: clientCenter,
		},
		Page: PagePositions{
			Selection:       req.ClientSelection.Add(scroll),
			BorderBoxCenter: clientCenter.Add(scroll),
		},
	}

	log := s.log
	if log == nil {
		log = logger.Component("drag")
	}
	*s = Session{
		log:           log,
		phase:         PhaseDragging,
		mode:          req.Mode,
		critical:      draggable.Descriptor,
		dims:          req.Snapshot,
		viewport:      req.Viewport,
		initial:       initial,
		current:       initial,
		impact:        liftImpact,
		liftImpact:    liftImpact,
		afterCritical: effect,
	}
	s.log.Debug("lift", "draggable", req.ID, "droppable", home.ID(), "index", draggable.Descriptor.Index, "mode", req.Mode)
	return nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// IsDragging reports whether a drag is in progress, in any phase.
func (s *Session) IsDragging() bool { return s.phase != PhaseIdle }

// Mode returns the movement mode of the drag.
func (s *Session) Mode() Mode { return s.mode }

// Critical describes the dragging item as it is in the current snapshot.
func (s *Session) Critical() dimension.DraggableDescriptor { return s.critical }

// Snapshot returns the current dimensions, including any placeholder.
func (s *Session) Snapshot() dimension.Map { return s.dims }

// Viewport returns the viewport as last scrolled.
func (s *Session) Viewport() dimension.Viewport { return s.viewport }

// Impact returns the current impact.
func (s *Session) Impact() impact.DragImpact { return s.impact }

// Current returns where the dragging item is.
func (s *Session) Current() Positions { return s.current }

// Direction returns the last movement direction of the user.
func (s *Session) Direction() impact.UserDirection { return s.direction }

// ScrollJumpRequest returns the window scroll requested by the last snap
// move, or nil. The request is cleared by the next scroll or move.
func (s *Session) ScrollJumpRequest() *geometry.Position { return s.scrollJump }

// Abort ends the drag without a result. It is used when the engine or the
// host reports a broken state.
func (s *Session) Abort(err error) {
	if s.phase == PhaseIdle {
		return
	}
	s.log.Error("drag aborted", "draggable", s.critical.ID, "phase", s.phase, "error", err)
	s.reset()
}

func (s *Session) reset() {
	*s = Session{log: s.log}
}

// fail aborts the drag when err is an engine violation and returns err.
func (s *Session) fail(err error) error {
	if err != nil && invariant.Is(err) {
		s.Abort(err)
	}
	return err
}

func (s *Session) ensureMoving() error {
	switch s.phase {
	case PhaseIdle:
		return ErrNotDragging
	case PhaseDropPending:
		return ErrCollecting
	}
	return nil
}

func (s *Session) draggable() dimension.DraggableDimension {
	return s.dims.Draggables[s.critical.ID]
}

// positionsAt derives the drag positions for a client selection.
func (s *Session) positionsAt(clientSelection geometry.Position) Positions {
	scroll := s.viewport.Scroll.Current
	offset := clientSelection.Subtract(s.initial.Client.Selection)
	clientCenter := s.initial.Client.BorderBoxCenter.Add(offset)
	return Positions{
		Client: ClientPositions{
			Selection:       clientSelection,
			BorderBoxCenter: clientCenter,
			Offset:          offset,
		},
		Page: PagePositions{
			Selection:       clientSelection.Add(scroll),
			BorderBoxCenter: clientCenter.Add(scroll),
		},
	}
}

// selectionFor is the client selection that puts the item's center at a
// page position.
func (s *Session) selectionFor(pageBorderBoxCenter geometry.Position) geometry.Position {
	clientCenter := pageBorderBoxCenter.Subtract(s.viewport.Scroll.Current)
	return s.initial.Client.Selection.Add(clientCenter.Subtract(s.initial.Client.BorderBoxCenter))
}

// update moves the item to clientSelection. The impact is recomputed unless
// forced is given. While collecting only the positions change.
func (s *Session) update(clientSelection geometry.Position, forced *impact.DragImpact) error {
	current := s.positionsAt(clientSelection)
	s.direction = impact.NextUserDirection(s.direction, s.current.Page.BorderBoxCenter, current.Page.BorderBoxCenter)
	s.current = current
	s.scrollJump = nil

	if s.phase == PhaseCollecting {
		return nil
	}

	draggable := s.draggable()
	var next impact.DragImpact
	if forced != nil {
		next = *forced
	} else {
		next = impact.Compute(impact.ComputeArgs{
			PageBorderBoxCenter: current.Page.BorderBoxCenter,
			Draggable:           draggable,
			Draggables:          s.dims.Draggables,
			Droppables:          s.dims.Droppables,
			Previous:            s.impact,
			Viewport:            s.viewport,
			Direction:           s.direction,
			AfterCritical:       s.afterCritical,
		})
	}

	dims, err := withPlaceholder(s.dims, draggable, next)
	if err != nil {
		return err
	}
	s.dims = dims
	s.impact = next
	return nil
}
