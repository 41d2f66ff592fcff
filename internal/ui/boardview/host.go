package boardview

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/dimension"
	"github.com/llehouerou/reorder/internal/drag"
	"github.com/llehouerou/reorder/internal/errmsg"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/impact"
	"github.com/llehouerou/reorder/internal/invariant"
	"github.com/llehouerou/reorder/internal/logger"
	"github.com/llehouerou/reorder/internal/movement"
	"github.com/llehouerou/reorder/internal/publish"
	"github.com/llehouerou/reorder/internal/state"
)

// dropFrames is how many frames a dropped card takes to settle.
const dropFrames = 4

// dropping animates a finished drag before the board is updated.
type dropping struct {
	outcome drag.Outcome
	title   string
	frame   int
}

// host owns the board and everything a drag needs: the session, the
// publisher for cards added mid-drag and the frame queue that drives it.
type host struct {
	log   *slog.Logger
	board *board.Board
	store state.Interface

	combine    bool
	width      int
	bodyHeight int
	scroll     map[string]int
	layout     layout

	focusCol int
	focusRow int

	session   *drag.Session
	frames    *publish.FrameQueue
	publisher *publish.Publisher
	batches   []publish.Published
	failure   error
	dropping  *dropping
	added     int

	message string
	errText string
}

func newHost(b *board.Board, store state.Interface, combine bool) *host {
	h := &host{
		log:     logger.Component("boardview"),
		board:   b,
		store:   store,
		combine: combine,
		scroll:  make(map[string]int),
		session: drag.NewSession(),
		frames:  publish.NewFrameQueue(),
	}
	h.publisher = publish.NewPublisher(h, h.frames, publish.Callbacks{
		CollectionStarting: h.collectionStarting,
		Publish:            func(p publish.Published) { h.batches = append(h.batches, p) },
		Fail:               func(err error) { h.failure = err },
	})
	h.relayout()
	return h
}

func (h *host) resize(width, bodyHeight int) {
	h.width, h.bodyHeight = width, bodyHeight
	h.relayout()
}

func (h *host) relayout() {
	h.layout = newLayout(h.board.Columns(), h.width, h.bodyHeight, h.scroll)
	for _, c := range h.layout.columns {
		h.scroll[c.ID] = c.Scroll
	}
	h.clampFocus()
}

// MeasureDraggable measures a card as it is laid out now.
func (h *host) MeasureDraggable(id dimension.DraggableID) (dimension.DraggableDimension, error) {
	col, index, ok := h.layout.locate(string(id))
	if !ok {
		return dimension.DraggableDimension{}, fmt.Errorf("card %s: %w", id, board.ErrNotFound)
	}
	return h.layout.draggable(h.layout.columns[col], index), nil
}

// MeasureDroppable measures a column as it is laid out now.
func (h *host) MeasureDroppable(id dimension.DroppableID) (dimension.DroppableDimension, error) {
	c, _, ok := h.layout.column(string(id))
	if !ok {
		return dimension.DroppableDimension{}, fmt.Errorf("column %s: %w", id, board.ErrNotFound)
	}
	return h.layout.droppable(c, h.combine), nil
}

func (h *host) collectionStarting() {
	if err := h.session.CollectionStarting(); err != nil {
		h.log.Debug("collection without a drag", "error", err)
	}
}

// isBusy reports whether a drag or a drop animation is in progress.
func (h *host) isBusy() bool {
	return h.session.IsDragging() || h.dropping != nil
}

func (h *host) needsFrames() bool {
	return h.isBusy() || h.frames.Pending() > 0
}

func (h *host) focusedCard() (string, bool) {
	if h.focusCol < 0 || h.focusCol >= len(h.layout.columns) {
		return "", false
	}
	cards := h.layout.columns[h.focusCol].Cards
	if h.focusRow < 0 || h.focusRow >= len(cards) {
		return "", false
	}
	return cards[h.focusRow], true
}

func (h *host) clampFocus() {
	h.focusCol = min(max(h.focusCol, 0), max(len(h.layout.columns)-1, 0))
	if len(h.layout.columns) == 0 {
		h.focusRow = 0
		return
	}
	n := len(h.layout.columns[h.focusCol].Cards)
	h.focusRow = min(max(h.focusRow, 0), max(n-1, 0))
}

func (h *host) moveFocus(dCol, dRow int) {
	h.focusCol += dCol
	h.focusRow += dRow
	h.clampFocus()
	h.revealFocus()
}

// revealFocus scrolls the focused column so the focused card is visible.
func (h *host) revealFocus() {
	if len(h.layout.columns) == 0 {
		return
	}
	c := h.layout.columns[h.focusCol]
	top := h.focusRow * slotHeight
	scroll := c.Scroll
	if top < scroll {
		scroll = top
	}
	if top+cardHeight > scroll+h.layout.frameHeight {
		scroll = top + cardHeight - h.layout.frameHeight
	}
	if scroll != c.Scroll {
		h.scroll[c.ID] = scroll
		h.relayout()
	}
}

func (h *host) lift(cardID string, clientSelection geometry.Position, mode drag.Mode) {
	if h.isBusy() {
		return
	}
	h.errText = ""
	err := h.session.Lift(drag.LiftRequest{
		ID:              dimension.DraggableID(cardID),
		ClientSelection: clientSelection,
		Mode:            mode,
		Snapshot:        h.layout.snapshot(h.combine),
		Viewport:        h.layout.viewport(),
	})
	if err != nil {
		h.fail(errmsg.OpLift, err)
	}
}

// liftFocused lifts the focused card for keyboard dragging.
func (h *host) liftFocused() {
	id, ok := h.focusedCard()
	if !ok {
		return
	}
	c := h.layout.columns[h.focusCol]
	h.lift(id, h.layout.cardBox(c, h.focusRow).BorderBox.Center, drag.ModeSnap)
}

func (h *host) move(clientSelection geometry.Position) {
	if h.session.Mode() != drag.ModeFluid {
		return
	}
	if err := h.session.Move(clientSelection); err != nil {
		h.fail(errmsg.OpMove, err)
	}
}

func (h *host) moveBy(command movement.Command) {
	moved, err := h.session.MoveByDirection(command)
	if err != nil {
		h.fail(errmsg.OpMove, err)
		return
	}
	if !moved {
		return
	}
	if jump := h.session.ScrollJumpRequest(); jump != nil {
		h.jump(*jump)
	}
}

// jump scrolls the destination column so a keyboard move stays visible.
func (h *host) jump(change geometry.Position) {
	id, ok := h.session.Impact().Destination()
	if !ok {
		return
	}
	d := h.session.Snapshot().Droppables[id]
	if d.Frame == nil {
		h.log.Debug("scroll jump outside a column", "droppable", id)
		return
	}
	h.scrollDroppable(id, d.Frame.Scroll.Current.Add(change))
}

// scrollColumn scrolls a column by delta rows.
func (h *host) scrollColumn(col, delta int) {
	if col < 0 || col >= len(h.layout.columns) || h.dropping != nil {
		return
	}
	c := h.layout.columns[col]
	if !h.session.IsDragging() {
		h.scroll[c.ID] = c.Scroll + delta
		h.relayout()
		return
	}
	id := dimension.DroppableID(c.ID)
	d := h.session.Snapshot().Droppables[id]
	if d.Frame == nil {
		return
	}
	h.scrollDroppable(id, d.Frame.Scroll.Current.Add(geometry.Position{Y: float64(delta)}))
}

func (h *host) scrollDroppable(id dimension.DroppableID, target geometry.Position) {
	if err := h.session.ScrollDroppable(id, target); err != nil {
		h.fail(errmsg.OpScroll, err)
		return
	}
	d := h.session.Snapshot().Droppables[id]
	h.scroll[string(id)] = int(math.Round(d.Frame.Scroll.Current.Y))
	h.relayout()
}

func (h *host) drop() {
	h.finish(h.session.Drop())
}

func (h *host) cancel() {
	h.finish(h.session.Cancel())
}

// finish starts the drop animation once the session produced an outcome. A
// nil outcome means the drop waits for dimensions being collected.
func (h *host) finish(outcome *drag.Outcome, err error) {
	if err != nil {
		h.fail(errmsg.OpDrop, err)
		return
	}
	if outcome == nil {
		return
	}
	h.publisher.Stop()
	title := string(outcome.Result.DraggableID)
	if col, index, ok := h.layout.locate(title); ok {
		if c, ok := h.board.Column(h.layout.columns[col].ID); ok {
			title = c.Cards[index].Title
		}
	}
	h.dropping = &dropping{outcome: *outcome, title: title}
}

// addCard adds a card at the top of a column. While dragging, the card goes
// into the column under the dragged card and is published to the drag.
func (h *host) addCard() {
	if h.dropping != nil || len(h.layout.columns) == 0 {
		return
	}
	columnID := h.layout.columns[h.focusCol].ID
	if h.session.IsDragging() {
		columnID = string(h.session.Critical().DroppableID)
		if dest, ok := h.session.Impact().Destination(); ok {
			columnID = string(dest)
		}
	}

	h.added++
	card, err := h.board.AddCard(columnID, fmt.Sprintf("New card %d", h.added), 0)
	if err != nil {
		h.fail(errmsg.OpAddCard, err)
		return
	}
	h.relayout()
	h.store.SaveBoard(h.board.Columns())
	h.message = fmt.Sprintf("Added '%s'", card.Title)

	if h.session.IsDragging() {
		h.publisher.Add(dimension.DraggableDescriptor{
			ID:          dimension.DraggableID(card.ID),
			DroppableID: dimension.DroppableID(columnID),
			Type:        dimension.DefaultType,
			Index:       0,
		})
	}
}

// frame runs one animation frame: staged collections are flushed and
// published, and the drop animation advances.
func (h *host) frame() {
	h.frames.Flush()

	if err := h.failure; err != nil {
		h.failure = nil
		h.batches = nil
		h.session.Abort(err)
		h.fail(errmsg.OpPublish, err)
	}
	batches := h.batches
	h.batches = nil
	for _, batch := range batches {
		outcome, err := h.session.Publish(batch)
		if err != nil {
			h.fail(errmsg.OpPublish, err)
			break
		}
		if outcome != nil {
			h.finish(outcome, nil)
		}
	}

	if h.dropping != nil {
		h.dropping.frame++
		if h.dropping.frame >= dropFrames {
			h.apply()
		}
	}
}

// apply commits the animated drop to the board.
func (h *host) apply() {
	d := h.dropping
	h.dropping = nil
	result := d.outcome.Result

	change, err := h.board.Apply(result)
	h.relayout()
	if err != nil {
		h.fail(errmsg.OpApply, err)
		return
	}
	if change != board.Unchanged {
		h.store.SaveBoard(h.board.Columns())
	}
	if col, index, ok := h.layout.locate(string(result.DraggableID)); ok {
		h.focusCol, h.focusRow = col, index
		h.revealFocus()
	}
	h.message = h.describe(change, d.title, result)
	h.log.Debug("drop applied", "card", result.DraggableID, "change", change)
}

func (h *host) describe(change board.Change, title string, result drag.Result) string {
	switch change {
	case board.Reordered:
		return fmt.Sprintf("Moved '%s' to the %s place", title, humanize.Ordinal(result.Destination.Index+1))
	case board.Moved:
		c, _ := h.board.Column(string(result.Destination.DroppableID))
		return fmt.Sprintf("Moved '%s' to %s, %s place", title, c.Title, humanize.Ordinal(result.Destination.Index+1))
	case board.Combined:
		return fmt.Sprintf("Combined '%s' into '%s'", title, h.cardTitle(string(result.Combine.DraggableID)))
	}
	if result.Reason == impact.ReasonCancel {
		return "Cancelled"
	}
	return ""
}

func (h *host) cardTitle(id string) string {
	col, index, ok := h.layout.locate(id)
	if !ok {
		return id
	}
	c, _ := h.board.Column(h.layout.columns[col].ID)
	return c.Cards[index].Title
}

// fail reports an error. Engine violations have already aborted the drag.
func (h *host) fail(op errmsg.Op, err error) {
	if errors.Is(err, drag.ErrCollecting) {
		return
	}
	h.log.Error("board operation failed", "op", string(op), "error", err)
	h.errText = errmsg.Format(op, err)
	if invariant.Is(err) || !h.session.IsDragging() {
		h.publisher.Stop()
		h.batches = nil
	}
}
