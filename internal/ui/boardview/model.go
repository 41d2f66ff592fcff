// Package boardview is the bubbletea board: columns of cards that can be
// reordered, moved and combined with the mouse or the keyboard.
package boardview

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/drag"
	"github.com/llehouerou/reorder/internal/geometry"
	"github.com/llehouerou/reorder/internal/keymap"
	"github.com/llehouerou/reorder/internal/movement"
	"github.com/llehouerou/reorder/internal/state"
)

const defaultFrameInterval = 16 * time.Millisecond

// FrameMsg drives drop animations and dimension collection.
type FrameMsg time.Time

// Options configure the board view.
type Options struct {
	Combine       bool
	FrameInterval time.Duration
}

type Model struct {
	Width    int
	Height   int
	ShowHelp bool

	help          help.Model
	keys          *keymap.Resolver
	frameInterval time.Duration
	ticking       bool
	h             *host
}

// New creates a board view. Saves go to store.
func New(b *board.Board, store state.Interface, opts Options) Model {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	return Model{
		help:          help.New(),
		keys:          keymap.NewResolver(keymap.All),
		frameInterval: interval,
		h:             newHost(b, store, opts.Combine),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Board returns the board being edited.
func (m Model) Board() *board.Board {
	return m.h.board
}

// Phase returns the phase of the current drag.
func (m Model) Phase() drag.Phase {
	return m.h.session.Phase()
}

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		if m.h.session.IsDragging() {
			// dimensions collected at lift no longer match the screen
			m.h.cancel()
		}
		m.resize()

	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case FrameMsg:
		m.ticking = false
		m.h.frame()
	}

	cmd := m.ensureTicking()
	return m, cmd
}

func (m *Model) resize() {
	m.help.Width = m.Width
	m.h.resize(m.Width, m.Height-headerHeight-m.footerHeight())
}

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.helpView())
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.h.needsFrames() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m Model) context() string {
	if m.h.session.IsDragging() {
		return keymap.ContextDragging
	}
	return keymap.ContextBoard
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	h := m.h
	action := m.keys.Resolve(m.context(), msg.String())
	snap := h.session.IsDragging() && h.session.Mode() == drag.ModeSnap

	switch action {
	case keymap.ActionQuit:
		return tea.Quit

	case keymap.ActionHelp:
		if !h.isBusy() {
			m.ShowHelp = !m.ShowHelp
			m.help.ShowAll = m.ShowHelp
			m.resize()
		}

	case keymap.ActionToggleCombine:
		if !h.isBusy() {
			h.combine = !h.combine
			h.message = "Combining " + onOff(h.combine)
		}

	case keymap.ActionAddCard:
		h.addCard()

	case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionMoveLeft, keymap.ActionMoveRight:
		switch {
		case snap:
			h.moveBy(commandFor(action))
		case !h.isBusy():
			dCol, dRow := focusDelta(action)
			h.moveFocus(dCol, dRow)
		}

	case keymap.ActionScrollUp, keymap.ActionScrollDown:
		delta := slotHeight
		if action == keymap.ActionScrollUp {
			delta = -delta
		}
		h.scrollColumn(m.scrollTarget(), delta)

	case keymap.ActionLift:
		h.liftFocused()

	case keymap.ActionDrop:
		if snap {
			h.drop()
		}

	case keymap.ActionCancel:
		if h.session.IsDragging() {
			h.cancel()
		}
	}
	return nil
}

// scrollTarget is the column scrolled from the keyboard: the one under the
// dragged card, or the focused one.
func (m Model) scrollTarget() int {
	if dest, ok := m.h.session.Impact().Destination(); ok {
		if _, i, ok := m.h.layout.column(string(dest)); ok {
			return i
		}
	}
	return m.h.focusCol
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	h := m.h
	fluid := h.session.IsDragging() && h.session.Mode() == drag.ModeFluid
	pos := geometry.Position{X: float64(msg.X), Y: float64(msg.Y)}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return
		}
		delta := slotHeight
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -delta
		}
		if col, ok := h.layout.columnAt(msg.X, msg.Y); ok {
			h.scrollColumn(col, delta)
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if h.isBusy() {
			return
		}
		col, index, ok := h.layout.cardAt(msg.X, msg.Y)
		if !ok {
			return
		}
		h.focusCol, h.focusRow = col, index
		h.lift(h.layout.columns[col].Cards[index], pos, drag.ModeFluid)

	case msg.Action == tea.MouseActionMotion && fluid:
		h.move(pos)

	case msg.Action == tea.MouseActionRelease && fluid:
		h.drop()
	}
}

func commandFor(action keymap.Action) movement.Command {
	switch action {
	case keymap.ActionMoveUp:
		return movement.MoveUp
	case keymap.ActionMoveLeft:
		return movement.MoveLeft
	case keymap.ActionMoveRight:
		return movement.MoveRight
	}
	return movement.MoveDown
}

func focusDelta(action keymap.Action) (dCol, dRow int) {
	switch action {
	case keymap.ActionMoveUp:
		return 0, -1
	case keymap.ActionMoveDown:
		return 0, 1
	case keymap.ActionMoveLeft:
		return -1, 0
	}
	return 1, 0
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
