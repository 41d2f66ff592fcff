package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

var specialKeys = map[string]tea.KeyType{
	" ":      tea.KeySpace,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEscape,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"tab":    tea.KeyTab,
	"ctrl+c": tea.KeyCtrlC,
}

// Harness drives a tea.Model the way the program loop would, collecting
// the commands it returns without running them.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps a model and sends it a window size.
func NewHarness(m tea.Model, width, height int) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the rendered view without ANSI codes.
func (h *Harness) View() string {
	return StripANSI(h.model.View())
}

// Send delivers a message and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Key sends a key press. Names like "esc", "enter", "up" or " " map to
// special keys; anything else is sent as runes.
func (h *Harness) Key(key string) tea.Cmd {
	if t, ok := specialKeys[key]; ok {
		msg := tea.KeyMsg{Type: t}
		if t == tea.KeySpace {
			msg.Runes = []rune{' '}
		}
		return h.Send(msg)
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Press sends a left button press at a cell.
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft)
}

// Motion sends a drag motion with the left button held.
func (h *Harness) Motion(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft)
}

// Release sends a left button release at a cell.
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.mouse(x, y, tea.MouseActionRelease, tea.MouseButtonLeft)
}

// Wheel sends a wheel step at a cell.
func (h *Harness) Wheel(x, y int, up bool) tea.Cmd {
	button := tea.MouseButtonWheelDown
	if up {
		button = tea.MouseButtonWheelUp
	}
	return h.mouse(x, y, tea.MouseActionPress, button)
}

func (h *Harness) mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Action: action, Button: button})
}

// Commands returns every command collected so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ViewContains checks if the view contains the given substring.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}
