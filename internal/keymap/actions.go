// Package keymap defines key bindings and action dispatch for the board.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionHelp          Action = "help"
	ActionToggleCombine Action = "toggle_combine"

	// Cursor and drag movement; what they do depends on whether a card is lifted
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"

	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"

	// Board actions
	ActionLift    Action = "lift"     // space - pick up the focused card
	ActionAddCard Action = "add_card" // a - also works mid-drag

	// Drag actions
	ActionDrop   Action = "drop"
	ActionCancel Action = "cancel"
)

// Context names where a binding applies.
const (
	ContextGlobal   = "global"
	ContextBoard    = "board"
	ContextDragging = "dragging"
)
