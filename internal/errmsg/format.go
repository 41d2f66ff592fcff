// Package errmsg provides consistent error formatting for the status line.
package errmsg

import (
	"fmt"

	"github.com/llehouerou/reorder/internal/invariant"
)

// Op represents an operation that can fail.
type Op string

const (
	// Drag operations
	OpLift    Op = "start dragging"
	OpMove    Op = "move"
	OpScroll  Op = "scroll"
	OpDrop    Op = "drop"
	OpPublish Op = "update the board during a drag"

	// Board operations
	OpApply   Op = "apply drop"
	OpAddCard Op = "add card"

	// Persistence
	OpBoardLoad Op = "load board"
	OpBoardSave Op = "save board"

	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	if invariant.Is(err) {
		return fmt.Sprintf("Failed to %s, drag aborted: %v", op, err)
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the item involved.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
