// Package invariant reports broken preconditions in the drag engine.
//
// A violation means the caller handed the engine a state it can never be in
// (a missing droppable, a combine without a target, ...). It is not a
// recoverable runtime condition: the owning drag must be aborted.
package invariant

import (
	"errors"
	"fmt"
)

// Op names the engine operation that detected the violation.
type Op string

// Violation is returned when a precondition does not hold.
type Violation struct {
	Op      Op
	Message string
}

func (v *Violation) Error() string {
	if v.Op == "" {
		return "invariant failed: " + v.Message
	}
	return fmt.Sprintf("invariant failed in %s: %s", v.Op, v.Message)
}

// New builds a violation.
func New(op Op, format string, args ...any) *Violation {
	return &Violation{Op: op, Message: fmt.Sprintf(format, args...)}
}

// Check returns a violation when cond is false, nil otherwise.
func Check(cond bool, op Op, format string, args ...any) error {
	if cond {
		return nil
	}
	return New(op, format, args...)
}

// Is reports whether err is, or wraps, a violation.
func Is(err error) bool {
	var v *Violation
	return errors.As(err, &v)
}
