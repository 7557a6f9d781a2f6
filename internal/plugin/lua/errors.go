package lua

import (
	"errors"
	"fmt"
)

var (
	// ErrStateClosed is returned when running scripts on a closed
	// state.
	ErrStateClosed = errors.New("lua state is closed")
)

// ScriptError wraps a failure inside a script with its source name.
type ScriptError struct {
	Source string
	Err    error
}

// Error returns the formatted error message.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying Lua error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
