package term

import "errors"

// Sentinel errors for the term package.
var (
	// ErrTerminalClosed is returned when operations are attempted on a
	// closed terminal.
	ErrTerminalClosed = errors.New("terminal is closed")

	// ErrTerminalNotFound is returned when a terminal ID is not found.
	ErrTerminalNotFound = errors.New("terminal not found")

	// ErrShellNotFound is returned when the shell executable is not found.
	ErrShellNotFound = errors.New("shell not found")

	// ErrInvalidSize is returned when a resize has non-positive dimensions.
	ErrInvalidSize = errors.New("invalid terminal size")

	// ErrManagerClosed is returned when operations are attempted on a
	// closed manager.
	ErrManagerClosed = errors.New("terminal manager is closed")
)
