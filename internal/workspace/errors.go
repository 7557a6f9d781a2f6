package workspace

import "errors"

// Sentinel errors for the workspace package.
var (
	// ErrNoFocus is returned when a command needs a focused pane and
	// none exists.
	ErrNoFocus = errors.New("no focused pane")

	// ErrLastPane is returned when closing would leave the window with
	// no pane at all.
	ErrLastPane = errors.New("cannot close the last pane")

	// ErrNoSuchTab is returned for an out-of-range tab index.
	ErrNoSuchTab = errors.New("no such tab")
)
