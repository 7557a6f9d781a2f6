package input

import "errors"

var (
	// ErrBadChord indicates a key specification that cannot be parsed.
	ErrBadChord = errors.New("invalid key chord")

	// ErrUnknownAction indicates a binding to an action name that does
	// not exist.
	ErrUnknownAction = errors.New("unknown action")

	// ErrQuit is returned by the handler when the quit action fires.
	ErrQuit = errors.New("quit requested")
)
