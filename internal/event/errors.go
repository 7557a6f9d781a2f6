package event

import "errors"

// Sentinel errors for the event package.
var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("event handler is nil")

	// ErrUnknownSubscription is returned when unsubscribing a
	// subscription the bus does not hold.
	ErrUnknownSubscription = errors.New("unknown subscription")
)
