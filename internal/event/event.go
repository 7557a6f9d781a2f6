package event

import "time"

// Topic is a dotted event name, e.g. "pane.focused".
type Topic string

// Topics published by the pane layer.
const (
	// TopicPaneCreated fires after a split creates a new pane.
	// Payload: the new surface ID (string).
	TopicPaneCreated Topic = "pane.created"

	// TopicPaneClosed fires after a pane is removed and the tree has
	// contracted. Payload: the closed surface ID (string).
	TopicPaneClosed Topic = "pane.closed"

	// TopicPaneFocused fires when input focus moves between panes.
	// Payload: the focused surface ID (string).
	TopicPaneFocused Topic = "pane.focused"

	// TopicLayoutChanged fires whenever the tree structure or a divider
	// changes and the screen needs a redraw. Payload: nil.
	TopicLayoutChanged Topic = "layout.changed"

	// TopicConfigChanged fires when the configuration file is reloaded.
	// Payload: the new *config.Config.
	TopicConfigChanged Topic = "config.changed"
)

// Matches reports whether a subscription topic matches a published one.
// A subscription ending in ".*" matches every topic under its prefix;
// the bare "*" matches everything.
func (t Topic) Matches(published Topic) bool {
	if t == published || t == "*" {
		return true
	}
	const wild = ".*"
	if len(t) > len(wild) && t[len(t)-len(wild):] == wild {
		prefix := string(t[:len(t)-1]) // keep the trailing dot
		return len(published) >= len(prefix) && string(published[:len(prefix)]) == prefix
	}
	return false
}

// Event is a published occurrence delivered to handlers.
type Event struct {
	// Topic the event was published under.
	Topic Topic

	// Payload is topic-specific data, may be nil.
	Payload any

	// Time the event was published.
	Time time.Time
}

// Handler processes a delivered event.
type Handler func(Event)
