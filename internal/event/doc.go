// Package event provides the in-process pub/sub bus connecting the pane
// layer to the rest of the application.
//
// Publishing is synchronous: handlers run on the publisher's goroutine
// in subscription order, and a panicking handler is recovered and
// counted rather than taking down the event loop. Topics are dotted
// names; a subscription topic ending in ".*" matches every topic under
// the prefix.
//
//	bus := event.NewBus()
//	sub, _ := bus.Subscribe(event.TopicPaneFocused, func(e event.Event) {
//	    // react to focus change
//	})
//	defer bus.Unsubscribe(sub)
//
//	bus.Publish(event.TopicPaneFocused, surfaceID)
package event
