package event

import (
	"sync"
	"sync/atomic"
	"time"
)

// Publisher is the narrow publishing side of the bus, for components
// that announce events but never subscribe.
type Publisher interface {
	Publish(topic Topic, payload any)
}

// Subscription identifies a registered handler.
type Subscription struct {
	id    uint64
	topic Topic
}

// Stats reports bus counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerPanics uint64
}

// Bus is a synchronous topic bus. Safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscriber

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerPanics atomic.Uint64
}

type subscriber struct {
	id      uint64
	topic   Topic
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for a topic pattern.
func (b *Bus) Subscribe(topic Topic, h Handler) (Subscription, error) {
	if h == nil {
		return Subscription{}, ErrNilHandler
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscriber{id: b.nextID, topic: topic, handler: h})
	return Subscription{id: b.nextID, topic: topic}, nil
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrUnknownSubscription
}

// Publish delivers an event to every matching handler, in subscription
// order, on the caller's goroutine. A panicking handler is recovered and
// counted; delivery continues with the remaining handlers.
func (b *Bus) Publish(topic Topic, payload any) {
	b.published.Add(1)

	b.mu.RLock()
	matching := make([]Handler, 0, len(b.subs))
	for _, s := range b.subs {
		if s.topic.Matches(topic) {
			matching = append(matching, s.handler)
		}
	}
	b.mu.RUnlock()

	e := Event{Topic: topic, Payload: payload, Time: time.Now()}
	for _, h := range matching {
		b.deliver(h, e)
	}
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerPanics: b.handlerPanics.Load(),
	}
}

func (b *Bus) deliver(h Handler, e Event) {
	defer func() {
		if recover() != nil {
			b.handlerPanics.Add(1)
		}
	}()
	h(e)
	b.delivered.Add(1)
}
