package event

import (
	"sync"
	"testing"
)

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		sub       Topic
		published Topic
		want      bool
	}{
		{TopicPaneFocused, TopicPaneFocused, true},
		{TopicPaneFocused, TopicPaneClosed, false},
		{"pane.*", TopicPaneFocused, true},
		{"pane.*", TopicPaneClosed, true},
		{"pane.*", TopicLayoutChanged, false},
		{"*", TopicConfigChanged, true},
		{"pane", TopicPaneFocused, false},
	}

	for _, tt := range tests {
		if got := tt.sub.Matches(tt.published); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.sub, tt.published, got, tt.want)
		}
	}
}

func TestPublishDelivers(t *testing.T) {
	bus := NewBus()

	var got []Topic
	if _, err := bus.Subscribe("pane.*", func(e Event) {
		got = append(got, e.Topic)
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	bus.Publish(TopicPaneCreated, "id-1")
	bus.Publish(TopicLayoutChanged, nil)
	bus.Publish(TopicPaneClosed, "id-1")

	want := []Topic{TopicPaneCreated, TopicPaneClosed}
	if len(got) != len(want) {
		t.Fatalf("delivered %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubscribeNilHandler(t *testing.T) {
	bus := NewBus()
	if _, err := bus.Subscribe(TopicPaneCreated, nil); err != ErrNilHandler {
		t.Fatalf("err = %v, want ErrNilHandler", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	sub, err := bus.Subscribe(TopicPaneCreated, func(Event) { calls++ })
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	bus.Publish(TopicPaneCreated, nil)
	if err := bus.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	bus.Publish(TopicPaneCreated, nil)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if err := bus.Unsubscribe(sub); err != ErrUnknownSubscription {
		t.Errorf("second unsubscribe err = %v, want ErrUnknownSubscription", err)
	}
}

func TestHandlerPanicRecovered(t *testing.T) {
	bus := NewBus()

	ran := false
	if _, err := bus.Subscribe(TopicPaneCreated, func(Event) { panic("boom") }); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if _, err := bus.Subscribe(TopicPaneCreated, func(Event) { ran = true }); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	bus.Publish(TopicPaneCreated, nil)

	if !ran {
		t.Error("delivery should continue past a panicking handler")
	}
	if got := bus.Stats().HandlerPanics; got != 1 {
		t.Errorf("HandlerPanics = %d, want 1", got)
	}
}

func TestConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	if _, err := bus.Subscribe("*", func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bus.Publish(TopicLayoutChanged, nil)
			}
		}()
	}
	wg.Wait()

	if count != 800 {
		t.Errorf("count = %d, want 800", count)
	}
	if got := bus.Stats().Published; got != 800 {
		t.Errorf("Published = %d, want 800", got)
	}
}
