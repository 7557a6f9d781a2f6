package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHandleEventDispatchesResize(t *testing.T) {
	screen := NewSimulationScreen(40, 10)
	defer screen.Fini()

	var gotW, gotH int
	screen.OnResize(func(w, h int) {
		gotW, gotH = w, h
	})

	if !screen.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Fatal("resize event should be consumed")
	}
	if gotW != 80 || gotH != 24 {
		t.Errorf("resize callback got %dx%d, want 80x24", gotW, gotH)
	}
}

func TestHandleEventIgnoresOtherEvents(t *testing.T) {
	screen := NewSimulationScreen(40, 10)
	defer screen.Fini()

	screen.OnResize(func(int, int) {
		t.Error("resize callback should not fire for key events")
	})

	ev := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	if screen.HandleEvent(ev) {
		t.Error("key event should not be consumed")
	}
}
