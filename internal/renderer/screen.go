package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell screen behind the small surface the renderer and
// the application event loop need.
type Screen struct {
	mu            sync.Mutex
	screen        tcell.Screen
	resizeHandler func(width, height int)
}

// NewScreen creates a screen backed by a real terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// NewSimulationScreen creates a screen backed by tcell's simulator, for
// tests.
func NewSimulationScreen(width, height int) *Screen {
	sim := tcell.NewSimulationScreen("UTF-8")
	_ = sim.Init()
	sim.SetSize(width, height)
	return &Screen{screen: sim}
}

// Init initializes the underlying terminal.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnablePaste()
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// OnResize registers a callback invoked from HandleEvent for resize
// events.
func (s *Screen) OnResize(fn func(width, height int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resizeHandler = fn
}

// PollEvent blocks until the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Wake posts an interrupt event so PollEvent returns and the loop can
// re-check its state. Safe to call from any goroutine.
func (s *Screen) Wake() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// HandleEvent dispatches resize events to the registered callback.
// Returns true if the event was consumed.
func (s *Screen) HandleEvent(ev tcell.Event) bool {
	if resize, ok := ev.(*tcell.EventResize); ok {
		s.screen.Sync()
		s.mu.Lock()
		fn := s.resizeHandler
		s.mu.Unlock()
		if fn != nil {
			fn(resize.Size())
		}
		return true
	}
	return false
}

// Clear erases the screen buffer.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
}

// Show flushes the buffer to the terminal.
func (s *Screen) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Show()
}

// SetCell writes a single styled rune.
func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

// CellAt returns the rune currently in the buffer, for tests.
func (s *Screen) CellAt(x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}
