package workspace

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dshills/panestorm/internal/event"
	"github.com/dshills/panestorm/internal/pane"
)

// stubSurface implements pane.Surface and Identified. GrabFocus reports
// into the manager like the application wiring does for terminals.
type stubSurface struct {
	id        string
	destroyed bool
	focus     func(pane.Surface)
}

func (s *stubSurface) ID() string                 { return s.id }
func (s *stubSurface) Destroy()                   { s.destroyed = true }
func (s *stubSurface) DisplayHandle() pane.Handle { return s }
func (s *stubSurface) GrabFocus()                 { s.focus(s) }

// stubSplitter implements pane.Splitter with host divider-reset
// semantics.
type stubSplitter struct {
	first, second pane.Handle
	divider       int
}

func (w *stubSplitter) SetFirst(h pane.Handle) {
	if h != nil {
		w.divider = 0
	}
	w.first = h
}

func (w *stubSplitter) SetSecond(h pane.Handle) {
	if h != nil {
		w.divider = 0
	}
	w.second = h
}

func (w *stubSplitter) Divider() int        { return w.divider }
func (w *stubSplitter) SetDivider(pos int)  { w.divider = pos }
func (w *stubSplitter) Handle() pane.Handle { return w }

// stubAlloc implements pane.Allocator; focus is bound to the manager
// after construction.
type stubAlloc struct {
	serial   int
	failNext bool
	focus    func(pane.Surface)
	created  []*stubSurface
}

func (a *stubAlloc) NewSurface(parent pane.Surface) (pane.Surface, error) {
	if a.failNext {
		a.failNext = false
		return nil, errors.New("allocation refused")
	}
	a.serial++
	s := &stubSurface{id: fmt.Sprintf("s%d", a.serial), focus: func(x pane.Surface) { a.focus(x) }}
	a.created = append(a.created, s)
	return s, nil
}

func (a *stubAlloc) NewSplitter(pane.Orientation) pane.Splitter { return &stubSplitter{} }
func (a *stubAlloc) ReleaseSplitter(pane.Splitter)              {}

type stubWindow struct{ child pane.Handle }

func (w *stubWindow) SetRootChild(h pane.Handle) { w.child = h }

func newTestManager(t *testing.T) (*Manager, *stubAlloc, *event.Bus) {
	t.Helper()
	alloc := &stubAlloc{}
	bus := event.NewBus()
	var mgr *Manager
	alloc.focus = func(s pane.Surface) {
		if mgr != nil {
			mgr.NoteFocus(s)
		}
	}

	mgr, err := NewManager(Config{
		Alloc:     alloc,
		Bus:       bus,
		NewWindow: func() pane.Window { return &stubWindow{} },
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr, alloc, bus
}

func TestNewManagerStartsWithOnePane(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)

	if got := mgr.WindowCount(); got != 1 {
		t.Errorf("WindowCount = %d, want 1", got)
	}
	if mgr.Focused() != pane.Surface(alloc.created[0]) {
		t.Error("initial pane should hold focus")
	}
	if mgr.CurrentWindow() != 0 {
		t.Errorf("CurrentWindow = %d, want 0", mgr.CurrentWindow())
	}
}

func TestSplitFocusesNewPane(t *testing.T) {
	mgr, alloc, bus := newTestManager(t)

	var created []string
	if _, err := bus.Subscribe(event.TopicPaneCreated, func(e event.Event) {
		created = append(created, e.Payload.(string))
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if err := mgr.SplitHorizontal(); err != nil {
		t.Fatalf("SplitHorizontal: %v", err)
	}

	if got := mgr.WindowCount(); got != 2 {
		t.Errorf("WindowCount = %d, want 2", got)
	}
	if mgr.Focused() != pane.Surface(alloc.created[1]) {
		t.Error("new pane should take focus")
	}
	if len(created) != 1 || created[0] != "s2" {
		t.Errorf("pane.created events = %v, want [s2]", created)
	}
}

func TestSplitAllocationFailureLeavesTreeIntact(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)
	alloc.failNext = true

	if err := mgr.SplitVertical(); !errors.Is(err, pane.ErrSurfaceAllocation) {
		t.Fatalf("err = %v, want ErrSurfaceAllocation", err)
	}
	if got := mgr.WindowCount(); got != 1 {
		t.Errorf("WindowCount = %d after failed split, want 1", got)
	}
}

func TestFocusDirection(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)

	// s1 | (s2 | s3), focus on s3. Left climbs to the root split and
	// lands on s1; the first slot of a root-anchored split has no
	// ancestor on its left, so focus stays put there.
	if err := mgr.SplitHorizontal(); err != nil {
		t.Fatalf("SplitHorizontal: %v", err)
	}
	if err := mgr.SplitHorizontal(); err != nil {
		t.Fatalf("SplitHorizontal: %v", err)
	}
	if err := mgr.Focus(pane.DirLeft); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if mgr.Focused() != pane.Surface(alloc.created[0]) {
		t.Error("focus should climb to the first pane")
	}

	if err := mgr.Focus(pane.DirLeft); err != nil {
		t.Fatalf("Focus: %v", err)
	}
	if mgr.Focused() != pane.Surface(alloc.created[0]) {
		t.Error("focus should not move when there is no target")
	}
}

func TestFocusNextPrevWraps(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)
	if err := mgr.SplitHorizontal(); err != nil {
		t.Fatalf("SplitHorizontal: %v", err)
	}
	if err := mgr.SplitVertical(); err != nil {
		t.Fatalf("SplitVertical: %v", err)
	}
	// Layout order: s1, s2, s3 with focus on s3.

	if err := mgr.FocusNext(); err != nil {
		t.Fatalf("FocusNext: %v", err)
	}
	if mgr.Focused() != pane.Surface(alloc.created[0]) {
		t.Error("FocusNext from the last pane should wrap to the first")
	}

	if err := mgr.FocusPrev(); err != nil {
		t.Fatalf("FocusPrev: %v", err)
	}
	if mgr.Focused() != pane.Surface(alloc.created[2]) {
		t.Error("FocusPrev from the first pane should wrap to the last")
	}

	if err := mgr.FocusIndex(1); err != nil {
		t.Fatalf("FocusIndex: %v", err)
	}
	if mgr.Focused() != pane.Surface(alloc.created[1]) {
		t.Error("FocusIndex should focus by layout order")
	}
	if err := mgr.FocusIndex(7); err == nil {
		t.Error("out-of-range FocusIndex should fail")
	}
}

func TestCloseContractsAndRefusesLast(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)
	if err := mgr.SplitHorizontal(); err != nil {
		t.Fatalf("SplitHorizontal: %v", err)
	}

	// Close the focused new pane: back to one, focus on survivor.
	if err := mgr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := mgr.WindowCount(); got != 1 {
		t.Errorf("WindowCount = %d, want 1", got)
	}
	if !alloc.created[1].destroyed {
		t.Error("closed pane should be destroyed")
	}
	if mgr.Focused() != pane.Surface(alloc.created[0]) {
		t.Error("survivor should take focus")
	}

	if err := mgr.Close(); !errors.Is(err, ErrLastPane) {
		t.Errorf("closing the last pane err = %v, want ErrLastPane", err)
	}
}

func TestCloseOthers(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)
	for i := 0; i < 3; i++ {
		if err := mgr.SplitHorizontal(); err != nil {
			t.Fatalf("SplitHorizontal: %v", err)
		}
	}
	survivor := mgr.Focused()

	if err := mgr.CloseOthers(); err != nil {
		t.Fatalf("CloseOthers: %v", err)
	}
	if got := mgr.WindowCount(); got != 1 {
		t.Errorf("WindowCount = %d, want 1", got)
	}
	if mgr.Focused() != survivor {
		t.Error("focused pane should survive CloseOthers")
	}
	destroyed := 0
	for _, s := range alloc.created {
		if s.destroyed {
			destroyed++
		}
	}
	if destroyed != 3 {
		t.Errorf("destroyed = %d, want 3", destroyed)
	}
}

func TestResizeDividerAndEqualize(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	if err := mgr.SplitHorizontal(); err != nil {
		t.Fatalf("SplitHorizontal: %v", err)
	}

	if err := mgr.ResizeDivider(4); err != nil {
		t.Fatalf("ResizeDivider: %v", err)
	}
	if err := mgr.ResizeDivider(3); err != nil {
		t.Fatalf("ResizeDivider: %v", err)
	}

	tab := mgr.Tabs()[mgr.ActiveTab()]
	sp, ok := tab.Root().Element().Split()
	if !ok {
		t.Fatal("root should hold a split")
	}
	if got := sp.Widget().Divider(); got != 7 {
		t.Errorf("divider = %d, want 7", got)
	}

	if err := mgr.Equalize(); err != nil {
		t.Fatalf("Equalize: %v", err)
	}
	if got := sp.Widget().Divider(); got != 0 {
		t.Errorf("divider = %d after equalize, want 0", got)
	}
}

func TestTabs(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)
	if err := mgr.SplitHorizontal(); err != nil {
		t.Fatalf("SplitHorizontal: %v", err)
	}

	if err := mgr.NewTab(); err != nil {
		t.Fatalf("NewTab: %v", err)
	}
	if got := mgr.ActiveTab(); got != 1 {
		t.Errorf("ActiveTab = %d, want 1", got)
	}
	if got := mgr.WindowCount(); got != 1 {
		t.Errorf("new tab WindowCount = %d, want 1", got)
	}
	if mgr.Focused() != pane.Surface(alloc.created[2]) {
		t.Error("new tab's pane should take focus")
	}

	if err := mgr.NextTab(); err != nil {
		t.Fatalf("NextTab: %v", err)
	}
	if got := mgr.ActiveTab(); got != 0 {
		t.Errorf("ActiveTab = %d after cycle, want 0", got)
	}
	if got := mgr.WindowCount(); got != 2 {
		t.Errorf("first tab WindowCount = %d, want 2", got)
	}

	if err := mgr.SelectTab(5); !errors.Is(err, ErrNoSuchTab) {
		t.Errorf("SelectTab(5) err = %v, want ErrNoSuchTab", err)
	}
}

func TestCloseSurfaceInBackgroundTab(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)
	if err := mgr.NewTab(); err != nil {
		t.Fatalf("NewTab: %v", err)
	}
	if err := mgr.SelectTab(0); err != nil {
		t.Fatalf("SelectTab: %v", err)
	}

	// Tab 1's sole pane closes behind the scenes, e.g. its shell
	// exited. The tab goes with it; the visible tab is untouched.
	if err := mgr.CloseSurface(alloc.created[1]); err != nil {
		t.Fatalf("CloseSurface: %v", err)
	}
	if got := len(mgr.Tabs()); got != 1 {
		t.Errorf("tabs = %d, want 1", got)
	}
	if got := mgr.ActiveTab(); got != 0 {
		t.Errorf("ActiveTab = %d, want 0", got)
	}
	if !alloc.created[1].destroyed {
		t.Error("background pane should be destroyed")
	}
}

func TestCloseLastPaneOfTabClosesTab(t *testing.T) {
	mgr, alloc, _ := newTestManager(t)
	if err := mgr.NewTab(); err != nil {
		t.Fatalf("NewTab: %v", err)
	}

	// Focused pane is the sole pane of tab 1; closing it closes the tab.
	if err := mgr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := len(mgr.Tabs()); got != 1 {
		t.Errorf("tabs = %d, want 1", got)
	}
	if !alloc.created[1].destroyed {
		t.Error("tab's pane should be destroyed")
	}
	if mgr.Focused() != pane.Surface(alloc.created[0]) {
		t.Error("focus should return to the remaining tab's pane")
	}
}
