package workspace

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/panestorm/internal/event"
	"github.com/dshills/panestorm/internal/pane"
)

// Identified is implemented by surfaces that expose a stable ID, used
// for event payloads.
type Identified interface {
	ID() string
}

// Tab is one pane tree root with the window content area displaying it.
type Tab struct {
	root *pane.Root
	win  pane.Window
}

// Root returns the tab's tree anchor.
func (t *Tab) Root() *pane.Root { return t.root }

// Window returns the content area displaying the tab.
func (t *Tab) Window() pane.Window { return t.win }

// Config wires a Manager.
type Config struct {
	// Alloc creates surfaces and splitter widgets.
	Alloc pane.Allocator

	// Bus receives pane and layout events, may be nil.
	Bus event.Publisher

	// NewWindow creates the content area for each new tab.
	NewWindow func() pane.Window
}

// Manager owns the pane tree of one window and implements the pane
// command surface: splits, directional focus, close with contraction,
// divider adjustment and tabs. Commands are expected on the single UI
// thread; the mutex only guards the manager's own bookkeeping against
// readers on other goroutines.
type Manager struct {
	mu      sync.Mutex
	tree    *pane.Tree
	alloc   pane.Allocator
	bus     event.Publisher
	newWin  func() pane.Window
	tabs    []*Tab
	active  int
	focused pane.Surface
}

// NewManager creates a manager with one tab containing one pane.
func NewManager(cfg Config) (*Manager, error) {
	m := &Manager{
		tree:   pane.NewTree(cfg.Alloc),
		alloc:  cfg.Alloc,
		bus:    cfg.Bus,
		newWin: cfg.NewWindow,
	}
	if _, err := m.openTab(pane.WindowRoot); err != nil {
		return nil, err
	}
	return m, nil
}

// NoteFocus records that a surface took input focus. Wired into the
// surfaces' focus callbacks by the application.
func (m *Manager) NoteFocus(s pane.Surface) {
	m.mu.Lock()
	m.focused = s
	m.mu.Unlock()
	m.publish(event.TopicPaneFocused, surfaceID(s))
}

// Focused returns the surface holding input focus.
func (m *Manager) Focused() pane.Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focused
}

// ActiveTab returns the index of the visible tab.
func (m *Manager) ActiveTab() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Tabs returns the current tabs in order.
func (m *Manager) Tabs() []*Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Tab(nil), m.tabs...)
}

// ActiveWindow returns the content area of the visible tab.
func (m *Manager) ActiveWindow() pane.Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tabs[m.active].win
}

// Surfaces returns the visible tab's surfaces in layout order.
func (m *Manager) Surfaces() []pane.Surface {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tabs[m.active].root.Surfaces()
}

// WindowCount returns the number of panes in the visible tab.
func (m *Manager) WindowCount() int {
	return len(m.Surfaces())
}

// CurrentWindow returns the focused pane's index in layout order, or -1.
func (m *Manager) CurrentWindow() int {
	m.mu.Lock()
	focused := m.focused
	surfaces := m.tabs[m.active].root.Surfaces()
	m.mu.Unlock()

	for i, s := range surfaces {
		if s == focused {
			return i
		}
	}
	return -1
}

// SplitHorizontal splits the focused pane side by side.
func (m *Manager) SplitHorizontal() error { return m.Split(pane.DirRight) }

// SplitVertical splits the focused pane stacked.
func (m *Manager) SplitVertical() error { return m.Split(pane.DirDown) }

// Split splits the focused pane in the given direction. The new pane
// receives focus.
func (m *Manager) Split(dir pane.Direction) error {
	m.mu.Lock()
	focused := m.focused
	m.mu.Unlock()
	if focused == nil {
		return ErrNoFocus
	}

	sp, err := m.tree.SplitSurface(focused, dir)
	if err != nil {
		return fmt.Errorf("split %v: %w", dir, err)
	}

	created := sp.Second()
	if dir == pane.DirLeft || dir == pane.DirUp {
		created = sp.First()
	}
	if s, ok := created.Surface(); ok {
		m.publish(event.TopicPaneCreated, surfaceID(s))
	}
	m.publish(event.TopicLayoutChanged, nil)
	return nil
}

// Focus moves input focus to the neighbor in the given direction. A
// direction with no target is a no-op.
func (m *Manager) Focus(dir pane.Direction) error {
	m.mu.Lock()
	focused := m.focused
	m.mu.Unlock()
	if focused == nil {
		return ErrNoFocus
	}

	if target := m.tree.Neighbors(focused).Get(dir); target != nil {
		target.GrabFocus()
	}
	return nil
}

// FocusNext moves focus to the next pane in layout order, wrapping.
func (m *Manager) FocusNext() error { return m.focusStep(1) }

// FocusPrev moves focus to the previous pane in layout order, wrapping.
func (m *Manager) FocusPrev() error { return m.focusStep(-1) }

// FocusIndex moves focus to the pane at the given layout-order index.
func (m *Manager) FocusIndex(index int) error {
	surfaces := m.Surfaces()
	if index < 0 || index >= len(surfaces) {
		return fmt.Errorf("focus index %d out of range", index)
	}
	surfaces[index].GrabFocus()
	return nil
}

func (m *Manager) focusStep(delta int) error {
	m.mu.Lock()
	focused := m.focused
	surfaces := m.tabs[m.active].root.Surfaces()
	m.mu.Unlock()

	if len(surfaces) == 0 {
		return ErrNoFocus
	}
	at := 0
	for i, s := range surfaces {
		if s == focused {
			at = i
			break
		}
	}
	next := (at + delta + len(surfaces)) % len(surfaces)
	surfaces[next].GrabFocus()
	return nil
}

// Close removes the focused pane, contracting the tree. Closing the
// last pane of a tab closes the tab; closing the last pane of the last
// tab is refused.
func (m *Manager) Close() error {
	m.mu.Lock()
	focused := m.focused
	m.mu.Unlock()
	if focused == nil {
		return ErrNoFocus
	}

	return m.CloseSurface(focused)
}

// CloseSurface removes a specific pane, contracting the tree. Used for
// panes whose shell exited on its own as well as for the focused pane.
func (m *Manager) CloseSurface(s pane.Surface) error {
	err := m.tree.RemoveSurface(s)
	switch {
	case err == nil:
		m.publish(event.TopicLayoutChanged, nil)
		return nil
	case errors.Is(err, pane.ErrLastPane):
		return m.closeTabOf(s)
	default:
		return err
	}
}

// CloseOthers removes every pane in the visible tab except the focused
// one.
func (m *Manager) CloseOthers() error {
	m.mu.Lock()
	focused := m.focused
	m.mu.Unlock()
	if focused == nil {
		return ErrNoFocus
	}

	changed := false
	for {
		c, ok := m.tree.ContainerOf(focused)
		if !ok {
			return pane.ErrSurfaceNotMounted
		}
		sp, ok := c.Split()
		if !ok {
			break
		}
		sp.RemoveChild(sp.Element(c.Slot().Other()), sp.Element(c.Slot()))
		changed = true
	}
	if changed {
		m.publish(event.TopicLayoutChanged, nil)
	}
	return nil
}

// ResizeDivider nudges the divider of the focused pane's split.
func (m *Manager) ResizeDivider(delta int) error {
	m.mu.Lock()
	focused := m.focused
	m.mu.Unlock()
	if focused == nil {
		return ErrNoFocus
	}

	c, ok := m.tree.ContainerOf(focused)
	if !ok {
		return pane.ErrSurfaceNotMounted
	}
	sp, ok := c.Split()
	if !ok {
		return nil
	}
	w := sp.Widget()
	w.SetDivider(w.Divider() + delta)
	m.publish(event.TopicLayoutChanged, nil)
	return nil
}

// Equalize resets every divider in the visible tab to balanced.
func (m *Manager) Equalize() error {
	m.mu.Lock()
	root := m.tabs[m.active].root
	m.mu.Unlock()

	equalize(root.Element())
	m.publish(event.TopicLayoutChanged, nil)
	return nil
}

func equalize(e pane.Element) {
	sp, ok := e.Split()
	if !ok {
		return
	}
	sp.Widget().SetDivider(0)
	equalize(sp.First())
	equalize(sp.Second())
}

// NewTab opens a new tab with a single pane and switches to it.
func (m *Manager) NewTab() error {
	tab, err := m.openTab(pane.TabRoot)
	if err != nil {
		return err
	}

	m.mu.Lock()
	for i, t := range m.tabs {
		if t == tab {
			m.active = i
			break
		}
	}
	m.mu.Unlock()
	m.publish(event.TopicLayoutChanged, nil)
	return nil
}

// SelectTab switches to the tab at index and focuses its first pane.
func (m *Manager) SelectTab(index int) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.tabs) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrNoSuchTab, index)
	}
	m.active = index
	root := m.tabs[index].root
	m.mu.Unlock()

	root.Element().GrabFocus()
	m.publish(event.TopicLayoutChanged, nil)
	return nil
}

// NextTab cycles to the following tab.
func (m *Manager) NextTab() error {
	m.mu.Lock()
	next := (m.active + 1) % len(m.tabs)
	m.mu.Unlock()
	return m.SelectTab(next)
}

// openTab creates a tab with one freshly allocated pane.
func (m *Manager) openTab(kind pane.RootKind) (*Tab, error) {
	win := m.newWin()
	root := m.tree.NewRoot(kind, win)

	s, err := m.alloc.NewSurface(nil)
	if err != nil {
		return nil, fmt.Errorf("open tab: %w", err)
	}
	root.Mount(s)

	tab := &Tab{root: root, win: win}
	m.mu.Lock()
	m.tabs = append(m.tabs, tab)
	// Mount grabbed focus, but the surface's focus callback may not be
	// wired back to this manager yet during construction.
	m.focused = s
	m.mu.Unlock()

	m.publish(event.TopicPaneCreated, surfaceID(s))
	return tab, nil
}

// closeTabOf tears down the tab holding the given sole surface. The
// last tab is refused.
func (m *Manager) closeTabOf(s pane.Surface) error {
	c, ok := m.tree.ContainerOf(s)
	if !ok {
		return pane.ErrSurfaceNotMounted
	}
	root, ok := c.Root()
	if !ok {
		return pane.ErrSurfaceNotMounted
	}

	m.mu.Lock()
	if len(m.tabs) <= 1 {
		m.mu.Unlock()
		return ErrLastPane
	}
	at := -1
	for i, t := range m.tabs {
		if t.root == root {
			at = i
			break
		}
	}
	if at < 0 {
		m.mu.Unlock()
		return pane.ErrSurfaceNotMounted
	}
	tab := m.tabs[at]
	m.tabs = append(m.tabs[:at], m.tabs[at+1:]...)
	if m.active > at || m.active >= len(m.tabs) {
		m.active--
	}
	if m.active < 0 {
		m.active = 0
	}
	next := m.tabs[m.active]
	m.mu.Unlock()

	m.tree.DestroyRoot(tab.root)
	next.root.Element().GrabFocus()
	m.publish(event.TopicLayoutChanged, nil)
	return nil
}

func (m *Manager) publish(topic event.Topic, payload any) {
	if m.bus != nil {
		m.bus.Publish(topic, payload)
	}
}

func surfaceID(s pane.Surface) string {
	if i, ok := s.(Identified); ok {
		return i.ID()
	}
	return ""
}
