package renderer

import (
	"sync"

	"github.com/dshills/panestorm/internal/pane"
)

// View is the drawable leaf widget for one terminal pane.
type View struct {
	id    string
	mu    sync.RWMutex
	title string
	lines func(n int) []string
}

// NewView creates a view. lines supplies the most recent output lines
// for drawing and may be nil.
func NewView(id, title string, lines func(n int) []string) *View {
	return &View{id: id, title: title, lines: lines}
}

// ID returns the pane identifier this view renders.
func (v *View) ID() string { return v.id }

// Title returns the view's title bar text.
func (v *View) Title() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.title
}

// SetTitle updates the view's title bar text.
func (v *View) SetTitle(title string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.title = title
}

// Lines returns up to n recent output lines.
func (v *View) Lines(n int) []string {
	if v.lines == nil {
		return nil
	}
	return v.lines(n)
}

// SplitWidget is the host paned widget backing one pane.Split: two child
// handles separated by a movable divider. A divider of 0 means balanced.
//
// Like the toolkit widgets it stands in for, attaching a child resets
// the divider position.
type SplitWidget struct {
	orient  pane.Orientation
	first   pane.Handle
	second  pane.Handle
	divider int
}

// Orientation returns the widget's split axis.
func (w *SplitWidget) Orientation() pane.Orientation { return w.orient }

// First returns the top/left child handle.
func (w *SplitWidget) First() pane.Handle { return w.first }

// Second returns the bottom/right child handle.
func (w *SplitWidget) Second() pane.Handle { return w.second }

// SetFirst implements pane.Splitter.
func (w *SplitWidget) SetFirst(h pane.Handle) {
	if h != nil {
		w.divider = 0
	}
	w.first = h
}

// SetSecond implements pane.Splitter.
func (w *SplitWidget) SetSecond(h pane.Handle) {
	if h != nil {
		w.divider = 0
	}
	w.second = h
}

// Divider implements pane.Splitter.
func (w *SplitWidget) Divider() int { return w.divider }

// SetDivider implements pane.Splitter.
func (w *SplitWidget) SetDivider(pos int) {
	if pos < 0 {
		pos = 0
	}
	w.divider = pos
}

// Handle implements pane.Splitter.
func (w *SplitWidget) Handle() pane.Handle { return w }

// RootWindow implements pane.Window: the screen area displaying one
// root element.
type RootWindow struct {
	mu    sync.RWMutex
	child pane.Handle
}

// NewRootWindow creates an empty root window.
func NewRootWindow() *RootWindow { return &RootWindow{} }

// SetRootChild implements pane.Window.
func (w *RootWindow) SetRootChild(h pane.Handle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.child = h
}

// Child returns the current root handle.
func (w *RootWindow) Child() pane.Handle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.child
}
