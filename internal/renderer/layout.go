package renderer

import "github.com/dshills/panestorm/internal/pane"

// Rect is an integer cell rectangle on the screen.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// DividerLine is one drawn divider segment.
type DividerLine struct {
	Rect   Rect
	Orient pane.Orientation
}

// Layout is the computed geometry for one frame.
type Layout struct {
	Views    map[*View]Rect
	Dividers []DividerLine
}

// ComputeLayout carves bounds into per-view rectangles by walking the
// widget tree from root. Every cell of bounds belongs to exactly one
// view or divider line.
func ComputeLayout(root pane.Handle, bounds Rect) *Layout {
	l := &Layout{Views: make(map[*View]Rect)}
	l.walk(root, bounds)
	return l
}

func (l *Layout) walk(h pane.Handle, r Rect) {
	if r.Empty() {
		return
	}
	switch w := h.(type) {
	case *View:
		l.Views[w] = r
	case *SplitWidget:
		first, div, second := splitRect(w, r)
		l.walk(w.First(), first)
		if !div.Empty() {
			l.Dividers = append(l.Dividers, DividerLine{Rect: div, Orient: w.Orientation()})
		}
		l.walk(w.Second(), second)
	}
}

// splitRect divides r into the first child's area, a one-cell divider
// line, and the second child's area, honoring the widget's divider
// position. A zero divider splits the space evenly.
func splitRect(w *SplitWidget, r Rect) (first, div, second Rect) {
	if w.Orientation() == pane.Horizontal {
		total := r.W - 1
		pos := clampDivider(w.Divider(), total)
		first = Rect{X: r.X, Y: r.Y, W: pos, H: r.H}
		div = Rect{X: r.X + pos, Y: r.Y, W: 1, H: r.H}
		second = Rect{X: r.X + pos + 1, Y: r.Y, W: total - pos, H: r.H}
		return first, div, second
	}

	total := r.H - 1
	pos := clampDivider(w.Divider(), total)
	first = Rect{X: r.X, Y: r.Y, W: r.W, H: pos}
	div = Rect{X: r.X, Y: r.Y + pos, W: r.W, H: 1}
	second = Rect{X: r.X, Y: r.Y + pos + 1, W: r.W, H: total - pos}
	return first, div, second
}

// clampDivider bounds a divider position to keep both children at least
// one cell when there is room. total is the space available to the two
// children combined.
func clampDivider(pos, total int) int {
	if total < 1 {
		return 0
	}
	if pos <= 0 {
		pos = total / 2
	}
	if pos < 1 {
		pos = 1
	}
	if pos > total-1 {
		pos = total - 1
	}
	return pos
}
