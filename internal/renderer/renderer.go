package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/panestorm/internal/pane"
)

// Renderer draws the pane tree and allocates the splitter widgets the
// tree attaches children to. It implements the splitter half of
// pane.Allocator; surfaces come from the terminal layer.
type Renderer struct {
	screen *Screen

	styleTitle   tcell.Style
	styleFocused tcell.Style
	styleDivider tcell.Style
	styleText    tcell.Style
}

// New creates a renderer for the given screen.
func New(screen *Screen) *Renderer {
	return &Renderer{
		screen:       screen,
		styleTitle:   tcell.StyleDefault.Reverse(true),
		styleFocused: tcell.StyleDefault.Reverse(true).Bold(true),
		styleDivider: tcell.StyleDefault.Foreground(tcell.ColorGray),
		styleText:    tcell.StyleDefault,
	}
}

// NewSplitter creates the host widget backing a new split.
func (r *Renderer) NewSplitter(o pane.Orientation) pane.Splitter {
	return &SplitWidget{orient: o}
}

// ReleaseSplitter destroys a splitter widget. SplitWidgets hold no
// resources beyond their child references, so this only detaches them.
func (r *Renderer) ReleaseSplitter(s pane.Splitter) {
	if w, ok := s.(*SplitWidget); ok {
		w.first, w.second = nil, nil
	}
}

// Draw renders one frame: the tree under win carved into rectangles,
// divider lines between panes, and each pane's title bar and recent
// output. focusedID marks the pane drawn with the focused title style.
func (r *Renderer) Draw(win *RootWindow, focusedID string) {
	w, h := r.screen.Size()
	r.screen.Clear()

	layout := ComputeLayout(win.Child(), Rect{W: w, H: h})
	for view, rect := range layout.Views {
		r.drawView(view, rect, view.ID() == focusedID)
	}
	for _, d := range layout.Dividers {
		r.drawDivider(d)
	}

	r.screen.Show()
}

// ViewRects returns the current rectangle for every view, used to size
// the PTYs behind the panes after a layout change.
func (r *Renderer) ViewRects(win *RootWindow) map[*View]Rect {
	w, h := r.screen.Size()
	return ComputeLayout(win.Child(), Rect{W: w, H: h}).Views
}

func (r *Renderer) drawView(v *View, rect Rect, focused bool) {
	if rect.Empty() {
		return
	}

	style := r.styleTitle
	if focused {
		style = r.styleFocused
	}
	r.drawText(rect.X, rect.Y, rect.W, style, v.Title())

	body := rect.H - 1
	if body <= 0 {
		return
	}
	for y, line := range v.Lines(body) {
		r.drawText(rect.X, rect.Y+1+y, rect.W, r.styleText, line)
	}
}

// drawText writes one row of text, padding the rest of the width with
// spaces. Runes advance by display width so wide characters line up.
func (r *Renderer) drawText(x, y, width int, style tcell.Style, text string) {
	col := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		r.screen.SetCell(x+col, y, style, ch)
		col += w
	}
	for ; col < width; col++ {
		r.screen.SetCell(x+col, y, style, ' ')
	}
}

func (r *Renderer) drawDivider(d DividerLine) {
	ch := tcell.RuneVLine
	if d.Orient == pane.Vertical {
		ch = tcell.RuneHLine
	}
	for y := 0; y < d.Rect.H; y++ {
		for x := 0; x < d.Rect.W; x++ {
			r.screen.SetCell(d.Rect.X+x, d.Rect.Y+y, r.styleDivider, ch)
		}
	}
}
