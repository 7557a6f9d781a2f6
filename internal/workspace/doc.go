// Package workspace implements the window-level pane commands on top of
// the split tree: splitting the focused pane, direction-aware focus
// movement, closing panes with tree contraction, divider adjustment and
// tab management.
//
// Commands arrive from the input layer and from scripting and run on
// the single UI thread; every structural change is announced on the
// event bus so the renderer can redraw.
package workspace
