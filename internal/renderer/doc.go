// Package renderer materializes the pane tree on a tcell screen.
//
// It plays the part of the host toolkit for the pane package: splits are
// backed by SplitWidget (the pane.Splitter implementation), terminal
// panes by View, and the window root by RootWindow. Layout walks the
// widget tree carving the screen into cell rectangles separated by
// one-cell divider lines; the renderer then draws every view's title bar
// and recent output.
//
// SplitWidget reproduces a behavior of real paned widgets that the tree
// core depends on: attaching a child resets the divider position, so
// callers re-syncing children must restore the divider themselves.
package renderer
