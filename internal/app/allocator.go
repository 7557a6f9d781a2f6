package app

import (
	"errors"
	"fmt"

	"github.com/dshills/panestorm/internal/pane"
	"github.com/dshills/panestorm/internal/renderer"
	"github.com/dshills/panestorm/internal/term"
	"github.com/dshills/panestorm/internal/workspace"
)

// allocator satisfies pane.Allocator. Surfaces are PTY-backed
// terminals paired with a renderer view; splitter widgets come from
// the renderer.
type allocator struct {
	app *Application
}

func (a *allocator) NewSurface(parent pane.Surface) (pane.Surface, error) {
	app := a.app

	opts := term.Options{
		OnOutput: func([]byte) { app.screen.Wake() },
		// The workspace manager is being constructed when the first
		// pane grabs focus; the manager records its own initial focus.
		OnFocus: func(t *term.Terminal) {
			if ws := app.workspace; ws != nil {
				ws.NoteFocus(t)
			}
		},
		OnClose: app.noteTerminalClosed,
	}
	if p, ok := parent.(*term.Terminal); ok {
		opts.Name = p.Name()
	}

	t, err := app.terminals.Create(opts)
	if err != nil {
		return nil, fmt.Errorf("new pane: %w", err)
	}
	t.SetDisplayHandle(renderer.NewView(t.ID(), t.Name(), t.Tail))
	return t, nil
}

func (a *allocator) NewSplitter(o pane.Orientation) pane.Splitter {
	return a.app.renderer.NewSplitter(o)
}

func (a *allocator) ReleaseSplitter(s pane.Splitter) {
	a.app.renderer.ReleaseSplitter(s)
}

// noteTerminalClosed queues a shell that exited so the UI thread can
// contract its pane. Called from the terminal's reader goroutine.
func (app *Application) noteTerminalClosed(t *term.Terminal) {
	if app.quitting.Load() {
		return
	}
	app.closedMu.Lock()
	app.closedTerms = append(app.closedTerms, t)
	app.closedMu.Unlock()
	app.screen.Wake()
}

// reapClosedTerminals removes panes whose shell exited. Runs on the UI
// thread.
func (app *Application) reapClosedTerminals() error {
	app.closedMu.Lock()
	closed := app.closedTerms
	app.closedTerms = nil
	app.closedMu.Unlock()

	for _, t := range closed {
		err := app.workspace.CloseSurface(t)
		switch {
		case err == nil:
		case errors.Is(err, pane.ErrSurfaceNotMounted):
			// Already removed by an explicit close command.
		case errors.Is(err, workspace.ErrLastPane):
			// The last shell exited; leave via the normal quit path.
			return ErrQuit
		default:
			return err
		}
	}
	return nil
}
