package app

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/panestorm/internal/event"
	"github.com/dshills/panestorm/internal/renderer"
	"github.com/dshills/panestorm/internal/term"
)

// Run initializes the screen and processes events until quit. It
// returns ErrQuit on a normal exit.
func (app *Application) Run() error {
	if err := app.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}

	if app.watcher != nil {
		if err := app.watcher.Start(); err != nil {
			app.logger.Warn("config watch unavailable: %v", err)
		}
	}

	app.screen.OnResize(func(int, int) {
		app.resizeTerminals()
	})

	// Redraw whenever the tree changes shape, not just on key echo.
	if _, err := app.bus.Subscribe(event.TopicLayoutChanged, func(event.Event) {
		app.resizeTerminals()
	}); err != nil {
		return err
	}

	if app.opts.InitScript != "" {
		if err := app.scripts.DoFile(app.opts.InitScript); err != nil {
			app.logger.Error("init script: %v", err)
		}
	}

	app.resizeTerminals()
	app.logger.Info("panestorm started")

	for {
		app.draw()

		ev := app.screen.PollEvent()
		if ev == nil {
			return ErrQuit
		}
		if err := app.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return ErrQuit
			}
			return err
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) error {
	if app.quitting.Load() {
		return ErrQuit
	}

	switch tev := ev.(type) {
	case *tcell.EventResize:
		app.screen.HandleEvent(ev)
		return nil

	case *tcell.EventInterrupt:
		// Wakeup from a reader goroutine or the config watcher.
		return app.reapClosedTerminals()

	case *tcell.EventKey:
		handled, err := app.handler.HandleKey(tev)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return ErrQuit
			}
			app.logger.Warn("command failed: %v", err)
			return nil
		}
		if !handled {
			app.forwardKey(tev)
		}
		return app.reapClosedTerminals()

	default:
		return nil
	}
}

// forwardKey sends an unbound key to the focused pane's shell.
func (app *Application) forwardKey(ev *tcell.EventKey) {
	t, ok := app.workspace.Focused().(*term.Terminal)
	if !ok || t == nil {
		return
	}
	b := keyBytes(ev)
	if len(b) == 0 {
		return
	}
	if _, err := t.Write(b); err != nil {
		app.logger.Debug("forward key: %v", err)
	}
}

// keyBytes renders a key event as the bytes a terminal would produce.
func keyBytes(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyRune:
		return []byte(string(ev.Rune()))
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyTab:
		return []byte{'\t'}
	case tcell.KeyEscape:
		return []byte{0x1b}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyUp:
		return []byte("\x1b[A")
	case tcell.KeyDown:
		return []byte("\x1b[B")
	case tcell.KeyRight:
		return []byte("\x1b[C")
	case tcell.KeyLeft:
		return []byte("\x1b[D")
	case tcell.KeyHome:
		return []byte("\x1b[H")
	case tcell.KeyEnd:
		return []byte("\x1b[F")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return []byte{byte(ev.Key() - tcell.KeyCtrlA + 1)}
	}
	return nil
}

func (app *Application) draw() {
	win, ok := app.workspace.ActiveWindow().(*renderer.RootWindow)
	if !ok {
		return
	}
	app.renderer.Draw(win, app.focusedID())
}

func (app *Application) focusedID() string {
	if t, ok := app.workspace.Focused().(*term.Terminal); ok && t != nil {
		return t.ID()
	}
	return ""
}

// resizeTerminals pushes the current layout's rectangles down to the
// PTYs so shells see their real pane size.
func (app *Application) resizeTerminals() {
	win, ok := app.workspace.ActiveWindow().(*renderer.RootWindow)
	if !ok {
		return
	}
	rects := app.renderer.ViewRects(win)

	byID := make(map[string]renderer.Rect, len(rects))
	for view, rect := range rects {
		byID[view.ID()] = rect
	}
	for _, t := range app.terminals.List() {
		rect, ok := byID[t.ID()]
		if !ok || rect.Empty() {
			continue
		}
		// One row of each pane is the title bar.
		rows := rect.H - 1
		if rows < 1 {
			rows = 1
		}
		if err := t.Resize(rect.W, rows); err != nil {
			app.logger.Debug("resize %s: %v", t.ID(), err)
		}
	}
}
