package app

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/panestorm/internal/config"
	"github.com/dshills/panestorm/internal/event"
	"github.com/dshills/panestorm/internal/input"
	"github.com/dshills/panestorm/internal/pane"
	"github.com/dshills/panestorm/internal/plugin/lua"
	"github.com/dshills/panestorm/internal/renderer"
	"github.com/dshills/panestorm/internal/term"
	"github.com/dshills/panestorm/internal/workspace"
)

// ErrQuit signals a normal, user-requested exit.
var ErrQuit = input.ErrQuit

// Options configures the application.
type Options struct {
	// ConfigPath overrides the configuration file location.
	ConfigPath string

	// Shell overrides the configured shell.
	Shell string

	// WorkDir is the starting directory for shells.
	WorkDir string

	// InitScript is a Lua layout script run after startup.
	InitScript string

	// LogPath enables logging to a file.
	LogPath string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// Watch enables live configuration reload.
	Watch bool
}

// Application coordinates the screen, the terminals, the pane tree and
// input dispatch.
type Application struct {
	opts   Options
	cfg    config.Config
	logger *Logger
	logFd  *os.File

	bus       *event.Bus
	screen    *renderer.Screen
	renderer  *renderer.Renderer
	terminals *term.Manager
	workspace *workspace.Manager
	handler   *input.Handler
	watcher   *config.Watcher
	scripts   *lua.State

	// closedTerms queues shells that exited on their own; drained on
	// the UI thread.
	closedMu    sync.Mutex
	closedTerms []*term.Terminal

	quitting atomic.Bool
	shutdown sync.Once
}

// New builds a fully wired application. The screen is not initialized
// until Run.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts, bus: event.NewBus()}

	if err := app.initLogging(); err != nil {
		return nil, err
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		app.logger.Warn("config rejected, using defaults: %v", err)
	}
	if opts.Shell != "" {
		cfg.Terminal.Shell = opts.Shell
	}
	if opts.WorkDir != "" {
		cfg.Terminal.WorkDir = opts.WorkDir
	}
	app.cfg = cfg

	screen, err := renderer.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	app.screen = screen
	app.renderer = renderer.New(screen)

	app.terminals = term.NewManager(term.ManagerConfig{
		Shell:     cfg.Terminal.Shell,
		WorkDir:   cfg.Terminal.WorkDir,
		TailLines: cfg.Terminal.Scrollback,
		Bus:       app.bus,
	})

	ws, err := workspace.NewManager(workspace.Config{
		Alloc:     &allocator{app: app},
		Bus:       app.bus,
		NewWindow: newWindow,
	})
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	app.workspace = ws

	km, err := input.Compile(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	app.handler = input.NewHandler(ws, km, cfg.Pane.DividerStep)

	if opts.Watch {
		w, err := config.NewWatcher(cfgPath, app.applyConfig)
		if err != nil {
			return nil, err
		}
		app.watcher = w
	}

	if opts.InitScript != "" {
		state, err := lua.NewState(ws)
		if err != nil {
			return nil, fmt.Errorf("scripting: %w", err)
		}
		app.scripts = state
	}

	return app, nil
}

func (app *Application) initLogging() error {
	level := ParseLogLevel(app.opts.LogLevel)
	var out io.Writer
	if app.opts.LogPath != "" {
		fd, err := os.OpenFile(app.opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		app.logFd = fd
		out = fd
	}
	app.logger = NewLogger(out, level)
	return nil
}

// applyConfig installs a freshly reloaded configuration. Runs off the
// UI thread; only the swappable pieces are touched.
func (app *Application) applyConfig(cfg config.Config, err error) {
	if err != nil {
		app.logger.Warn("config reload failed: %v", err)
		return
	}
	km, err := input.Compile(cfg.Keys)
	if err != nil {
		app.logger.Warn("config reload: %v", err)
		return
	}
	app.handler.SetKeymap(km)
	app.handler.SetDividerStep(cfg.Pane.DividerStep)
	app.bus.Publish(event.TopicConfigChanged, nil)
	app.logger.Info("configuration reloaded")
	app.screen.Wake()
}

// Shutdown releases everything. Safe to call more than once and on any
// exit path.
func (app *Application) Shutdown() {
	app.shutdown.Do(func() {
		app.quitting.Store(true)
		if app.watcher != nil {
			_ = app.watcher.Close()
		}
		if app.scripts != nil {
			app.scripts.Close()
		}
		app.terminals.CloseAll()
		app.screen.Fini()
		if app.logFd != nil {
			_ = app.logFd.Close()
		}
	})
}

// newWindow creates the content area for a workspace tab.
func newWindow() pane.Window {
	return renderer.NewRootWindow()
}
