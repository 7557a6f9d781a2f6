package term

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dshills/panestorm/internal/event"
)

// ManagerConfig configures a terminal manager.
type ManagerConfig struct {
	// Shell is the default shell for new terminals.
	Shell string

	// WorkDir is the default working directory.
	WorkDir string

	// TailLines is the default tail buffer size.
	TailLines int

	// Bus receives pane.created/pane.closed style terminal events, may
	// be nil.
	Bus event.Publisher
}

// Manager tracks all live terminals for one application.
type Manager struct {
	config ManagerConfig

	mu        sync.RWMutex
	terminals map[string]*Terminal
	closed    atomic.Bool
}

// NewManager creates a terminal manager.
func NewManager(config ManagerConfig) *Manager {
	return &Manager{
		config:    config,
		terminals: make(map[string]*Terminal),
	}
}

// Create starts a new terminal. Zero-valued option fields fall back to
// the manager defaults.
func (m *Manager) Create(opts Options) (*Terminal, error) {
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}
	if opts.Shell == "" {
		opts.Shell = m.config.Shell
	}
	if opts.WorkDir == "" {
		opts.WorkDir = m.config.WorkDir
	}
	if opts.TailLines <= 0 {
		opts.TailLines = m.config.TailLines
	}

	userOnClose := opts.OnClose
	opts.OnClose = func(t *Terminal) {
		m.forget(t.id)
		if userOnClose != nil {
			userOnClose(t)
		}
	}

	t, err := newTerminal(opts)
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	m.mu.Lock()
	m.terminals[t.id] = t
	m.mu.Unlock()
	return t, nil
}

// Get returns the terminal with the given ID.
func (m *Manager) Get(id string) (*Terminal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.terminals[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTerminalNotFound, id)
	}
	return t, nil
}

// List returns every live terminal.
func (m *Manager) List() []*Terminal {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Terminal, 0, len(m.terminals))
	for _, t := range m.terminals {
		out = append(out, t)
	}
	return out
}

// Count returns the number of live terminals.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.terminals)
}

// Close terminates one terminal.
func (m *Manager) Close(id string) error {
	t, err := m.Get(id)
	if err != nil {
		return err
	}
	return t.Close()
}

// CloseAll terminates every terminal and refuses further creation.
func (m *Manager) CloseAll() {
	m.closed.Store(true)
	for _, t := range m.List() {
		_ = t.Close()
	}
}

func (m *Manager) forget(id string) {
	m.mu.Lock()
	delete(m.terminals, id)
	m.mu.Unlock()

	if m.config.Bus != nil {
		m.config.Bus.Publish(event.TopicPaneClosed, id)
	}
}
