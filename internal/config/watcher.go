package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives the configuration loaded after a file change.
// Load errors are delivered too so the caller can report them without
// losing the running configuration.
type ReloadFunc func(cfg Config, err error)

// Watcher reloads the configuration file when it changes on disk.
// The parent directory is watched rather than the file itself, so
// editors that replace the file by rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	reload   ReloadFunc

	fw     *fsnotify.Watcher
	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// NewWatcher creates a watcher for the configuration file at path.
// Call Start to begin watching.
func NewWatcher(path string, reload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	return &Watcher{
		path:     abs,
		debounce: 100 * time.Millisecond,
		reload:   reload,
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce adjusts how long rapid write bursts are coalesced.
// Must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d >= 0 {
		w.debounce = d
	}
}

// Start begins delivering reloads. It returns once the underlying
// watch is registered; events are handled on a background goroutine.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("config watcher %s: %w", w.path, err)
	}
	w.fw = fw
	go w.loop()
	return nil
}

// Close stops watching. Pending debounced reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	if w.fw == nil {
		return nil
	}
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// schedule arms the debounce timer, restarting it if a burst of
// events is still in progress.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	cfg, err := Load(w.path)
	w.reload(cfg, err)
}
