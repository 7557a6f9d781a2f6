package term

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/creack/pty"
	"github.com/google/uuid"

	"github.com/dshills/panestorm/internal/pane"
)

// Options configures a new terminal.
type Options struct {
	// Name is a human-readable name for the terminal.
	Name string

	// Shell is the shell executable (defaults to $SHELL or /bin/sh).
	Shell string

	// Args are additional arguments to pass to the shell.
	Args []string

	// Env are additional environment variables.
	Env []string

	// WorkDir is the working directory for the shell.
	WorkDir string

	// Cols is the number of columns (default 80).
	Cols int

	// Rows is the number of rows (default 24).
	Rows int

	// TailLines is the number of recent output lines kept for display
	// (default 200).
	TailLines int

	// OnOutput is called from the read goroutine when output arrives.
	OnOutput func(data []byte)

	// OnFocus is called when the terminal is asked to grab input focus.
	OnFocus func(t *Terminal)

	// OnClose is called once when the terminal closes.
	OnClose func(t *Terminal)
}

func (o *Options) applyDefaults() {
	if o.Shell == "" {
		o.Shell = os.Getenv("SHELL")
		if o.Shell == "" {
			o.Shell = "/bin/sh"
		}
	}
	if o.Cols <= 0 {
		o.Cols = 80
	}
	if o.Rows <= 0 {
		o.Rows = 24
	}
	if o.TailLines <= 0 {
		o.TailLines = 200
	}
	if o.Name == "" {
		o.Name = "terminal"
	}
}

// Terminal is one PTY-backed shell. It implements pane.Surface.
type Terminal struct {
	id   string
	name string

	ptmx *os.File
	cmd  *exec.Cmd

	mu       sync.RWMutex
	tail     []string
	partial  string
	maxTail  int
	view     pane.Handle
	done     chan struct{}
	exitCode atomic.Int32
	closed   atomic.Bool

	onOutput func([]byte)
	onFocus  func(*Terminal)
	onClose  func(*Terminal)
}

// newTerminal starts a shell on a fresh PTY.
func newTerminal(opts Options) (*Terminal, error) {
	opts.applyDefaults()

	if _, err := exec.LookPath(opts.Shell); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrShellNotFound, opts.Shell)
	}

	cmd := exec.Command(opts.Shell, opts.Args...)
	cmd.Dir = opts.WorkDir
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Env = append(cmd.Env, "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(opts.Cols),
		Rows: uint16(opts.Rows),
	})
	if err != nil {
		return nil, fmt.Errorf("start pty: %w", err)
	}

	t := &Terminal{
		id:       uuid.New().String(),
		name:     opts.Name,
		ptmx:     ptmx,
		cmd:      cmd,
		maxTail:  opts.TailLines,
		done:     make(chan struct{}),
		onOutput: opts.OnOutput,
		onFocus:  opts.OnFocus,
		onClose:  opts.OnClose,
	}
	t.exitCode.Store(-1)

	go t.readLoop()
	return t, nil
}

// ID returns the terminal's unique identifier.
func (t *Terminal) ID() string { return t.id }

// Name returns the terminal's display name.
func (t *Terminal) Name() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.name
}

// SetName updates the terminal's display name.
func (t *Terminal) SetName(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.name = name
}

// Write sends input to the shell.
func (t *Terminal) Write(data []byte) (int, error) {
	if t.closed.Load() {
		return 0, ErrTerminalClosed
	}
	return t.ptmx.Write(data)
}

// WriteString sends a string to the shell.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Resize updates the PTY window size.
func (t *Terminal) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}
	if t.closed.Load() {
		return ErrTerminalClosed
	}
	return pty.Setsize(t.ptmx, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Tail returns up to n of the most recent output lines.
func (t *Terminal) Tail(n int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lines := t.tail
	if t.partial != "" {
		lines = append(lines[:len(lines):len(lines)], t.partial)
	}
	if n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

// ExitCode returns the shell's exit code, or -1 while running.
func (t *Terminal) ExitCode() int {
	return int(t.exitCode.Load())
}

// Done is closed when the terminal's process has exited.
func (t *Terminal) Done() <-chan struct{} { return t.done }

// Close terminates the shell and releases the PTY. Safe to call twice.
func (t *Terminal) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	_ = t.ptmx.Close()
	if t.cmd.Process != nil {
		_ = t.cmd.Process.Kill()
	}
	<-t.done
	if t.onClose != nil {
		t.onClose(t)
	}
	return nil
}

// Destroy implements pane.Surface.
func (t *Terminal) Destroy() { _ = t.Close() }

// GrabFocus implements pane.Surface.
func (t *Terminal) GrabFocus() {
	if t.onFocus != nil {
		t.onFocus(t)
	}
}

// DisplayHandle implements pane.Surface.
func (t *Terminal) DisplayHandle() pane.Handle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.view
}

// SetDisplayHandle attaches the host toolkit view rendering this
// terminal. Set once by the application wiring right after creation.
func (t *Terminal) SetDisplayHandle(h pane.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view = h
}

// readLoop pumps PTY output into the tail buffer until the shell exits.
func (t *Terminal) readLoop() {
	defer close(t.done)

	buf := make([]byte, 4096)
	for {
		n, err := t.ptmx.Read(buf)
		if n > 0 {
			t.consume(buf[:n])
			if t.onOutput != nil {
				t.onOutput(buf[:n])
			}
		}
		if err != nil {
			break
		}
	}

	if err := t.cmd.Wait(); err == nil {
		t.exitCode.Store(0)
	} else if ee, ok := err.(*exec.ExitError); ok {
		t.exitCode.Store(int32(ee.ExitCode()))
	}
}

// consume folds raw output into the line tail buffer.
func (t *Terminal) consume(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	text := t.partial + strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	t.partial = lines[len(lines)-1]
	t.tail = append(t.tail, lines[:len(lines)-1]...)
	if len(t.tail) > t.maxTail {
		t.tail = append([]string(nil), t.tail[len(t.tail)-t.maxTail:]...)
	}
}
