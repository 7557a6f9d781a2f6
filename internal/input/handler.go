package input

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/panestorm/internal/pane"
)

// Commander is the pane command surface the handler dispatches to.
type Commander interface {
	SplitHorizontal() error
	SplitVertical() error
	Focus(dir pane.Direction) error
	FocusNext() error
	FocusPrev() error
	Close() error
	CloseOthers() error
	ResizeDivider(delta int) error
	Equalize() error
	NewTab() error
	NextTab() error
}

// Handler resolves key events against the keymap and runs the bound
// command. The keymap and divider step can be swapped at runtime when
// the configuration reloads.
type Handler struct {
	cmd Commander

	mu   sync.RWMutex
	km   Keymap
	step int
}

// NewHandler creates a handler dispatching to cmd.
func NewHandler(cmd Commander, km Keymap, dividerStep int) *Handler {
	if dividerStep <= 0 {
		dividerStep = 1
	}
	return &Handler{cmd: cmd, km: km, step: dividerStep}
}

// SetKeymap replaces the active keymap.
func (h *Handler) SetKeymap(km Keymap) {
	h.mu.Lock()
	h.km = km
	h.mu.Unlock()
}

// SetDividerStep replaces the resize step.
func (h *Handler) SetDividerStep(step int) {
	if step <= 0 {
		return
	}
	h.mu.Lock()
	h.step = step
	h.mu.Unlock()
}

// HandleKey dispatches the action bound to ev. It reports false when
// the key is unbound, letting the caller forward it to the focused
// shell. ErrQuit is returned when the quit action fires.
func (h *Handler) HandleKey(ev *tcell.EventKey) (bool, error) {
	h.mu.RLock()
	km := h.km
	h.mu.RUnlock()

	action, ok := km.Resolve(ev)
	if !ok {
		return false, nil
	}
	return true, h.Do(action)
}

// Do runs a single action by name.
func (h *Handler) Do(action Action) error {
	h.mu.RLock()
	step := h.step
	h.mu.RUnlock()

	switch action {
	case ActionSplitHorizontal:
		return h.cmd.SplitHorizontal()
	case ActionSplitVertical:
		return h.cmd.SplitVertical()
	case ActionFocusLeft:
		return h.cmd.Focus(pane.DirLeft)
	case ActionFocusRight:
		return h.cmd.Focus(pane.DirRight)
	case ActionFocusUp:
		return h.cmd.Focus(pane.DirUp)
	case ActionFocusDown:
		return h.cmd.Focus(pane.DirDown)
	case ActionFocusNext:
		return h.cmd.FocusNext()
	case ActionFocusPrev:
		return h.cmd.FocusPrev()
	case ActionClose:
		return h.cmd.Close()
	case ActionCloseOthers:
		return h.cmd.CloseOthers()
	case ActionGrow:
		return h.cmd.ResizeDivider(step)
	case ActionShrink:
		return h.cmd.ResizeDivider(-step)
	case ActionEqualize:
		return h.cmd.Equalize()
	case ActionNewTab:
		return h.cmd.NewTab()
	case ActionNextTab:
		return h.cmd.NextTab()
	case ActionQuit:
		return ErrQuit
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
