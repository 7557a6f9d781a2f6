package app

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyBytes(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []byte
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), []byte("a")},
		{"utf8 rune", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), []byte("é")},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []byte{'\r'}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []byte{0x1b}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), []byte{0x7f}},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), []byte("\x1b[A")},
		{"ctrl-a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), []byte{0x01}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), []byte{0x03}},
		{"ctrl-z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), []byte{0x1a}},
		{"function key unhandled", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyBytes(tt.ev); !bytes.Equal(got, tt.want) {
				t.Errorf("keyBytes = %q, want %q", got, tt.want)
			}
		})
	}
}
