package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		spec string
		want Chord
	}{
		{"ctrl+s", Chord{Key: tcell.KeyRune, Rune: 's', Mods: tcell.ModCtrl}},
		{"alt+left", Chord{Key: tcell.KeyLeft, Mods: tcell.ModAlt}},
		{"alt+shift+right", Chord{Key: tcell.KeyRight, Mods: tcell.ModAlt | tcell.ModShift}},
		{"ctrl+alt+d", Chord{Key: tcell.KeyRune, Rune: 'd', Mods: tcell.ModCtrl | tcell.ModAlt}},
		{"x", Chord{Key: tcell.KeyRune, Rune: 'x'}},
		{"space", Chord{Key: tcell.KeyRune, Rune: ' '}},
		{"alt+tab", Chord{Key: tcell.KeyTab, Mods: tcell.ModAlt}},
		{"esc", Chord{Key: tcell.KeyEscape}},
		{"Ctrl+S", Chord{Key: tcell.KeyRune, Rune: 's', Mods: tcell.ModCtrl}},
		{"f5", Chord{Key: tcell.KeyF5}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseChord(tt.spec)
			if err != nil {
				t.Fatalf("ParseChord(%q): %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseChord(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseChordRejects(t *testing.T) {
	for _, spec := range []string{"", "hyper+x", "ctrl+bogus", "ctrl+"} {
		if _, err := ParseChord(spec); !errors.Is(err, ErrBadChord) {
			t.Errorf("ParseChord(%q) err = %v, want ErrBadChord", spec, err)
		}
	}
}

func TestFromEventNormalizes(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Chord
	}{
		{
			"control byte folds to letter",
			tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl),
			Chord{Key: tcell.KeyRune, Rune: 's', Mods: tcell.ModCtrl},
		},
		{
			"uppercase rune becomes shift",
			tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone),
			Chord{Key: tcell.KeyRune, Rune: 's', Mods: tcell.ModShift},
		},
		{
			"tab is not ctrl+i",
			tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModAlt),
			Chord{Key: tcell.KeyTab, Mods: tcell.ModAlt},
		},
		{
			"arrow with modifiers",
			tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModAlt|tcell.ModShift),
			Chord{Key: tcell.KeyLeft, Mods: tcell.ModAlt | tcell.ModShift},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromEvent(tt.ev); got != tt.want {
				t.Errorf("FromEvent = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChordRoundTrip(t *testing.T) {
	for _, spec := range []string{"ctrl+s", "alt+left", "alt+shift+right", "space", "x"} {
		chord, err := ParseChord(spec)
		if err != nil {
			t.Fatalf("ParseChord(%q): %v", spec, err)
		}
		back, err := ParseChord(chord.String())
		if err != nil {
			t.Fatalf("ParseChord(%q): %v", chord.String(), err)
		}
		if back != chord {
			t.Errorf("round trip of %q: %+v != %+v", spec, back, chord)
		}
	}
}
