package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Chord is a normalized key press usable as a map key. Character keys
// carry Key == tcell.KeyRune and a lowercase Rune; uppercase input is
// represented as the lowercase rune plus the shift modifier. Control
// characters are folded back to the letter plus ctrl, so "ctrl+s"
// matches the 0x13 byte terminals actually deliver.
type Chord struct {
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// specialKeys maps chord spec names to tcell keys.
var specialKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

// ParseChord parses a specification like "ctrl+s", "alt+left" or
// "alt+shift+right" into a normalized Chord.
func ParseChord(spec string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	if len(parts) == 0 || parts[0] == "" {
		return Chord{}, fmt.Errorf("%w: %q", ErrBadChord, spec)
	}

	var mods tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		switch strings.TrimSpace(p) {
		case "ctrl":
			mods |= tcell.ModCtrl
		case "alt":
			mods |= tcell.ModAlt
		case "shift":
			mods |= tcell.ModShift
		case "meta":
			mods |= tcell.ModMeta
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrBadChord, p, spec)
		}
	}

	name := strings.TrimSpace(parts[len(parts)-1])
	if key, ok := specialKeys[name]; ok {
		return Chord{Key: key, Mods: mods}, nil
	}
	if name == "space" {
		return Chord{Key: tcell.KeyRune, Rune: ' ', Mods: mods}, nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return Chord{}, fmt.Errorf("%w: unknown key %q in %q", ErrBadChord, name, spec)
	}
	return Chord{Key: tcell.KeyRune, Rune: runes[0], Mods: mods}, nil
}

// FromEvent normalizes a tcell key event into a Chord.
func FromEvent(ev *tcell.EventKey) Chord {
	key := ev.Key()
	mods := ev.Modifiers()

	switch key {
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			r = unicode.ToLower(r)
			mods |= tcell.ModShift
		}
		return Chord{Key: tcell.KeyRune, Rune: r, Mods: mods}
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyEscape:
		return Chord{Key: key, Mods: mods}
	case tcell.KeyBackspace:
		return Chord{Key: tcell.KeyBackspace2, Mods: mods}
	}

	// Control characters come in as dedicated keys; fold them back to
	// letter plus ctrl so they match their chord spec.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return Chord{
			Key:  tcell.KeyRune,
			Rune: rune('a' + key - tcell.KeyCtrlA),
			Mods: mods | tcell.ModCtrl,
		}
	}

	return Chord{Key: key, Mods: mods}
}

// String renders the chord in spec notation.
func (c Chord) String() string {
	var b strings.Builder
	if c.Mods&tcell.ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if c.Mods&tcell.ModAlt != 0 {
		b.WriteString("alt+")
	}
	if c.Mods&tcell.ModShift != 0 {
		b.WriteString("shift+")
	}
	if c.Mods&tcell.ModMeta != 0 {
		b.WriteString("meta+")
	}
	if c.Key == tcell.KeyRune {
		if c.Rune == ' ' {
			b.WriteString("space")
		} else {
			b.WriteRune(c.Rune)
		}
		return b.String()
	}
	for name, key := range specialKeys {
		if key == c.Key && name != "esc" {
			b.WriteString(name)
			return b.String()
		}
	}
	fmt.Fprintf(&b, "key(%d)", c.Key)
	return b.String()
}
