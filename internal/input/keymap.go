package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Keymap maps normalized chords to actions.
type Keymap map[Chord]Action

// Compile builds a keymap from a chord-to-action table, typically the
// configuration's [keys] section.
func Compile(bindings map[string]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	for spec, name := range bindings {
		chord, err := ParseChord(spec)
		if err != nil {
			return nil, err
		}
		if !Known(name) {
			return nil, fmt.Errorf("%w: %q bound to %q", ErrUnknownAction, spec, name)
		}
		km[chord] = Action(name)
	}
	return km, nil
}

// Resolve looks up the action bound to a key event.
func (km Keymap) Resolve(ev *tcell.EventKey) (Action, bool) {
	a, ok := km[FromEvent(ev)]
	return a, ok
}
