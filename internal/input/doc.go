// Package input translates terminal key events into pane commands.
//
// A key binding maps a chord specification like "ctrl+s" or
// "alt+shift+left" to a named action such as "pane.splitHorizontal".
// Compile turns the configuration's binding table into a Keymap of
// normalized chords; Handler resolves incoming tcell key events
// against the keymap and dispatches the bound action to the workspace.
//
// Unbound keys are reported as unhandled so the caller can forward
// them to the focused pane's shell.
package input
