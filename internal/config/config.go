package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the full panestorm configuration.
type Config struct {
	Terminal Terminal          `toml:"terminal"`
	Pane     Pane              `toml:"pane"`
	Keys     map[string]string `toml:"keys"`
}

// Terminal configures the shells panestorm spawns.
type Terminal struct {
	// Shell is the command run in each pane. Empty means $SHELL,
	// falling back to /bin/sh.
	Shell string `toml:"shell"`

	// WorkDir is the starting directory for new shells. Empty means
	// the process working directory.
	WorkDir string `toml:"workdir"`

	// Scrollback is the number of output lines retained per pane.
	Scrollback int `toml:"scrollback"`
}

// Pane configures split behavior.
type Pane struct {
	// DividerStep is how many cells a resize command moves a divider.
	DividerStep int `toml:"divider_step"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Terminal: Terminal{
			Scrollback: 1000,
		},
		Pane: Pane{
			DividerStep: 2,
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the built-in key bindings, chord to action name.
func DefaultKeys() map[string]string {
	return map[string]string{
		"ctrl+s":          "pane.splitHorizontal",
		"ctrl+d":          "pane.splitVertical",
		"alt+left":        "pane.focusLeft",
		"alt+right":       "pane.focusRight",
		"alt+up":          "pane.focusUp",
		"alt+down":        "pane.focusDown",
		"alt+n":           "pane.focusNext",
		"alt+p":           "pane.focusPrev",
		"ctrl+w":          "pane.close",
		"ctrl+o":          "pane.closeOthers",
		"alt+shift+left":  "pane.shrink",
		"alt+shift+right": "pane.grow",
		"alt+e":           "pane.equalize",
		"ctrl+t":          "tab.new",
		"alt+tab":         "tab.next",
		"ctrl+q":          "app.quit",
	}
}

// Validate reports configuration values no component can work with.
func (c *Config) Validate() error {
	if c.Terminal.Scrollback < 0 {
		return fmt.Errorf("%w: scrollback %d", ErrInvalidValue, c.Terminal.Scrollback)
	}
	if c.Pane.DividerStep <= 0 {
		return fmt.Errorf("%w: divider_step %d", ErrInvalidValue, c.Pane.DividerStep)
	}
	for chord, action := range c.Keys {
		if chord == "" || action == "" {
			return fmt.Errorf("%w: empty key binding", ErrInvalidValue)
		}
	}
	return nil
}

// DefaultPath returns the conventional location of the user
// configuration file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "panestorm", "config.toml")
}
