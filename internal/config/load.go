package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads the configuration file at path and merges it over the
// defaults. A missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Unmarshal over the defaults so absent sections keep their
	// default values. The key table is merged afterwards so a user
	// file only overrides the chords it names.
	cfg.Keys = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), parseError(path, err)
	}
	merged := DefaultKeys()
	for chord, action := range cfg.Keys {
		merged[chord] = action
	}
	cfg.Keys = merged

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// parseError wraps a toml decode failure, keeping position information
// when the decoder provides it.
func parseError(path string, err error) error {
	msg := err.Error()
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		row, col := derr.Position()
		msg = fmt.Sprintf("line %d column %d: %s", row, col, derr.Error())
	}
	return &ParseError{Path: path, Message: msg, Err: err}
}
