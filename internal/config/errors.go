package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue indicates a configuration value outside its
	// accepted range.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// ParseError describes a TOML syntax error with its location.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
