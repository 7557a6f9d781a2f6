// Package config loads and watches panestorm configuration.
//
// Configuration lives in a single TOML file. A missing file is not an
// error: Load returns the built-in defaults. Key bindings from the
// file are merged over the default bindings, so a user file only needs
// to list the chords it changes.
//
// # Live Reload
//
// Watcher monitors the configuration file and invokes a callback with
// the freshly loaded configuration after each change, debounced so
// editors that write in several steps trigger a single reload.
package config
