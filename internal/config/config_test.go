package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Terminal.Scrollback != 1000 {
		t.Errorf("Scrollback = %d, want 1000", cfg.Terminal.Scrollback)
	}
	if cfg.Keys["ctrl+s"] != "pane.splitHorizontal" {
		t.Errorf("default binding missing: %q", cfg.Keys["ctrl+s"])
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pane.DividerStep != Default().Pane.DividerStep {
		t.Errorf("DividerStep = %d, want default", cfg.Pane.DividerStep)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[terminal]
shell = "/bin/zsh"

[keys]
"ctrl+s" = "pane.splitVertical"
"alt+x" = "pane.close"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Terminal.Shell != "/bin/zsh" {
		t.Errorf("Shell = %q, want /bin/zsh", cfg.Terminal.Shell)
	}
	if cfg.Terminal.Scrollback != 1000 {
		t.Errorf("Scrollback = %d, absent section should keep default", cfg.Terminal.Scrollback)
	}
	if cfg.Keys["ctrl+s"] != "pane.splitVertical" {
		t.Errorf("overridden chord = %q", cfg.Keys["ctrl+s"])
	}
	if cfg.Keys["alt+x"] != "pane.close" {
		t.Errorf("added chord = %q", cfg.Keys["alt+x"])
	}
	if cfg.Keys["ctrl+w"] != "pane.close" {
		t.Errorf("untouched default chord = %q", cfg.Keys["ctrl+w"])
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "[terminal\nshell = ???")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative scrollback", "[terminal]\nscrollback = -1"},
		{"zero divider step", "[pane]\ndivider_step = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("err = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}
