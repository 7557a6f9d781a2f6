package app

import (
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogLevelWarn)

	log.Debug("quiet")
	log.Info("quiet")
	log.Warn("loud")
	log.Error("louder")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("output should not contain filtered messages: %q", out)
	}
	if !strings.Contains(out, "WARN loud") || !strings.Contains(out, "ERROR louder") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogLevelInfo).WithComponent("term").WithField("id", 7)

	log.Info("pane opened")

	out := buf.String()
	if !strings.Contains(out, "component=term") || !strings.Contains(out, "id=7") {
		t.Errorf("output missing fields: %q", out)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	log := NewLogger(nil, LogLevelDebug)
	log.Info("goes nowhere") // must not panic
}
