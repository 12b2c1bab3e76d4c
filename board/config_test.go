package board

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOptions(t *testing.T) {
	defer func(s, l string) { sharedDebounce, legacyFallthrough = s, l }(sharedDebounce, legacyFallthrough)

	sharedDebounce, legacyFallthrough = "", ""
	if opts := Options(); opts.SharedDebounce || opts.LegacyFallthrough {
		t.Fatalf("default options = %+v", opts)
	}

	sharedDebounce, legacyFallthrough = "true", "true"
	if opts := Options(); !opts.SharedDebounce || !opts.LegacyFallthrough {
		t.Fatalf("options = %+v", opts)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	defer func(l string) { logLevel = l }(logLevel)
	logLevel = "warn"

	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept", slog.Int("pin", GreenLEDPin))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatal("info line logged at warn level")
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "pin=11") {
		t.Fatalf("unexpected output %q", out)
	}
}
