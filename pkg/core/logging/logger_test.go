package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Name: "test", Level: level, Format: format, Output: &buf})
	l.now = fixedClock
	return l, &buf
}

func TestLogger_TextOutput(t *testing.T) {
	l, buf := newTestLogger(LevelDebug, FormatText)

	l.Info("zone resolved", "token", "Tokyo", "zone", "Asia/Tokyo")

	want := "12:00:00 [INFO] {test} zone resolved [token=Tokyo zone=Asia/Tokyo]\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	l, buf := newTestLogger(LevelDebug, FormatJSON)

	l.Warn("config unreadable", "path", "/tmp/x")

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if got["level"] != "warn" {
		t.Errorf("level = %v, want warn", got["level"])
	}
	if got["message"] != "config unreadable" {
		t.Errorf("message = %v, want %q", got["message"], "config unreadable")
	}
	if got["path"] != "/tmp/x" {
		t.Errorf("path = %v, want /tmp/x", got["path"])
	}
	if got["logger"] != "test" {
		t.Errorf("logger = %v, want test", got["logger"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn, FormatText)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown")

	if n := strings.Count(buf.String(), "\n"); n != 2 {
		t.Errorf("wrote %d lines, want 2: %q", n, buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("filtered entries were written: %q", buf.String())
	}
}

func TestLogger_WithAddsFields(t *testing.T) {
	l, buf := newTestLogger(LevelDebug, FormatText)

	child := l.With("mode", "grid").Named("resolver")
	child.Debug("start", "tokens", 2)
	l.Debug("parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "12:00:00 [DEBU] {resolver} start [mode=grid tokens=2]" {
		t.Errorf("child line = %q", lines[0])
	}
	if lines[1] != "12:00:00 [DEBU] {test} parent" {
		t.Errorf("parent line = %q", lines[1])
	}
}

func TestLogger_OddKeyValues(t *testing.T) {
	l, buf := newTestLogger(LevelDebug, FormatText)

	l.Info("msg", "key", "value", "dangling", 42, "x")

	if !strings.Contains(buf.String(), "key=value") {
		t.Errorf("missing key=value in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "dangling=42") {
		t.Errorf("missing dangling=42 in %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l.Enabled(LevelError) {
		t.Errorf("Nop logger is enabled at error level")
	}
	l.Error("ignored")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewFromOptions(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantLevel Level
		wantErr   bool
	}{
		{"defaults", Options{}, LevelWarn, false},
		{"verbose wins", Options{Verbose: true, Level: "error"}, LevelDebug, false},
		{"level from settings", Options{Level: "info"}, LevelInfo, false},
		{"bad level", Options{Level: "chatty"}, LevelWarn, true},
		{"bad format", Options{Format: "xml"}, LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := NewFromOptions("tzgrid", tt.opts, &buf)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFromOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if l.Level() != tt.wantLevel {
				t.Errorf("Level() = %v, want %v", l.Level(), tt.wantLevel)
			}
		})
	}
}
