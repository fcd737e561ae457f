package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New failed with %q", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "kind", "invalid_color")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info messages should be filtered at warn level; logs:\n%s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "kind=invalid_color") {
		t.Fatalf("warn message should be logged with its attributes; logs:\n%s", out)
	}
}

func TestNew_json(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: "JSON", Output: &buf})
	if err != nil {
		t.Fatalf("New failed with %q", err)
	}

	logger.Debug("generated", "bytes", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output should be JSON: %v", err)
	}

	if entry["msg"] != "generated" || entry["bytes"] != float64(42) {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}

func TestNew_invalid(t *testing.T) {
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Fatalf("New should fail for an unknown format")
	}
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Fatalf("New should fail for an unknown level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}

	for give, want := range tests {
		got, err := ParseLevel(give)
		if err != nil {
			t.Fatalf("ParseLevel(%q) failed with %q", give, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) should return %v; got %v", give, want, got)
		}
	}
}
