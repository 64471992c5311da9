package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log %q: %v", buf.String(), err)
	}
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "WARNING", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"invalid defaults to info", "invalid", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
			if got := NewWithWriter(tt.level, &bytes.Buffer{}).Level(); got != tt.want {
				t.Errorf("NewWithWriter(%q).Level() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLogger_JSONKeys(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Warn("grade rejected")

	entry := decode(t, &buf)
	if entry["message"] != "grade rejected" {
		t.Errorf("message = %v, want %q", entry["message"], "grade rejected")
	}
	if entry["level"] != "warning" {
		t.Errorf("level = %v, want %q", entry["level"], "warning")
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("expected timestamp key")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.WithModule("session").
		WithSessionID("sess-1").
		WithError(errors.New("boom")).
		WithField("department", "cs").
		WithFields(map[string]any{"semester": 2}).
		Debug("semester selected")

	entry := decode(t, &buf)
	want := map[string]any{
		"module":     "session",
		"session_id": "sess-1",
		"error":      "boom",
		"department": "cs",
		"semester":   float64(2),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
}

func TestLogger_Formatted(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Infof("loaded %d departments", 5)

	entry := decode(t, &buf)
	if entry["message"] != "loaded 5 departments" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestLogger_BetterStackSinkAddsFanout(t *testing.T) {
	log := NewWithOptions("info", &bytes.Buffer{}, Options{BetterStackToken: "test-token"})

	ch, ok := log.Handler().(*ContextHandler)
	if !ok {
		t.Fatalf("expected *ContextHandler, got %T", log.Handler())
	}
	f, ok := ch.handler.(*fanout)
	if !ok {
		t.Fatalf("expected fanout behind context handler, got %T", ch.handler)
	}
	if len(f.handlers) != 2 {
		t.Errorf("expected 2 sinks, got %d", len(f.handlers))
	}
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be enabled")
	}
}
