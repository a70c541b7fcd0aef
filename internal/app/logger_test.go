package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/tripmatch-backend/internal/config"
)

func TestNewLogger_JSONCarriesAppAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "info", Format: "json"})
	logger.Info("cycle finished", slog.Int("linked", 3))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("JSON handler should produce valid JSON: %v", err)
	}
	if m["app"] != "tripmatch" {
		t.Errorf("app = %v, want tripmatch", m["app"])
	}
	if m["version"] != Version {
		t.Errorf("version = %v, want %s", m["version"], Version)
	}
	if m["linked"] != float64(3) {
		t.Errorf("linked = %v, want 3", m["linked"])
	}
	if _, ok := m["source"]; ok {
		t.Error("json format should not include source")
	}
}

func TestNewLogger_TextAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "debug", Format: "TEXT"})
	logger.Debug("source test")

	if !strings.Contains(buf.String(), "source=") {
		t.Error("text format should include source information")
	}
}

func TestNewLogger_UnknownFormatIsJSON(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "xml"}).Info("hello")

	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		wantSlog slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level_"+tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, config.LogConfig{Level: tt.level, Format: "text"})

			logger.Log(context.TODO(), tt.wantSlog, "should appear")
			if buf.Len() == 0 {
				t.Errorf("expected log output at level %v", tt.wantSlog)
			}

			buf.Reset()
			logger.Log(context.TODO(), tt.wantSlog-1, "should be suppressed")
			if buf.Len() != 0 {
				t.Errorf("level %v should suppress level %v, got: %s", tt.wantSlog, tt.wantSlog-1, buf.String())
			}
		})
	}
}
