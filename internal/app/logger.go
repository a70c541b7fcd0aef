package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/tripmatch-backend/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the
// slog default, so the cron scheduler's adapter and library logs share it.
//
// Format "json" is for production; "text" adds source locations.
// Level is one of debug, info, warn, error (case-insensitive), default info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// Every record carries the app name and build version.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", "tripmatch"),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
