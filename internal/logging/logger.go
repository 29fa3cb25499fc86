package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ethereum-optimism/predeploy-docs/internal/domain/config"
	"github.com/google/wire"
)

// LevelSuccess sits between info and warn and is rendered green
const LevelSuccess = slog.Level(2)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a logger writing colored lines to w. The level defaults to info,
// --debug lowers it, and PREDEPLOY_LOG_LEVEL overrides both.
func NewLogger(cfg *config.RuntimeConfig, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Debug {
		level = slog.LevelDebug
	}

	if val := strings.ToLower(os.Getenv("PREDEPLOY_LOG_LEVEL")); val != "" {
		switch val {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			// unknown value, keep default
		}
	}

	return slog.New(NewConsoleHandler(w, &ConsoleHandlerOptions{
		Level:         level,
		ShowComponent: level <= slog.LevelDebug,
	}))
}

// Success logs msg at LevelSuccess
func Success(ctx context.Context, log *slog.Logger, msg string, args ...any) {
	log.Log(ctx, LevelSuccess, msg, args...)
}

// Discard returns a logger that drops everything, for tests
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
