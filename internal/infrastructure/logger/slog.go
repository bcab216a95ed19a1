package logger

import (
	"log/slog"
	"os"

	"github.com/pokerliga/settlement-service/internal/config"
)

// MustInitLogger builds the process-wide slog logger from config and installs
// it as the default.
func MustInitLogger(cfg *config.SettlementConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
