package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls how the process logger is built. Zero values produce JSON
// output at info level on stderr.
type Config struct {
	Service string
	Version string
	Env     string // "dev" enables source annotations and defaults to text output
	Level   string // "debug", "info", "warn", "error"
	Format  string // "json" or "text"; empty picks by Env
}

// New builds the process logger and installs it as the slog default, so code
// logging through the package-level slog functions lands in the same stream.
// Logs go to stderr; stdout stays free for command output.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: cfg.Env == "dev",
		Level:     parseLevel(cfg.Level),
	}

	format := strings.ToLower(cfg.Format)
	if format == "" && cfg.Env == "dev" {
		format = "text"
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With(
			"service", cfg.Service,
			"version", cfg.Version,
			"env", cfg.Env,
		)
	}

	slog.SetDefault(logger)
	return logger
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
