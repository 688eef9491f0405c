package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger for env and writes to stdout
func Setup(env string) {
	SetupWithWriter(env, os.Stdout)
}

// SetupWithWriter configures the global slog logger for env.
// prod/production log JSON at info level, local/dev text at debug level, anything else text at info level.
func SetupWithWriter(env string, w io.Writer) {
	slog.SetDefault(New(env, w))
	slog.Info("Logger 초기화", "env", env, "level", levelFor(env).String())
}

// New builds a logger for env without touching the global default
func New(env string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(env)}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func levelFor(env string) slog.Level {
	switch env {
	case "local", "dev", "development":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
