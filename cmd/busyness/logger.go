package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"busyness.nyctaxi.org/internal/config"
)

// newLogger returns a colored text logger in development and a JSON logger
// everywhere else.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		h := tint.NewHandler(os.Stdout, &tint.Options{
			Level:      cfg.SlogLevel(),
			AddSource:  true,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", appName)
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})
	return slog.New(h).With(
		"app", appName,
		"version", version,
		"env", cfg.Env,
	)
}
