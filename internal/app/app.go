package app

import (
	"log/slog"

	"busyness.nyctaxi.org/internal/config"
	"busyness.nyctaxi.org/internal/summary"
)

// Application holds the dependencies of the HTTP handlers.
//
// Summary is loaded before the Application is built and never replaced, so
// handlers read it concurrently without synchronization.
type Application struct {
	Config  *config.Config
	Summary *summary.Table
	Logger  *slog.Logger
	Version string
}

// New wires an Application around an already loaded summary table.
func New(cfg *config.Config, table *summary.Table, logger *slog.Logger, version string) *Application {
	return &Application{
		Config:  cfg,
		Summary: table,
		Logger:  logger,
		Version: version,
	}
}
