package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	flag "github.com/spf13/pflag"

	"busyness.nyctaxi.org/internal/app"
	"busyness.nyctaxi.org/internal/config"
	"busyness.nyctaxi.org/internal/db"
	"busyness.nyctaxi.org/internal/report"
	"busyness.nyctaxi.org/internal/summary"
	"busyness.nyctaxi.org/internal/views"
)

const appName = "busyness"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	var (
		port       = flag.Int("port", 0, "API server port (overrides PORT)")
		env        = flag.String("env", "", "Environment (development|staging|production)")
		configFile = flag.String("config-file", "", "Path to a YAML configuration file")
	)
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile, os.Getenv, func(c *config.Config) {
		if flag.CommandLine.Changed("port") {
			c.Port = *port
		}
		if flag.CommandLine.Changed("env") {
			c.Env = *env
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := report.SetupSentry(cfg.SentryDSN, cfg.Env, version); err != nil {
		logger.Error("Failed to set up Sentry", "error", err)
		os.Exit(1)
	}
	defer report.FlushSentry()
	report.ConfigureScope(cfg.Env, version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		report.ReportError(err, sentry.LevelFatal)
		report.FlushSentry()
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}

// run loads the summary, then serves HTTP until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Loading busyness summary", "driver", cfg.Database.Driver)

	table, err := loadSummary(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	if err := views.LoadTemplates(); err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	application := app.New(cfg, table, logger, version)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr, "env", cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// loadSummary opens the database, loads the summary once and closes the
// connection again. A zero LoadTimeout means no deadline.
func loadSummary(ctx context.Context, dbCfg config.DatabaseConfig, logger *slog.Logger) (*summary.Table, error) {
	if dbCfg.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dbCfg.LoadTimeout)
		defer cancel()
	}

	conn, err := db.Open(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	return summary.Load(ctx, conn, logger)
}
