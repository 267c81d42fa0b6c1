package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Local development connection used when DATABASE_URL is not set.
const (
	LocalDatabaseHost = "localhost"
	LocalDatabasePort = 5432
	LocalDatabaseName = "postgres"
	LocalDatabaseUser = "postgres"
)

// LocalDatabaseURL is the fallback connection string built from the Local* constants
// with an empty password.
var LocalDatabaseURL = fmt.Sprintf("postgresql://%s@%s:%d/%s?sslmode=disable",
	LocalDatabaseUser, LocalDatabaseHost, LocalDatabasePort, LocalDatabaseName)

// Config holds all the configuration settings for our application.
// It is built once at startup and not modified afterwards.
type Config struct {
	Port      int            `yaml:"port" validate:"gt=0,lte=65535"`
	Env       string         `yaml:"env" validate:"oneof=development staging production"`
	LogLevel  string         `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	SentryDSN string         `yaml:"sentry_dsn" validate:"omitempty,url"`
	Database  DatabaseConfig `yaml:"database"`
}

// DatabaseConfig selects the relational store the summary is loaded from.
type DatabaseConfig struct {
	URL         string        `yaml:"url" validate:"required"`
	Driver      string        `yaml:"driver" validate:"oneof=pgx postgres sqlite3"`
	LoadTimeout time.Duration `yaml:"load_timeout" validate:"gte=0s"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Port:     5000,
		Env:      "development",
		LogLevel: "info",
		Database: DatabaseConfig{
			Driver: "pgx",
		},
	}
}

// SlogLevel returns the parsed LogLevel. Validation guarantees it is known.
func (cfg *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsDevelopment reports whether the app runs in the development environment.
func (cfg *Config) IsDevelopment() bool {
	return cfg.Env == "development"
}

// ParseLogLevel maps a LOG_LEVEL value to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme some hosting
// providers hand out to postgresql://. Other values are returned unchanged.
func NormalizeDatabaseURL(url string) string {
	url = strings.TrimSpace(url)
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}
