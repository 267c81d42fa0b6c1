package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load builds the application configuration.
//
// Sources are applied in order, later ones winning: defaults, the optional
// YAML file at configFile, environment variables read through getenv, then
// overrides (command-line flags). When no database URL is provided anywhere
// the local development connection is used. The result is validated.
func Load(configFile string, getenv func(string) string, overrides ...func(*Config)) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadConfigFromFile(configFile, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}

	for _, override := range overrides {
		override(cfg)
	}

	cfg.Database.URL = NormalizeDatabaseURL(cfg.Database.URL)
	if cfg.Database.URL == "" {
		cfg.Database.URL = LocalDatabaseURL
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// loadConfigFromFile reads a YAML configuration file from disk and merges it into cfg.
func loadConfigFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	return nil
}

// applyEnv overrides cfg with every environment variable that is set and non-empty.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	lookup := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}

	if v := lookup("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := lookup("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := lookup("DB_LOAD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid DB_LOAD_TIMEOUT %q: %w", v, err)
		}
		cfg.Database.LoadTimeout = d
	}
	if v := lookup("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := lookup("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := lookup("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := lookup("SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}
	return nil
}
