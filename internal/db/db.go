package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"busyness.nyctaxi.org/internal/config"
)

// Supported database/sql driver names.
const (
	DriverPgx     = "pgx"
	DriverPQ      = "postgres"
	DriverSQLite3 = "sqlite3"
)

// Open opens a database handle for cfg and validates connectivity with a ping.
// The handle is meant for the single startup load and should be closed right after.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case DriverPgx, DriverPQ, DriverSQLite3:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	// One query runs at startup; a single connection is enough.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return db, nil
}

// Close closes db, ignoring a nil handle.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
