package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"

	memoryPath = ":memory:"
)

// ParseURL maps a DATABASE_URL onto a driver name and data source.
//
//	sqlite:///./app.db       -> sqlite, ./app.db
//	sqlite:////var/app.db    -> sqlite, /var/app.db
//	sqlite://:memory:        -> sqlite, :memory:
//	postgres://u:p@host/db   -> pgx, postgres://u:p@host/db
func ParseURL(url string) (driver, source string, err error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		switch {
		case path == "", path == memoryPath, path == "/"+memoryPath:
			return DriverSQLite, memoryPath, nil
		case strings.HasPrefix(path, "/"):
			return DriverSQLite, path[1:], nil
		default:
			return DriverSQLite, path, nil
		}
	default:
		return "", "", fmt.Errorf("unsupported database url scheme: %q", url)
	}
}

// Open connects to the database named by url and verifies the connection.
// The caller owns the returned handle and must Close it.
func Open(ctx context.Context, url string) (*sqlx.DB, error) {
	driver, source, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	pool, err := sqlx.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	switch driver {
	case DriverSQLite:
		// SQLite serialises writers, and an in-memory database lives only as
		// long as its single connection.
		pool.SetMaxOpenConns(1)
		pool.SetMaxIdleConns(1)
		pool.SetConnMaxLifetime(0)
	default:
		pool.SetMaxOpenConns(10)
		pool.SetMaxIdleConns(10)
		pool.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		if _, err := pool.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	slog.Info("connected to database", "driver", driver)
	return pool, nil
}

// Migrate creates the users and plays tables if they do not exist.
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	statements := sqliteSchema
	if conn.DriverName() == DriverPostgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	slog.Info("database schema verified")
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS plays (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		frame_data TEXT,
		is_private BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		owner_id INTEGER NOT NULL REFERENCES users(id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_plays_owner_id ON plays(owner_id);`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS plays (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		frame_data JSONB,
		is_private BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		owner_id BIGINT NOT NULL REFERENCES users(id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_plays_owner_id ON plays(owner_id);`,
}
