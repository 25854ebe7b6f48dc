package storage

import (
	"fmt"
	"time"
)

// BackendType identifies a storage backend.
type BackendType string

const (
	// BackendMemory keeps entries in process memory.
	BackendMemory BackendType = "memory"

	// BackendFile keeps entries in a single JSON file.
	BackendFile BackendType = "file"

	// BackendSQLite keeps entries in a SQLite database.
	BackendSQLite BackendType = "sqlite"

	// BackendPostgres keeps entries in PostgreSQL.
	BackendPostgres BackendType = "postgres"
)

// Config holds the storage configuration.
type Config struct {
	// Backend is one of memory, file, sqlite or postgres.
	Backend BackendType `mapstructure:"backend"`

	File     FileConfig     `mapstructure:"file"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	Postgres PostgresConfig `mapstructure:"postgres"`

	// Timeout bounds each storage call made on behalf of a pane group.
	Timeout time.Duration `mapstructure:"timeout"`
}

// FileConfig holds configuration for the JSON file backend.
type FileConfig struct {
	Path string `mapstructure:"path"`
}

// SQLiteConfig holds SQLite-specific configuration.
type SQLiteConfig struct {
	// Path is the path to the SQLite database file.
	Path string `mapstructure:"path"`

	// MaxOpenConns is the maximum number of open connections.
	MaxOpenConns int `mapstructure:"max_open_conns"`
}

// PostgresConfig holds PostgreSQL-specific configuration.
type PostgresConfig struct {
	// DSN is a libpq style connection string or URL.
	DSN string `mapstructure:"dsn"`

	// MaxConns is the maximum size of the connection pool.
	MaxConns int `mapstructure:"max_conns"`
}

// Validate checks the configuration for the selected backend.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendFile:
		if c.File.Path == "" {
			return fmt.Errorf("storage.file.path is required for the file backend")
		}
	case BackendSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required for the sqlite backend")
		}
		if c.SQLite.MaxOpenConns < 0 {
			return fmt.Errorf("storage.sqlite.max_open_conns must not be negative")
		}
	case BackendPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("storage.postgres.dsn is required for the postgres backend")
		}
		if c.Postgres.MaxConns < 0 {
			return fmt.Errorf("storage.postgres.max_conns must not be negative")
		}
	default:
		return fmt.Errorf("unknown storage backend: %q", c.Backend)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("storage.timeout must not be negative")
	}
	return nil
}
