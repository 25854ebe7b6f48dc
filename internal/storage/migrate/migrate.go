// Package migrate applies the embedded schema migrations with golang-migrate.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql
var postgresFS embed.FS

//go:embed migrations/sqlite/*.sql
var sqliteFS embed.FS

// MigrationsTable is the bookkeeping table golang-migrate writes to.
const MigrationsTable = "splitpane_schema_migrations"

// Config holds migration configuration.
type Config struct {
	// LockTimeout is how long to wait for the migration lock.
	LockTimeout time.Duration
}

// DefaultConfig returns default migration configuration.
func DefaultConfig() Config {
	return Config{LockTimeout: 15 * time.Second}
}

// Manager handles database migrations for one backend.
type Manager struct {
	backend string
	m       *migrate.Migrate
}

// NewPostgresManager creates a migration manager for PostgreSQL.
func NewPostgresManager(db *sql.DB, cfg Config) (*Manager, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: MigrationsTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}
	return newManager("postgres", driver, postgresFS, "migrations/postgres", cfg)
}

// NewSQLiteManager creates a migration manager for SQLite.
func NewSQLiteManager(db *sql.DB, cfg Config) (*Manager, error) {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{
		MigrationsTable: MigrationsTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	return newManager("sqlite", driver, sqliteFS, "migrations/sqlite", cfg)
}

func newManager(backend string, driver database.Driver, fsys embed.FS, path string, cfg Config) (*Manager, error) {
	sourceDriver, err := iofs.New(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create source driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, backend, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	if cfg.LockTimeout > 0 {
		m.LockTimeout = cfg.LockTimeout
	}

	return &Manager{backend: backend, m: m}, nil
}

// Up runs all pending migrations.
func (m *Manager) Up(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s migration failed: %w", m.backend, err)
	}
	return nil
}

// Down rolls back one migration.
func (m *Manager) Down(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.m.Steps(-1); err != nil {
		return fmt.Errorf("%s rollback failed: %w", m.backend, err)
	}
	return nil
}

// Version returns the current migration version and whether it is dirty.
// A database with no applied migrations reports version 0.
func (m *Manager) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close closes the migration source and database driver.
func (m *Manager) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
