package storage

import (
	"context"
	"database/sql"
	"fmt"

	"splitpane/internal/storage/migrate"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql
)

// RunMigrations applies pending schema migrations to a SQL-backed store.
func RunMigrations(ctx context.Context, store Store) error {
	switch store.Backend() {
	case BackendPostgres:
		return runPostgresMigrations(ctx, store)
	case BackendSQLite:
		return runSQLiteMigrations(ctx, store)
	default:
		return fmt.Errorf("unsupported backend: %s", store.Backend())
	}
}

func runPostgresMigrations(ctx context.Context, store Store) error {
	type postgresStore interface {
		ConnString() string
	}

	s, ok := store.(postgresStore)
	if !ok {
		return fmt.Errorf("PostgreSQL store does not expose ConnString() method")
	}

	// golang-migrate needs database/sql, so open a short-lived stdlib connection.
	db, err := sql.Open("pgx", s.ConnString())
	if err != nil {
		return fmt.Errorf("failed to open stdlib connection: %w", err)
	}
	defer db.Close()

	mgr, err := migrate.NewPostgresManager(db, migrate.DefaultConfig())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}
	defer mgr.Close()

	if err := mgr.Up(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}
	return nil
}

func runSQLiteMigrations(ctx context.Context, store Store) error {
	type sqliteStore interface {
		DB() *sql.DB
	}

	s, ok := store.(sqliteStore)
	if !ok {
		return fmt.Errorf("SQLite store does not expose DB() method")
	}

	// The manager shares the store's *sql.DB; closing it would close the store.
	mgr, err := migrate.NewSQLiteManager(s.DB(), migrate.DefaultConfig())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}

	if err := mgr.Up(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrationFailed, err)
	}
	return nil
}
