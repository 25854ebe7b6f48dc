package storage

import (
	"context"
	"fmt"
)

// OpenSQLite is set by the sqlite package init to avoid import cycles.
var OpenSQLite func(ctx context.Context, cfg SQLiteConfig) (Store, error)

// OpenPostgres is set by the postgres package init to avoid import cycles.
var OpenPostgres func(ctx context.Context, cfg PostgresConfig) (Store, error)

// Open creates the Store selected by cfg and brings its schema up to date.
// The caller must import the sqlite and/or postgres packages to register
// those factories.
func Open(ctx context.Context, cfg Config) (Store, error) {
	storageLog := getLogger("open")

	storageLog.Debug("opening storage", "backend", cfg.Backend)

	if err := cfg.Validate(); err != nil {
		storageLog.Error("invalid storage config", "error", err)
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}

	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil

	case BackendFile:
		store, err := OpenFile(cfg.File.Path)
		if err != nil {
			storageLog.Error("failed to open file store", "error", err)
			return nil, err
		}
		storageLog.Info("file storage opened", "path", cfg.File.Path)
		return store, nil

	case BackendSQLite:
		if OpenSQLite == nil {
			return nil, fmt.Errorf("SQLite backend not available; import splitpane/internal/storage/sqlite")
		}
		store, err := OpenSQLite(ctx, cfg.SQLite)
		if err != nil {
			storageLog.Error("failed to create SQLite store", "error", err)
			return nil, fmt.Errorf("failed to create SQLite store: %w", err)
		}
		return migrated(ctx, store)

	case BackendPostgres:
		if OpenPostgres == nil {
			return nil, fmt.Errorf("PostgreSQL backend not available; import splitpane/internal/storage/postgres")
		}
		store, err := OpenPostgres(ctx, cfg.Postgres)
		if err != nil {
			storageLog.Error("failed to create PostgreSQL store", "error", err)
			return nil, fmt.Errorf("failed to create PostgreSQL store: %w", err)
		}
		return migrated(ctx, store)

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

func migrated(ctx context.Context, store Store) (Store, error) {
	storageLog := getLogger("open")

	storageLog.Debug("running migrations", "backend", store.Backend())
	if err := RunMigrations(ctx, store); err != nil {
		_ = store.Close()
		storageLog.Error("failed to run migrations", "backend", store.Backend(), "error", err)
		return nil, fmt.Errorf("failed to run %s migrations: %w", store.Backend(), err)
	}
	storageLog.Info("storage opened", "backend", store.Backend())
	return store, nil
}
