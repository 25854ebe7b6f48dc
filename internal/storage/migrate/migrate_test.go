package migrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestSQLiteManager_UpIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer db.Close()

	mgr, err := NewSQLiteManager(db, DefaultConfig())
	if err != nil {
		t.Fatalf("NewSQLiteManager failed: %v", err)
	}

	if v, _, err := mgr.Version(); err != nil || v != 0 {
		t.Fatalf("expected version 0 before migrating, got %d err=%v", v, err)
	}

	ctx := context.Background()
	if err := mgr.Up(ctx); err != nil {
		t.Fatalf("Up failed: %v", err)
	}
	if err := mgr.Up(ctx); err != nil {
		t.Fatalf("second Up failed: %v", err)
	}

	v, dirty, err := mgr.Version()
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != 1 || dirty {
		t.Errorf("expected clean version 1, got %d dirty=%v", v, dirty)
	}

	if _, err := db.Exec(`INSERT INTO kv_entries (key, value) VALUES ('k', 'v')`); err != nil {
		t.Errorf("kv_entries not created: %v", err)
	}
}
