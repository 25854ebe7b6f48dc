package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Backend: BackendMemory}, false},
		{"file", Config{Backend: BackendFile, File: FileConfig{Path: "/tmp/x.json"}}, false},
		{"file without path", Config{Backend: BackendFile}, true},
		{"sqlite without path", Config{Backend: BackendSQLite}, true},
		{"postgres without dsn", Config{Backend: BackendPostgres}, true},
		{"unknown", Config{Backend: "redis"}, true},
		{"negative timeout", Config{Backend: BackendMemory, Timeout: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// exerciseStore runs the shared contract against any Store.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for k, v := range map[string]string{"ns:b": "2", "ns:a": "1", "other:c": "3"} {
		if err := s.Set(ctx, k, v); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	if got, err := s.Get(ctx, "ns:a"); err != nil || got != "1" {
		t.Errorf("Get(ns:a) = %q, %v", got, err)
	}

	keys, err := s.Keys(ctx, "ns:")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "ns:a" || keys[1] != "ns:b" {
		t.Errorf("Keys(ns:) = %v", keys)
	}

	if err := s.Delete(ctx, "ns:a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "ns:a"); err != nil {
		t.Fatalf("Delete of missing key failed: %v", err)
	}
	if _, err := s.Get(ctx, "ns:a"); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	exerciseStore(t, m)

	m.Close()
	if err := m.Set(context.Background(), "k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewMemory().Get(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layouts.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	exerciseStore(t, f)

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if got, err := reopened.Get(context.Background(), "ns:b"); err != nil || got != "2" {
		t.Errorf("expected value to survive reopen, got %q err=%v", got, err)
	}
	if _, err := reopened.Get(context.Background(), "ns:a"); !IsNotFound(err) {
		t.Errorf("deleted key came back: %v", err)
	}
}

func TestFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Error("expected error for corrupt file")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Config{Backend: BackendMemory})
	if err != nil {
		t.Fatalf("Open(memory) failed: %v", err)
	}
	if s.Backend() != BackendMemory {
		t.Errorf("unexpected backend %q", s.Backend())
	}

	s, err = Open(ctx, Config{Backend: BackendFile, File: FileConfig{Path: filepath.Join(t.TempDir(), "l.json")}})
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	if s.Backend() != BackendFile {
		t.Errorf("unexpected backend %q", s.Backend())
	}

	if _, err := Open(ctx, Config{Backend: "redis"}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpen_UnregisteredBackend(t *testing.T) {
	saved := OpenPostgres
	OpenPostgres = nil
	defer func() { OpenPostgres = saved }()

	_, err := Open(context.Background(), Config{Backend: BackendPostgres, Postgres: PostgresConfig{DSN: "postgres://x"}})
	if err == nil {
		t.Error("expected error when postgres factory is not registered")
	}
}

func TestRunMigrations_UnsupportedBackend(t *testing.T) {
	if err := RunMigrations(context.Background(), NewMemory()); err == nil {
		t.Error("expected error migrating a memory store")
	}
}
