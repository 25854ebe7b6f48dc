package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"splitpane/internal/storage"
)

// openTestStore connects to the database named by SPLITPANE_TEST_POSTGRES_DSN.
func openTestStore(t *testing.T) storage.Store {
	t.Helper()

	dsn := os.Getenv("SPLITPANE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SPLITPANE_TEST_POSTGRES_DSN not set")
	}

	store, err := storage.Open(context.Background(), storage.Config{
		Backend:  storage.BackendPostgres,
		Postgres: storage.PostgresConfig{DSN: dsn},
	})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	prefix := "test-" + uuid.NewString() + ":"

	if _, err := store.Get(ctx, prefix+"a"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Set(ctx, prefix+"a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, prefix+"a", "2"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := store.Set(ctx, prefix+"b", "3"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got, err := store.Get(ctx, prefix+"a"); err != nil || got != "2" {
		t.Errorf("Get = %q, %v; want 2", got, err)
	}

	keys, err := store.Keys(ctx, prefix)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != prefix+"a" {
		t.Errorf("unexpected keys %v", keys)
	}

	for _, k := range keys {
		if err := store.Delete(ctx, k); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
	}
}

func TestOpen_InvalidDSN(t *testing.T) {
	_, err := New(context.Background(), storage.PostgresConfig{DSN: "postgres://%zz"})
	if err == nil {
		t.Error("expected error for malformed DSN")
	}
}
