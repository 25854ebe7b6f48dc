// Package storage provides the string key/value stores that back layout
// persistence: an in-memory map, a JSON file, SQLite and PostgreSQL.
package storage

import "context"

// Store is a string key/value store.
type Store interface {
	// Get returns the value for key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys with the given prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Backend reports the backend type.
	Backend() BackendType

	// Close releases resources held by the store.
	Close() error
}
