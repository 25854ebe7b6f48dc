package storage

import "errors"

// Storage errors
var (
	// ErrNotFound is returned when a key has no value.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("storage closed")

	// ErrMigrationFailed is returned when schema migrations fail.
	ErrMigrationFailed = errors.New("migration failed")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
