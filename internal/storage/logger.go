package storage

import (
	"io"
	"log/slog"
)

// log is the package-level logger for storage operations.
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger sets the logger for all storage operations.
// This should be called before opening any store.
func SetLogger(l *slog.Logger) {
	if l != nil {
		log = l.With("component", "storage")
	}
}

// getLogger returns a logger with the given subcomponent.
func getLogger(subcomponent string) *slog.Logger {
	return log.With("subcomponent", subcomponent)
}
