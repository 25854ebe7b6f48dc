package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// WrappedError annotates an error with a message and the file:line it was
// wrapped at.
type WrappedError struct {
	msg    string
	cause  error
	caller string
}

func (e *WrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *WrappedError) Unwrap() error { return e.cause }

// Caller returns the wrap site as dir/file.go:line.
func (e *WrappedError) Caller() string { return e.caller }

// WrapError wraps err with msg. It returns nil when err is nil.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}

	caller := "unknown"
	if _, file, line, ok := runtime.Caller(1); ok {
		caller = fmt.Sprintf("%s/%s:%d", filepath.Base(filepath.Dir(file)), filepath.Base(file), line)
	}

	return &WrappedError{msg: msg, cause: err, caller: caller}
}

// WithError renders err as an "error" group with its type, root cause and
// wrap site when known.
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	attrs := []any{
		slog.String("message", err.Error()),
		slog.String("type", fmt.Sprintf("%T", err)),
	}

	root := err
	for next := errors.Unwrap(root); next != nil; next = errors.Unwrap(root) {
		root = next
	}
	if root != err {
		attrs = append(attrs, slog.String("cause", root.Error()))
	}

	var we *WrappedError
	if errors.As(err, &we) {
		attrs = append(attrs, slog.String("caller", we.Caller()))
	}

	return slog.Group("error", attrs...)
}
