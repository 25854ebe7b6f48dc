package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type contextKey string

const (
	operationContextKey contextKey = "operation"
	loggerContextKey    contextKey = "logger"
)

// Operation describes one CLI invocation or TUI session.
type Operation struct {
	Name      string
	Args      []string
	Started   time.Time
	RequestID string
}

// NewOperation creates an Operation with a fresh request id.
func NewOperation(name string, args []string) *Operation {
	return &Operation{
		Name:      name,
		Args:      args,
		Started:   time.Now(),
		RequestID: uuid.NewString(),
	}
}

// NewCommandOperation creates an Operation for a cobra command.
func NewCommandOperation(cmd *cobra.Command, args []string) *Operation {
	return NewOperation(cmd.CommandPath(), args)
}

// LogAttrs returns the operation as slog arguments.
func (op *Operation) LogAttrs() []any {
	if op == nil {
		return nil
	}
	attrs := []any{
		slog.String("request_id", op.RequestID),
		slog.String("operation", op.Name),
	}
	if len(op.Args) > 0 {
		attrs = append(attrs, slog.Any("args", op.Args))
	}
	return attrs
}

// WithOperation stores op in ctx.
func WithOperation(ctx context.Context, op *Operation) context.Context {
	return context.WithValue(ctx, operationContextKey, op)
}

// OperationFrom retrieves the Operation stored in ctx, if any.
func OperationFrom(ctx context.Context) *Operation {
	op, _ := ctx.Value(operationContextKey).(*Operation)
	return op
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, l)
}

// FromContext returns the Logger stored in ctx, or Default.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerContextKey).(*Logger); ok {
		return l
	}
	return Default()
}
