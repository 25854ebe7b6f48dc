package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"splitpane/internal/config"

	"github.com/spf13/cobra"
)

// ==================== Logger Tests ====================

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"text", "json", "pretty", ""} {
		t.Run(format, func(t *testing.T) {
			l, err := New(config.LogConfig{Level: "info", Format: format, Output: "stderr"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer l.Close()
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitpane.log")

	l, err := New(config.LogConfig{Level: "debug", Format: "json", Output: "", FilePath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Info("layout committed", "group", "editor", "layout", "30%, 70%")
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, data)
	}
	if entry["msg"] != "layout committed" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["group"] != "editor" {
		t.Errorf("unexpected group: %v", entry["group"])
	}
}

func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.Component("persist").Info("saved")

	if !strings.Contains(buf.String(), `"component":"persist"`) {
		t.Errorf("component attr missing: %s", buf.String())
	}
}

func TestLogger_WithDoesNotOwnCloser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.log")
	l, err := New(config.LogConfig{FilePath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l.Close()

	child := l.With("k", "v")
	if child.closer != nil {
		t.Error("child logger must not own the parent's files")
	}
	if err := child.Close(); err != nil {
		t.Errorf("child close returned error: %v", err)
	}
}

func TestLogger_CloseNil(t *testing.T) {
	var l *Logger
	if err := l.Close(); err != nil {
		t.Errorf("nil close returned error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"info", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// ==================== Context Tests ====================

func TestNewOperation(t *testing.T) {
	op := NewOperation("layout adjust", []string{"--delta", "10"})

	if op.RequestID == "" {
		t.Error("expected request id")
	}
	if other := NewOperation("x", nil); other.RequestID == op.RequestID {
		t.Error("request ids must be unique")
	}
	if op.Started.IsZero() {
		t.Error("expected start time")
	}
	if len(op.LogAttrs()) != 3 {
		t.Errorf("expected 3 attrs, got %d", len(op.LogAttrs()))
	}
}

func TestNewCommandOperation(t *testing.T) {
	root := &cobra.Command{Use: "splitpane"}
	child := &cobra.Command{Use: "demo"}
	root.AddCommand(child)

	op := NewCommandOperation(child, nil)
	if op.Name != "splitpane demo" {
		t.Errorf("unexpected name %q", op.Name)
	}
	if len(op.LogAttrs()) != 2 {
		t.Errorf("expected 2 attrs without args, got %d", len(op.LogAttrs()))
	}
}

func TestOperationContext(t *testing.T) {
	ctx := context.Background()
	if OperationFrom(ctx) != nil {
		t.Error("expected nil operation on empty context")
	}

	op := NewOperation("demo", nil)
	ctx = WithOperation(ctx, op)
	if OperationFrom(ctx) != op {
		t.Error("operation not round-tripped through context")
	}

	var nilOp *Operation
	if nilOp.LogAttrs() != nil {
		t.Error("nil operation should have no attrs")
	}
}

func TestLoggerContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected default logger")
	}

	l := Discard()
	ctx := WithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("logger not round-tripped through context")
	}
}

// ==================== Error Tests ====================

func TestWrapError(t *testing.T) {
	base := errors.New("disk full")
	err := WrapError(base, "save layout")

	if err.Error() != "save layout: disk full" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to base")
	}

	var we *WrappedError
	if !errors.As(err, &we) {
		t.Fatal("expected *WrappedError")
	}
	if !strings.HasPrefix(we.Caller(), "logger/logger_test.go:") {
		t.Errorf("unexpected caller %q", we.Caller())
	}

	if WrapError(nil, "x") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))

	root := errors.New("connection refused")
	l.Error("load failed", WithError(WrapError(root, "query")))

	var entry struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry.Error["cause"] != "connection refused" {
		t.Errorf("unexpected cause %q", entry.Error["cause"])
	}
	if entry.Error["caller"] == "" {
		t.Error("expected caller")
	}
	if entry.Error["type"] != "*logger.WrappedError" {
		t.Errorf("unexpected type %q", entry.Error["type"])
	}

	if !WithError(nil).Equal(slog.Attr{}) {
		t.Error("nil error should produce an empty attr")
	}
}

// ==================== Charm Handler Tests ====================

func TestCharmHandler_Enabled(t *testing.T) {
	h := NewCharmHandler(&bytes.Buffer{}, &CharmHandlerOptions{Level: slog.LevelWarn})
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestCharmHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewCharmHandler(&buf, &CharmHandlerOptions{Level: slog.LevelDebug, NoColor: true})
	l := slog.New(h).With("group", "editor").WithGroup("drag")

	l.Info("drag started", "handle", "h1", slog.Group("rect", "w", 80))

	out := buf.String()
	for _, want := range []string{"drag started", "group=editor", "drag.handle=h1", "drag.rect.w=80"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestCharmHandler_WithGroupEmpty(t *testing.T) {
	h := NewCharmHandler(&bytes.Buffer{}, nil)
	if h.WithGroup("") != h {
		t.Error("empty group should return the same handler")
	}
}
