package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
)

// CharmHandler adapts charmbracelet/log to slog.Handler for the "pretty" format.
type CharmHandler struct {
	logger *charmlog.Logger
	opts   CharmHandlerOptions
	attrs  []slog.Attr
	groups []string
}

// CharmHandlerOptions configures the Charm handler.
type CharmHandlerOptions struct {
	Level      slog.Leveler
	NoColor    bool
	TimeFormat string
	ShowCaller bool
	Prefix     string
}

func charmStyles() *charmlog.Styles {
	styles := charmlog.DefaultStyles()

	styles.Levels[charmlog.DebugLevel] = lipgloss.NewStyle().SetString("DEBU").Bold(true).Foreground(lipgloss.Color("63"))
	styles.Levels[charmlog.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Bold(true).Foreground(lipgloss.Color("42"))
	styles.Levels[charmlog.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("214"))
	styles.Levels[charmlog.ErrorLevel] = lipgloss.NewStyle().SetString("ERRO").Bold(true).Foreground(lipgloss.Color("196"))

	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styles.Timestamp = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	styles.Prefix = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	return styles
}

// NewCharmHandler creates a Charm-backed slog handler writing to w.
func NewCharmHandler(w io.Writer, opts *CharmHandlerOptions) *CharmHandler {
	o := CharmHandlerOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Level == nil {
		o.Level = slog.LevelInfo
	}
	if o.TimeFormat == "" {
		o.TimeFormat = time.TimeOnly
	}

	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportCaller:    o.ShowCaller,
		ReportTimestamp: true,
		TimeFormat:      o.TimeFormat,
		Prefix:          o.Prefix,
		Level:           charmLevel(o.Level.Level()),
	})
	if !o.NoColor {
		l.SetStyles(charmStyles())
	}

	return &CharmHandler{logger: l, opts: o}
}

// Enabled implements slog.Handler.
func (h *CharmHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle implements slog.Handler.
func (h *CharmHandler) Handle(_ context.Context, r slog.Record) error {
	kvs := make([]any, 0, (len(h.attrs)+r.NumAttrs())*2)
	for _, a := range h.attrs {
		kvs = h.appendAttr(kvs, a, h.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		kvs = h.appendAttr(kvs, a, h.groups)
		return true
	})

	switch {
	case r.Level >= slog.LevelError:
		h.logger.Error(r.Message, kvs...)
	case r.Level >= slog.LevelWarn:
		h.logger.Warn(r.Message, kvs...)
	case r.Level >= slog.LevelInfo:
		h.logger.Info(r.Message, kvs...)
	default:
		h.logger.Debug(r.Message, kvs...)
	}
	return nil
}

// appendAttr flattens groups into dotted keys.
func (h *CharmHandler) appendAttr(kvs []any, a slog.Attr, groups []string) []any {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return kvs
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		if a.Key != "" {
			sub = append(append([]string{}, groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			kvs = h.appendAttr(kvs, ga, sub)
		}
		return kvs
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return append(kvs, key, displayValue(a.Value))
}

// WithAttrs implements slog.Handler.
func (h *CharmHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &c
}

// WithGroup implements slog.Handler.
func (h *CharmHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string{}, h.groups...), name)
	return &c
}

func displayValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return v.Any()
	default:
		return v.Any()
	}
}

func charmLevel(level slog.Level) charmlog.Level {
	switch {
	case level >= slog.LevelError:
		return charmlog.ErrorLevel
	case level >= slog.LevelWarn:
		return charmlog.WarnLevel
	case level >= slog.LevelInfo:
		return charmlog.InfoLevel
	default:
		return charmlog.DebugLevel
	}
}
