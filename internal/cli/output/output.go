// Package output prints command results as a table, JSON, YAML, or bare keys.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects how Writer prints results.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatQuiet Format = "quiet"
)

// ParseFormat maps a --output value to a Format. Unknown values fall back to
// table.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "quiet", "q":
		return FormatQuiet
	default:
		return FormatTable
	}
}

// Tabler is a result that knows its table form.
type Tabler interface {
	Table() *Table
}

// Keyed is a result that prints as a single key in quiet mode, e.g. a layout
// as "30,35,35".
type Keyed interface {
	Key() string
}

// Writer prints results in one format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter returns a Writer on stdout.
func NewWriter(format Format) *Writer {
	return &Writer{format: format, out: os.Stdout}
}

// WithOutput redirects results to out.
func (w *Writer) WithOutput(out io.Writer) *Writer {
	w.out = out
	return w
}

// Format reports the writer's format.
func (w *Writer) Format() Format { return w.format }

// Write prints v. Table output uses Tabler when v implements it and falls
// back to YAML otherwise; quiet output prints keys and strings only, and
// JSON for anything else.
func (w *Writer) Write(v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		return w.yaml(v)
	case FormatQuiet:
		return w.quiet(v)
	}

	switch v := v.(type) {
	case Tabler:
		return v.Table().render(w.out)
	case string:
		return w.Line(v)
	default:
		return w.yaml(v)
	}
}

func (w *Writer) yaml(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (w *Writer) quiet(v any) error {
	var keys []string
	switch v := v.(type) {
	case Keyed:
		keys = []string{v.Key()}
	case string:
		keys = []string{v}
	case []string:
		keys = v
	default:
		enc := json.NewEncoder(w.out)
		return enc.Encode(v)
	}
	for _, k := range keys {
		if err := w.Line(k); err != nil {
			return err
		}
	}
	return nil
}

// Line prints a plain line regardless of format.
func (w *Writer) Line(s string) error {
	_, err := fmt.Fprintln(w.out, s)
	return err
}

// Done prints a confirmation such as "✓ Cleared layouts saved under editor".
// Quiet output suppresses it.
func (w *Writer) Done(format string, a ...any) {
	if w.format == FormatQuiet {
		return
	}
	fmt.Fprintf(w.out, "✓ "+format+"\n", a...)
}

// Table is a header row plus cells, printed with aligned columns.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends a row; missing trailing cells print empty.
func (t *Table) AddRow(cells ...string) *Table {
	t.Rows = append(t.Rows, cells)
	return t
}

// Table lets a bare *Table be passed to Writer.Write.
func (t *Table) Table() *Table { return t }

func (t *Table) render(out io.Writer) error {
	if t == nil || len(t.Headers) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(t.Headers, "\t")))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
