package layout

import (
	"strconv"
	"strings"
)

// Layout is the ordered percentage vector of a pane group, index-aligned with
// the sorted pane registry.
type Layout []float64

// Clone returns an independent copy of l.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Sum returns the total of all entries.
func (l Layout) Sum() float64 {
	total := 0.0
	for _, size := range l {
		total += size
	}
	return total
}

// Equal reports whether l and other have the same length and every entry is
// within Tolerance.
func (l Layout) Equal(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !Equal(l[i], other[i]) {
			return false
		}
	}
	return true
}

// Identical reports exact equality, entry by entry.
func (l Layout) Identical(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// String formats the layout as "30%, 35%, 35%".
func (l Layout) String() string {
	parts := make([]string, len(l))
	for i, size := range l {
		parts[i] = strconv.FormatFloat(size, 'f', -1, 64) + "%"
	}
	return strings.Join(parts, ", ")
}

// Parse reads a comma separated list of percentages, with or without a
// trailing percent sign.
func Parse(s string) (Layout, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Layout{}, nil
	}
	fields := strings.Split(s, ",")
	out := make(Layout, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSuffix(strings.TrimSpace(f), "%")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
