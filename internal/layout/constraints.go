// Package layout implements the percentage-based layout solver for split-pane groups.
//
// Every function in this package is pure: inputs are never mutated and results are
// freshly allocated. The coordinator in internal/group owns the stateful side.
package layout

import "math"

// PaneConstraints holds the size bounds of a single pane. All values are
// percentages of the container along the resize axis.
//
// A zero MaxSize is treated as 100. The intended contract is
// 0 <= CollapsedSize <= MinSize <= MaxSize <= 100; violated input is clamped,
// never rejected.
type PaneConstraints struct {
	MinSize       float64  `json:"minSize" yaml:"min_size"`
	MaxSize       float64  `json:"maxSize" yaml:"max_size"`
	CollapsedSize float64  `json:"collapsedSize" yaml:"collapsed_size"`
	Collapsible   bool     `json:"collapsible" yaml:"collapsible"`
	DefaultSize   *float64 `json:"defaultSize,omitempty" yaml:"default_size,omitempty"`
}

// Size returns a pointer to v, for filling DefaultSize.
func Size(v float64) *float64 {
	return &v
}

// Normalized returns a copy with defaults applied (MaxSize 100 when unset).
func (c PaneConstraints) Normalized() PaneConstraints {
	if c.MaxSize == 0 {
		c.MaxSize = 100
	}
	if c.DefaultSize != nil {
		c.DefaultSize = Size(*c.DefaultSize)
	}
	return c
}

// ClampSize moves size into the bounds allowed by c.
//
// A collapsible pane pushed below MinSize snaps to CollapsedSize when it is
// below the halfway point between CollapsedSize and MinSize, otherwise to
// MinSize. The result is rounded to absorb floating point noise.
func ClampSize(c PaneConstraints, size float64) float64 {
	c = c.Normalized()

	if Compare(size, c.MinSize) < 0 {
		if c.Collapsible {
			halfway := (c.CollapsedSize + c.MinSize) / 2
			if Compare(size, halfway) < 0 {
				size = c.CollapsedSize
			} else {
				size = c.MinSize
			}
		} else {
			size = c.MinSize
		}
	}

	size = math.Min(c.MaxSize, size)
	return round(size)
}

// IsCollapsed reports whether size sits at the collapsed size of a collapsible pane.
func IsCollapsed(c PaneConstraints, size float64) bool {
	return c.Collapsible && Equal(size, c.CollapsedSize)
}

// IsExpanded reports whether size is above the collapsed size, or the pane cannot collapse.
func IsExpanded(c PaneConstraints, size float64) bool {
	return !c.Collapsible || Compare(size, c.CollapsedSize) > 0
}
