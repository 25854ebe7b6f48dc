package layout

import "math"

// Trigger identifies where a resize request came from.
type Trigger int

const (
	TriggerImperative Trigger = iota
	TriggerKeyboard
	TriggerPointer
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerImperative:
		return "imperative"
	case TriggerKeyboard:
		return "keyboard"
	case TriggerPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// PivotIndices are the two pane indices flanking a resize handle.
type PivotIndices struct {
	Before int
	After  int
}

// Valid reports whether the pivots are adjacent and inside a group of n panes.
func (p PivotIndices) Valid(n int) bool {
	return p.Before >= 0 && p.After == p.Before+1 && p.After < n
}

// AdjustParams is the input of AdjustLayoutByDelta.
type AdjustParams struct {
	// Delta is the requested change at the handle. Positive grows the pane
	// before the handle and shrinks the panes after it; negative does the
	// opposite.
	Delta float64

	// InitialLayout is the layout the delta is measured against, e.g. the
	// snapshot taken when a drag started.
	InitialLayout Layout

	// PrevLayout is the layout currently shown; it is returned when no
	// adjustment is possible. Defaults to InitialLayout.
	PrevLayout Layout

	Constraints []PaneConstraints
	Pivot       PivotIndices
	Trigger     Trigger
}

// AdjustLayoutByDelta moves the handle at Pivot by Delta and returns the
// resulting layout.
//
// The delta is pushed away from the handle on the shrinking side, pane by
// pane, and the amount actually taken is handed to the growing side. When
// nothing can move, or the result would not total 100, PrevLayout is returned
// as is.
func AdjustLayoutByDelta(p AdjustParams) Layout {
	initial := p.InitialLayout
	prev := p.PrevLayout
	if prev == nil {
		prev = initial
	}
	constraints := p.Constraints
	delta := p.Delta

	if Equal(delta, 0) {
		return initial
	}
	if len(initial) != len(constraints) || len(prev) != len(constraints) || !p.Pivot.Valid(len(constraints)) {
		return prev
	}

	first, second := p.Pivot.Before, p.Pivot.After
	next := initial.Clone()

	if p.Trigger == TriggerKeyboard {
		delta = keyboardSnap(delta, initial, constraints, first, second)
	}

	// Growth capacity on the growing side bounds how far the handle can move.
	{
		increment := -1
		index := first
		if delta < 0 {
			increment = 1
			index = second
		}

		maxAvailable := 0.0
		for index >= 0 && index < len(constraints) {
			maxSafe := ClampSize(constraints[index], 100)
			maxAvailable += maxSafe - initial[index]
			index += increment
		}

		abs := math.Min(math.Abs(delta), math.Abs(maxAvailable))
		if delta < 0 {
			delta = -abs
		} else {
			delta = abs
		}
	}

	applied := 0.0

	// Shrink panes on the far side of the handle, walking away from it.
	{
		index := second
		step := 1
		if delta < 0 {
			index = first
			step = -1
		}

		for index >= 0 && index < len(constraints) {
			remaining := math.Abs(delta) - math.Abs(applied)
			size := initial[index]
			safe := ClampSize(constraints[index], size-remaining)

			if !Equal(size, safe) {
				applied += size - safe
				next[index] = safe

				if Compare(applied, math.Abs(delta)) >= 0 {
					break
				}
			}
			index += step
		}
	}

	if Equal(applied, 0) {
		return prev
	}

	// Give what was taken to the growing pivot, spilling outward if it maxes out.
	{
		pivot := first
		step := -1
		if delta < 0 {
			pivot = second
			step = 1
		}

		unsafe := initial[pivot] + applied
		safe := ClampSize(constraints[pivot], unsafe)
		next[pivot] = safe

		if !Equal(safe, unsafe) {
			remaining := unsafe - safe
			for index := pivot; index >= 0 && index < len(constraints); index += step {
				size := next[index]
				grown := ClampSize(constraints[index], size+remaining)
				if !Equal(size, grown) {
					remaining -= grown - size
					next[index] = grown
				}
				if Equal(remaining, 0) {
					break
				}
			}
		}
	}

	if !Equal(next.Sum(), 100) {
		return prev
	}
	return next
}

// keyboardSnap replaces the requested delta with the distance needed to snap a
// collapsible pane open from its collapsed size, or closed from its minimum.
//
// The snap distance wins whether it is smaller or larger than the request: a
// large step stops exactly at MinSize when opening, and a step smaller than
// MinSize-CollapsedSize still collapses the pane fully. Keyboard moves never
// leave a collapsible pane between its collapsed and minimum sizes.
func keyboardSnap(delta float64, initial Layout, constraints []PaneConstraints, first, second int) float64 {
	// Expand: the growing pane sits collapsed.
	{
		index := first
		if delta < 0 {
			index = second
		}
		c := constraints[index].Normalized()
		if c.Collapsible && Equal(initial[index], c.CollapsedSize) {
			snap := c.MinSize - initial[index]
			if Compare(snap, 0) > 0 {
				delta = math.Copysign(snap, delta)
			}
		}
	}

	// Collapse: the shrinking pane sits at its minimum.
	{
		index := second
		if delta < 0 {
			index = first
		}
		c := constraints[index].Normalized()
		if c.Collapsible && Equal(initial[index], c.MinSize) {
			snap := initial[index] - c.CollapsedSize
			if Compare(snap, 0) > 0 {
				delta = math.Copysign(snap, delta)
			}
		}
	}

	return delta
}
