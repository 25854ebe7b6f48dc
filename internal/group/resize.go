package group

import (
	"fmt"

	"splitpane/internal/layout"
)

// pivotForPane returns the handle a pane is resized through: the one after
// it, or the one before it for the last pane.
func (g *Group) pivotForPane(idx int) (layout.PivotIndices, bool) {
	if idx == len(g.panes)-1 {
		return layout.PivotIndices{Before: idx - 1, After: idx}, idx > 0
	}
	return layout.PivotIndices{Before: idx, After: idx + 1}, true
}

// deltaToSize is the handle delta that moves pane idx from size to target.
// The last pane sits after its handle, so its sign is inverted.
func (g *Group) deltaToSize(idx int, size, target float64) float64 {
	if idx == len(g.panes)-1 {
		return size - target
	}
	return target - size
}

// adjust runs the solver and commits the result. It reports whether the
// layout changed.
func (g *Group) adjust(p layout.AdjustParams) bool {
	p.Constraints = g.Constraints()
	if p.PrevLayout == nil {
		p.PrevLayout = g.layout
	}

	next := layout.AdjustLayoutByDelta(p)
	changed := g.commit(next)

	trigger := p.Trigger.String()
	switch {
	case changed:
		g.metrics.AdjustmentApplied(trigger)
		g.log.Debug("layout adjusted", "trigger", trigger, "delta", p.Delta, "layout", next.String())
	case !layout.Equal(p.Delta, 0):
		g.metrics.AdjustmentRejected(trigger)
		g.log.Debug("adjustment rejected", "trigger", trigger, "delta", p.Delta)
	}
	return changed
}

// resizeTo moves pane idx to target through the solver.
func (g *Group) resizeTo(idx int, target float64) {
	pivot, ok := g.pivotForPane(idx)
	if !ok {
		return
	}
	size := g.layout[idx]
	g.adjust(layout.AdjustParams{
		Delta:         g.deltaToSize(idx, size, target),
		InitialLayout: g.layout,
		Pivot:         pivot,
		Trigger:       layout.TriggerImperative,
	})
}

func (g *Group) lookup(id string) (int, error) {
	g.settle()
	idx := g.indexOf(id)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %s", ErrPaneNotFound, id)
	}
	return idx, nil
}

// ResizePane asks the solver to move a pane to size (a percentage). The
// result is constrained like any other adjustment and may differ from size.
func (g *Group) ResizePane(id string, size float64) error {
	idx, err := g.lookup(id)
	if err != nil {
		return err
	}
	g.resizeTo(idx, size)
	return nil
}

// CollapsePane shrinks a collapsible pane to its collapsed size, remembering
// its current size for ExpandPane. Other panes are left alone.
func (g *Group) CollapsePane(id string) error {
	idx, err := g.lookup(id)
	if err != nil {
		return err
	}

	c := g.panes[idx].Constraints.Normalized()
	size := g.layout[idx]
	if !c.Collapsible || layout.Equal(size, c.CollapsedSize) {
		return nil
	}

	g.collapseMemory[id] = size
	g.resizeTo(idx, c.CollapsedSize)
	return nil
}

// ExpandPane restores a collapsed pane to the size it had before collapsing,
// or to its minimum size when that is unknown or now too small.
func (g *Group) ExpandPane(id string) error {
	idx, err := g.lookup(id)
	if err != nil {
		return err
	}

	c := g.panes[idx].Constraints.Normalized()
	size := g.layout[idx]
	if !c.Collapsible || !layout.Equal(size, c.CollapsedSize) {
		return nil
	}

	target := c.MinSize
	if remembered, ok := g.collapseMemory[id]; ok && remembered >= c.MinSize {
		target = remembered
	}
	g.resizeTo(idx, target)
	return nil
}

// IsCollapsed reports whether a collapsible pane sits at its collapsed size.
func (g *Group) IsCollapsed(id string) (bool, error) {
	idx, err := g.lookup(id)
	if err != nil {
		return false, err
	}
	return layout.IsCollapsed(g.panes[idx].Constraints, g.layout[idx]), nil
}

// IsExpanded reports whether a pane is above its collapsed size. Panes that
// cannot collapse are always expanded.
func (g *Group) IsExpanded(id string) (bool, error) {
	idx, err := g.lookup(id)
	if err != nil {
		return false, err
	}
	return layout.IsExpanded(g.panes[idx].Constraints, g.layout[idx]), nil
}

// UpdateConstraints replaces a pane's constraints and moves the pane back
// into range. A collapsed pane stays collapsed, following a changed
// collapsed size.
func (g *Group) UpdateConstraints(id string, c layout.PaneConstraints) error {
	idx, err := g.lookup(id)
	if err != nil {
		return err
	}

	prev := g.panes[idx].Constraints.Normalized()
	g.panes[idx].Constraints = c
	next := c.Normalized()
	size := g.layout[idx]

	switch {
	case prev.Collapsible && next.Collapsible && layout.Equal(size, prev.CollapsedSize):
		if !layout.Equal(prev.CollapsedSize, next.CollapsedSize) {
			g.resizeTo(idx, next.CollapsedSize)
		}
	case size < next.MinSize:
		g.resizeTo(idx, next.MinSize)
	case size > next.MaxSize:
		g.resizeTo(idx, next.MaxSize)
	}
	return nil
}
