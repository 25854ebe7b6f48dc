package group

import (
	"fmt"
	"slices"

	"splitpane/internal/layout"
)

// Rect is a handle's bounding box in the caller's coordinate space.
type Rect struct {
	X, Y, Width, Height float64
}

// DragState exists while a handle is being dragged.
type DragState struct {
	HandleID        string
	InitialPosition float64
	InitialLayout   layout.Layout
	Rect            Rect
}

// Delta converts a cursor position along the resize axis into the
// percentage delta from the drag start. groupSize is the container length in
// the same units.
func (d DragState) Delta(position, groupSize float64) float64 {
	if groupSize <= 0 {
		return 0
	}
	return (position - d.InitialPosition) / groupSize * 100
}

// RegisterHandle appends a resize handle. Handle i sits between panes i and
// i+1.
func (g *Group) RegisterHandle(id string) error {
	if slices.Contains(g.handles, id) {
		return fmt.Errorf("%w: %s", ErrDuplicateHandle, id)
	}
	g.handles = append(g.handles, id)
	return nil
}

// UnregisterHandle removes a handle, ending its drag if one is active.
func (g *Group) UnregisterHandle(id string) bool {
	idx := slices.Index(g.handles, id)
	if idx < 0 {
		return false
	}
	g.handles = slices.Delete(g.handles, idx, idx+1)
	if g.drag != nil && g.drag.HandleID == id {
		g.StopDrag()
	}
	return true
}

// Handles returns handle ids in order.
func (g *Group) Handles() []string {
	return slices.Clone(g.handles)
}

// Pivot returns the pane indices flanking a handle.
func (g *Group) Pivot(handleID string) (layout.PivotIndices, error) {
	idx := slices.Index(g.handles, handleID)
	if idx < 0 {
		return layout.PivotIndices{}, fmt.Errorf("%w: %s", ErrHandleNotFound, handleID)
	}
	pivot := layout.PivotIndices{Before: idx, After: idx + 1}
	if !pivot.Valid(len(g.panes)) {
		return pivot, fmt.Errorf("%w: %s", ErrInvalidPivot, handleID)
	}
	return pivot, nil
}

// StartDrag begins a pointer drag on handleID at position.
func (g *Group) StartDrag(handleID string, position float64, rect Rect) error {
	g.settle()
	if g.drag != nil {
		return fmt.Errorf("%w: %s", ErrDragInProgress, g.drag.HandleID)
	}
	if _, err := g.Pivot(handleID); err != nil {
		return err
	}

	g.drag = &DragState{
		HandleID:        handleID,
		InitialPosition: position,
		InitialLayout:   g.layout.Clone(),
		Rect:            rect,
	}
	g.hasDelta = false
	g.cursor = cursorFor(g.direction, 0)
	return nil
}

// UpdateDrag applies a gesture delta at handleID.
//
// For TriggerPointer, delta is the offset from the drag start and a drag must
// be active on handleID. For TriggerKeyboard, delta is one discrete step and
// is applied to the current layout, with or without an active drag.
func (g *Group) UpdateDrag(handleID string, delta float64, trigger layout.Trigger) error {
	g.settle()

	pivot, err := g.Pivot(handleID)
	if err != nil {
		return err
	}

	var initial layout.Layout
	switch trigger {
	case layout.TriggerPointer:
		if g.drag == nil {
			return ErrNoActiveDrag
		}
		if g.drag.HandleID != handleID {
			return fmt.Errorf("%w: %s", ErrDragInProgress, g.drag.HandleID)
		}
		initial = g.drag.InitialLayout
	case layout.TriggerKeyboard:
		initial = g.layout
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTrigger, trigger)
	}

	changed := g.adjust(layout.AdjustParams{
		Delta:         delta,
		InitialLayout: initial,
		PrevLayout:    g.layout,
		Pivot:         pivot,
		Trigger:       trigger,
	})

	if trigger == layout.TriggerPointer && (!g.hasDelta || g.lastDelta != delta) {
		g.lastDelta, g.hasDelta = delta, true
		if !changed && delta != 0 {
			g.cursor = cursorFor(g.direction, delta)
		} else {
			g.cursor = cursorFor(g.direction, 0)
		}
	}
	return nil
}

// StopDrag ends the active drag, if any. The layout keeps its last value.
func (g *Group) StopDrag() {
	g.drag = nil
	g.hasDelta = false
	g.cursor = CursorNone
}

// Drag returns the active drag state.
func (g *Group) Drag() (DragState, bool) {
	if g.drag == nil {
		return DragState{}, false
	}
	d := *g.drag
	d.InitialLayout = d.InitialLayout.Clone()
	return d, true
}

// Cursor returns the cursor the rendering layer should show.
func (g *Group) Cursor() Cursor {
	return g.cursor
}
