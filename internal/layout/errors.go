package layout

import "fmt"

// LayoutShapeError is returned when a layout does not have one entry per pane.
// It signals a caller bug, not a recoverable condition.
type LayoutShapeError struct {
	Want   int
	Got    int
	Layout Layout
}

func (e *LayoutShapeError) Error() string {
	return fmt.Sprintf("invalid %d pane layout: got %d entries [%s]", e.Want, e.Got, e.Layout)
}
