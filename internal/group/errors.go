package group

import "errors"

// Errors returned for caller mistakes. Gestures that simply cannot move a
// handle are not errors; they leave the layout unchanged.
var (
	ErrPaneNotFound    = errors.New("pane not found")
	ErrDuplicatePane   = errors.New("pane already registered")
	ErrHandleNotFound  = errors.New("resize handle not found")
	ErrDuplicateHandle = errors.New("resize handle already registered")
	ErrNoActiveDrag    = errors.New("no drag in progress")
	ErrDragInProgress  = errors.New("another drag is in progress")
	ErrInvalidTrigger  = errors.New("invalid trigger for a drag update")
	ErrInvalidPivot    = errors.New("resize handle has no pane on one side")
)
