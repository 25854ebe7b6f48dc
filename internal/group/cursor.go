package group

// Cursor is the pointer style the rendering layer should show for the group.
type Cursor int

const (
	CursorNone Cursor = iota
	CursorHorizontal
	CursorHorizontalMin
	CursorHorizontalMax
	CursorVertical
	CursorVerticalMin
	CursorVerticalMax
)

func (c Cursor) String() string {
	switch c {
	case CursorHorizontal:
		return "horizontal"
	case CursorHorizontalMin:
		return "horizontal-min"
	case CursorHorizontalMax:
		return "horizontal-max"
	case CursorVertical:
		return "vertical"
	case CursorVerticalMin:
		return "vertical-min"
	case CursorVerticalMax:
		return "vertical-max"
	default:
		return "none"
	}
}

// Blocked reports whether the cursor signals a handle pinned at a limit.
func (c Cursor) Blocked() bool {
	switch c {
	case CursorHorizontalMin, CursorHorizontalMax, CursorVerticalMin, CursorVerticalMax:
		return true
	}
	return false
}

// cursorFor returns the cursor for a drag in direction d. A non-zero blocked
// delta selects the min or max variant by its sign.
func cursorFor(d Direction, blockedDelta float64) Cursor {
	switch {
	case d == Vertical && blockedDelta < 0:
		return CursorVerticalMin
	case d == Vertical && blockedDelta > 0:
		return CursorVerticalMax
	case d == Vertical:
		return CursorVertical
	case blockedDelta < 0:
		return CursorHorizontalMin
	case blockedDelta > 0:
		return CursorHorizontalMax
	default:
		return CursorHorizontal
	}
}
