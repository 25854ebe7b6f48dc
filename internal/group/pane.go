package group

import (
	"fmt"
	"sort"
	"strings"

	"splitpane/internal/layout"
	"splitpane/internal/persist"
)

// Direction is the axis panes are laid out along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection parses "horizontal" or "vertical". Empty means horizontal.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown direction %q", s)
	}
}

// ResizeEvent is passed to OnResize. HasPrev is false the first time a pane
// is notified.
type ResizeEvent struct {
	Size     float64
	PrevSize float64
	HasPrev  bool
}

// Callbacks are the optional per-pane notifications.
type Callbacks struct {
	OnResize   func(ResizeEvent)
	OnCollapse func()
	OnExpand   func()
}

// Pane describes a pane to register.
type Pane struct {
	// ID must be unique within the group. An empty ID is replaced by a
	// generated one.
	ID string

	// Order positions the pane. Panes without an order come first; ties keep
	// registration order.
	Order *int

	Constraints layout.PaneConstraints
	Callbacks   Callbacks
}

type paneEntry struct {
	Pane
	idFromUser bool
	seq        uint64
}

func (e *paneEntry) key() persist.PaneKey {
	return persist.PaneKey{
		ID:          e.ID,
		IDFromUser:  e.idFromUser,
		Order:       e.Order,
		Constraints: e.Constraints,
	}
}

// sortPanes orders entries by (has order, order, registration sequence).
func sortPanes(panes []*paneEntry) {
	sort.Slice(panes, func(i, j int) bool {
		a, b := panes[i], panes[j]
		switch {
		case a.Order == nil && b.Order != nil:
			return true
		case a.Order != nil && b.Order == nil:
			return false
		case a.Order != nil && *a.Order != *b.Order:
			return *a.Order < *b.Order
		default:
			return a.seq < b.seq
		}
	})
}
