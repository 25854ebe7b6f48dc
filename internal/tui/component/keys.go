package component

import (
	"github.com/charmbracelet/bubbles/key"

	"splitpane/internal/group"
)

// KeyMap holds the split view key bindings.
type KeyMap struct {
	NextHandle key.Binding
	PrevHandle key.Binding
	Shrink     key.Binding
	Grow       key.Binding
	Min        key.Binding
	Max        key.Binding
	Toggle     key.Binding
}

// DefaultKeyMap returns bindings for a group laid out along dir. Shrink and
// Grow act on the pane before the focused handle.
func DefaultKeyMap(dir group.Direction) KeyMap {
	km := KeyMap{
		NextHandle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next handle")),
		PrevHandle: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev handle")),
		Min:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "shrink fully")),
		Max:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "grow fully")),
		Toggle:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "collapse/expand")),
	}
	if dir == group.Vertical {
		km.Shrink = key.NewBinding(key.WithKeys("ctrl+up", "ctrl+k"), key.WithHelp("ctrl+↑", "shrink"))
		km.Grow = key.NewBinding(key.WithKeys("ctrl+down", "ctrl+j"), key.WithHelp("ctrl+↓", "grow"))
	} else {
		km.Shrink = key.NewBinding(key.WithKeys("ctrl+left", "ctrl+h"), key.WithHelp("ctrl+←", "shrink"))
		km.Grow = key.NewBinding(key.WithKeys("ctrl+right", "ctrl+l"), key.WithHelp("ctrl+→", "grow"))
	}
	return km
}

// ShortHelp returns the bindings shown in the demo footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextHandle, k.Shrink, k.Grow, k.Min, k.Max, k.Toggle}
}
