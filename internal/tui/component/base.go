// Package component provides the bubbletea components used by the demo.
package component

import (
	"splitpane/internal/tui/themes"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer is implemented by components that render at a given width.
type Renderer interface {
	ViewWidth(width int) string
}

// FocusableComponent is a tea.Model that can take keyboard focus.
type FocusableComponent interface {
	tea.Model
	Renderer
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// BaseComponent carries the theme and size shared by components.
type BaseComponent struct {
	theme  *themes.Theme
	width  int
	height int
}

// NewBaseComponent creates a component using the active global theme.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		theme: themes.Global().Active(),
	}
}

// Theme returns the component's theme
func (b *BaseComponent) Theme() *themes.Theme {
	if b.theme == nil {
		b.theme = themes.Global().Active()
	}
	return b.theme
}

// SetTheme sets the component's theme
func (b *BaseComponent) SetTheme(theme *themes.Theme) {
	b.theme = theme
}

// SetSize sets the component dimensions
func (b *BaseComponent) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// GetWidth returns the component width
func (b *BaseComponent) GetWidth() int {
	return b.width
}

// GetHeight returns the component height
func (b *BaseComponent) GetHeight() int {
	return b.height
}

// FocusState tracks focus for focusable components
type FocusState struct {
	focused bool
}

// Focus sets the focus state to true
func (f *FocusState) Focus() {
	f.focused = true
}

// Blur sets the focus state to false
func (f *FocusState) Blur() {
	f.focused = false
}

// Focused returns whether the component has focus
func (f *FocusState) Focused() bool {
	return f.focused
}
