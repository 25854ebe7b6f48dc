package themes

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used to draw a split view.
type Theme struct {
	Name    string
	Palette ColorPalette

	Title  lipgloss.Style
	Pane   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style

	// Divider is an idle handle, DividerFocus the keyboard-selected one and
	// DividerBlocked a handle whose drag hit a constraint.
	Divider        lipgloss.Style
	DividerFocus   lipgloss.Style
	DividerBlocked lipgloss.Style

	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// WithPalette returns a copy of the theme rebuilt from p.
func (t *Theme) WithPalette(p ColorPalette) *Theme {
	clone := *t
	clone.Palette = p
	clone.rebuildStyles()
	return &clone
}

func (t *Theme) rebuildStyles() {
	p := t.Palette

	t.Title = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.Pane = lipgloss.NewStyle().Foreground(p.Text)
	t.Status = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.Error = lipgloss.NewStyle().Foreground(p.Error).Bold(true)

	t.Divider = lipgloss.NewStyle().Foreground(p.Border)
	t.DividerFocus = lipgloss.NewStyle().Foreground(p.BorderFocus).Bold(true)
	t.DividerBlocked = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)

	t.Help = lipgloss.NewStyle().Foreground(p.TextSubtle)
	t.HelpKey = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	t.HelpDesc = lipgloss.NewStyle().Foreground(p.TextMuted)
}

func buildTheme(name string, palette ColorPalette) *Theme {
	t := &Theme{Name: name, Palette: palette}
	t.rebuildStyles()
	return t
}

// DarkTheme returns the dark preset
func DarkTheme() *Theme { return buildTheme(string(PresetDark), DefaultDarkPalette()) }

// LightTheme returns the light preset
func LightTheme() *Theme { return buildTheme(string(PresetLight), DefaultLightPalette()) }

// NordTheme returns the Nord preset
func NordTheme() *Theme { return buildTheme(string(PresetNord), NordPalette()) }
