package themes

import "github.com/charmbracelet/lipgloss"

// ColorPalette is the set of colors a theme derives its styles from.
type ColorPalette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor

	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	Text       lipgloss.AdaptiveColor
	TextMuted  lipgloss.AdaptiveColor
	TextSubtle lipgloss.AdaptiveColor

	Surface lipgloss.AdaptiveColor

	Border      lipgloss.AdaptiveColor
	BorderFocus lipgloss.AdaptiveColor
}

// DefaultDarkPalette returns the default dark palette
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
		Warning:     lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"},
		Error:       lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"},
		Text:        lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		TextSubtle:  lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
		Surface:     lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1F2937"},
		Border:      lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
	}
}

// DefaultLightPalette returns the default light palette
func DefaultLightPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#7C3AED"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#2563EB"},
		Warning:     lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#D97706"},
		Error:       lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#DC2626"},
		Text:        lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#1F2937"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"},
		TextSubtle:  lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#9CA3AF"},
		Surface:     lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},
		Border:      lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#D1D5DB"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#7C3AED"},
	}
}

// NordPalette returns the Nord palette
func NordPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#88C0D0", Dark: "#88C0D0"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#81A1C1", Dark: "#81A1C1"},
		Warning:     lipgloss.AdaptiveColor{Light: "#EBCB8B", Dark: "#EBCB8B"},
		Error:       lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"},
		Text:        lipgloss.AdaptiveColor{Light: "#ECEFF4", Dark: "#ECEFF4"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#D8DEE9", Dark: "#D8DEE9"},
		TextSubtle:  lipgloss.AdaptiveColor{Light: "#4C566A", Dark: "#4C566A"},
		Surface:     lipgloss.AdaptiveColor{Light: "#434C5E", Dark: "#434C5E"},
		Border:      lipgloss.AdaptiveColor{Light: "#4C566A", Dark: "#4C566A"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#88C0D0", Dark: "#88C0D0"},
	}
}
