// Package themes provides the color presets used by the split view.
package themes

import (
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PresetName identifies a built-in theme
type PresetName string

const (
	PresetAuto  PresetName = "auto"
	PresetDark  PresetName = "dark"
	PresetLight PresetName = "light"
	PresetNord  PresetName = "nord"
)

// Registry holds the presets and the active theme.
type Registry struct {
	mu         sync.RWMutex
	presets    map[PresetName]*Theme
	active     *Theme
	activeName PresetName
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the process-wide registry
func Global() *Registry {
	once.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// NewRegistry creates a registry with the built-in presets, dark active.
func NewRegistry() *Registry {
	r := &Registry{
		presets: map[PresetName]*Theme{
			PresetDark:  DarkTheme(),
			PresetLight: LightTheme(),
			PresetNord:  NordTheme(),
		},
	}
	r.active = r.presets[PresetDark]
	r.activeName = PresetDark
	return r
}

// Active returns the active theme
func (r *Registry) Active() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// ActiveName returns the active preset name
func (r *Registry) ActiveName() PresetName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeName
}

// SetActive activates a preset. PresetAuto picks dark or light from the
// terminal background.
func (r *Registry) SetActive(name PresetName) error {
	if name == PresetAuto || name == "" {
		name = DetectColorScheme()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	theme, ok := r.presets[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	r.active = theme
	r.activeName = name
	return nil
}

// Get returns a preset by name, or nil.
func (r *Registry) Get(name PresetName) *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.presets[name]
}

// ListPresets returns the preset names sorted.
func (r *Registry) ListPresets() []PresetName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]PresetName, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DetectColorScheme reports the preset matching the terminal background
func DetectColorScheme() PresetName {
	if lipgloss.HasDarkBackground() {
		return PresetDark
	}
	return PresetLight
}
