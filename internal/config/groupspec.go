package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"splitpane/internal/layout"
)

// PaneSpec describes one pane in a group spec file.
type PaneSpec struct {
	ID          string                 `yaml:"id"`
	Order       *int                   `yaml:"order,omitempty"`
	Constraints layout.PaneConstraints `yaml:"constraints"`
}

// GroupSpec is the YAML description of a pane group used by the CLI.
//
//	id: editor
//	direction: horizontal
//	autosave_id: editor-main
//	panes:
//	  - id: sidebar
//	    constraints: {min_size: 10, max_size: 40, collapsible: true}
//	  - id: main
//	    constraints: {min_size: 30}
type GroupSpec struct {
	ID         string     `yaml:"id"`
	Direction  string     `yaml:"direction"`
	AutoSaveID string     `yaml:"autosave_id,omitempty"`
	Panes      []PaneSpec `yaml:"panes"`
}

// LoadGroupSpec reads and validates a group spec file.
func LoadGroupSpec(path string) (*GroupSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read group spec: %w", err)
	}
	return ParseGroupSpec(data)
}

// ParseGroupSpec decodes a group spec from YAML.
func ParseGroupSpec(data []byte) (*GroupSpec, error) {
	var spec GroupSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse group spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec for structural errors.
func (s *GroupSpec) Validate() error {
	switch s.Direction {
	case "", "horizontal", "vertical":
	default:
		return fmt.Errorf("invalid direction %q (want horizontal or vertical)", s.Direction)
	}
	if len(s.Panes) == 0 {
		return fmt.Errorf("group spec %q has no panes", s.ID)
	}
	seen := make(map[string]bool, len(s.Panes))
	for i, p := range s.Panes {
		if p.ID != "" {
			if seen[p.ID] {
				return fmt.Errorf("duplicate pane id %q", p.ID)
			}
			seen[p.ID] = true
		}
		c := p.Constraints.Normalized()
		if c.MinSize < 0 || c.MaxSize > 100 || c.MinSize > c.MaxSize {
			return fmt.Errorf("pane %d: invalid size bounds min=%g max=%g", i, c.MinSize, c.MaxSize)
		}
		if c.CollapsedSize > c.MinSize {
			return fmt.Errorf("pane %d: collapsed size %g exceeds min size %g", i, c.CollapsedSize, c.MinSize)
		}
	}
	return nil
}

// Constraints returns the pane constraints in declaration order.
func (s *GroupSpec) Constraints() []layout.PaneConstraints {
	out := make([]layout.PaneConstraints, len(s.Panes))
	for i, p := range s.Panes {
		out[i] = p.Constraints
	}
	return out
}
