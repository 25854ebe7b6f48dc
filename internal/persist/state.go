package persist

import (
	"encoding/json"
	"fmt"
	"maps"
)

// PaneSetState is what is remembered for one pane set.
type PaneSetState struct {
	Layout []float64 `json:"layout"`

	// ExpandToSizes maps pane id to the size it had before it was collapsed.
	ExpandToSizes map[string]float64 `json:"expandToSizes"`
}

// GroupState maps pane-set signatures to their saved state.
type GroupState map[string]PaneSetState

func (s PaneSetState) clone() PaneSetState {
	return PaneSetState{
		Layout:        append([]float64(nil), s.Layout...),
		ExpandToSizes: maps.Clone(s.ExpandToSizes),
	}
}

func decodeGroupState(raw string) (GroupState, error) {
	var state GroupState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("malformed group state: %w", err)
	}
	if state == nil {
		state = GroupState{}
	}
	return state, nil
}

func encodeGroupState(state GroupState) (string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
