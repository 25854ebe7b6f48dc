// Package persist stores pane group layouts in a storage.Store.
//
// One value is kept per group under "<namespace>:<autosave id>". It maps a
// pane-set signature to the layout and collapse memory saved for that set of
// panes, so conditional panes under one autosave id do not overwrite each
// other.
package persist

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"splitpane/internal/layout"
)

// PaneKey is the identity of one pane as far as persistence is concerned.
type PaneKey struct {
	ID string

	// IDFromUser is false for generated ids, which are not stable across runs.
	IDFromUser bool

	Order       *int
	Constraints layout.PaneConstraints
}

// token identifies the pane inside a signature: its id when that id is
// stable, otherwise its order and constraints.
func (k PaneKey) token() string {
	if k.IDFromUser {
		return k.ID
	}
	data, err := json.Marshal(k.Constraints)
	if err != nil {
		data = []byte(k.ID)
	}
	if k.Order != nil {
		return strconv.Itoa(*k.Order) + ":" + string(data)
	}
	return string(data)
}

// Signature returns the order-independent signature of a pane set.
func Signature(panes []PaneKey) string {
	tokens := make([]string, len(panes))
	for i, p := range panes {
		tokens[i] = p.token()
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ",")
}

// GroupKey returns the storage key for an autosave id.
func GroupKey(namespace, autoSaveID string) string {
	return namespace + ":" + autoSaveID
}
