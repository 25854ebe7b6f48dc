// Package group coordinates a set of resizable panes: it owns the pane
// registry and the layout vector, drives the solver for drags, keyboard
// moves and imperative resizes, and reports changes to observers.
//
// A Group is not safe for concurrent use. Persistence writes run on a timer
// goroutine but only touch snapshots taken when they were scheduled.
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"splitpane/internal/layout"
	"splitpane/internal/logger"
	"splitpane/internal/metrics"
	"splitpane/internal/persist"
	"splitpane/internal/storage"
)

// DefaultDebounce is the idle window before a layout change is saved.
const DefaultDebounce = 100 * time.Millisecond

// Options configures a Group.
type Options struct {
	ID        string
	Direction Direction

	// AutoSaveID enables persistence when non-empty and Store is set.
	AutoSaveID string
	Store      storage.Store
	Namespace  string

	// Debounce is the save idle window. Zero means DefaultDebounce; a
	// negative value saves synchronously.
	Debounce       time.Duration
	StorageTimeout time.Duration

	Logger  *logger.Logger
	Metrics metrics.Recorder
}

// Group is the pane group coordinator.
type Group struct {
	id         string
	direction  Direction
	autoSaveID string

	log       *logger.Logger
	metrics   metrics.Recorder
	persister *persist.Persister
	debouncer *persist.Debouncer

	panes   []*paneEntry
	seq     uint64
	handles []string

	layout layout.Layout
	dirty  bool

	collapseMemory map[string]float64
	lastNotified   map[string]float64

	drag      *DragState
	lastDelta float64
	hasDelta  bool
	cursor    Cursor

	subscribers []subscriber
	nextSub     int
}

// New creates an empty group.
func New(opts Options) *Group {
	g := &Group{
		id:             opts.ID,
		direction:      opts.Direction,
		autoSaveID:     opts.AutoSaveID,
		log:            opts.Logger,
		metrics:        opts.Metrics,
		collapseMemory: make(map[string]float64),
		lastNotified:   make(map[string]float64),
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}
	if g.log == nil {
		g.log = logger.Discard()
	}
	if g.metrics == nil {
		g.metrics = metrics.Noop{}
	}
	g.log = g.log.Component("group").With("group", g.id)

	if opts.Store != nil && opts.AutoSaveID != "" {
		g.persister = persist.New(opts.Store, persist.Options{
			Namespace: opts.Namespace,
			Timeout:   opts.StorageTimeout,
			Logger:    opts.Logger,
			Metrics:   g.metrics,
		})
		wait := opts.Debounce
		if wait == 0 {
			wait = DefaultDebounce
		}
		g.debouncer = persist.NewDebouncer(wait)
	}
	return g
}

// ID returns the group id.
func (g *Group) ID() string { return g.id }

// Direction returns the layout axis.
func (g *Group) Direction() Direction { return g.direction }

// AutoSaveID returns the persistence id, empty when persistence is off.
func (g *Group) AutoSaveID() string { return g.autoSaveID }

// RegisterPane adds a pane and returns its id. The layout is recomputed on
// the next read. An active drag is cancelled because pane indices shift.
func (g *Group) RegisterPane(p Pane) (string, error) {
	entry := &paneEntry{Pane: p, idFromUser: p.ID != ""}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if g.indexOf(entry.ID) >= 0 {
		return "", fmt.Errorf("%w: %s", ErrDuplicatePane, entry.ID)
	}

	g.seq++
	entry.seq = g.seq
	g.panes = append(g.panes, entry)
	sortPanes(g.panes)
	g.dirty = true
	if g.drag != nil {
		g.StopDrag()
	}

	g.log.Debug("registered pane", "pane", entry.ID, "panes", len(g.panes))
	return entry.ID, nil
}

// UnregisterPane removes a pane and forgets its collapse memory. It reports
// whether the pane was registered. An active drag is cancelled because pane
// indices shift.
func (g *Group) UnregisterPane(id string) bool {
	idx := g.indexOf(id)
	if idx < 0 {
		return false
	}

	g.panes = append(g.panes[:idx], g.panes[idx+1:]...)
	delete(g.collapseMemory, id)
	delete(g.lastNotified, id)
	g.dirty = true
	if g.drag != nil {
		g.StopDrag()
	}

	g.log.Debug("unregistered pane", "pane", id, "panes", len(g.panes))
	return true
}

// PaneIDs returns pane ids in layout order.
func (g *Group) PaneIDs() []string {
	ids := make([]string, len(g.panes))
	for i, p := range g.panes {
		ids[i] = p.ID
	}
	return ids
}

// Panes returns the registered panes in layout order.
func (g *Group) Panes() []Pane {
	out := make([]Pane, len(g.panes))
	for i, p := range g.panes {
		out[i] = p.Pane
	}
	return out
}

// Constraints returns pane constraints in layout order.
func (g *Group) Constraints() []layout.PaneConstraints {
	out := make([]layout.PaneConstraints, len(g.panes))
	for i, p := range g.panes {
		out[i] = p.Constraints
	}
	return out
}

// UpdateCallbacks replaces the callbacks of a pane.
func (g *Group) UpdateCallbacks(id string, cb Callbacks) error {
	idx := g.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPaneNotFound, id)
	}
	g.panes[idx].Callbacks = cb
	return nil
}

// Layout returns a copy of the current layout.
func (g *Group) Layout() layout.Layout {
	g.settle()
	return g.layout.Clone()
}

// SetLayout replaces the layout without running the solver. The caller is
// responsible for l satisfying the constraints; only its length is checked.
func (g *Group) SetLayout(l layout.Layout) error {
	g.settle()
	if len(l) != len(g.panes) {
		return &layout.LayoutShapeError{Want: len(g.panes), Got: len(l), Layout: l.Clone()}
	}
	g.commit(l.Clone())
	return nil
}

// Size returns the current size of a pane.
func (g *Group) Size(id string) (float64, error) {
	g.settle()
	idx := g.indexOf(id)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrPaneNotFound, id)
	}
	return g.layout[idx], nil
}

// Close writes any pending layout save and stops further saves.
func (g *Group) Close() error {
	if g.debouncer != nil {
		g.debouncer.Flush()
		g.debouncer.Stop()
	}
	return nil
}

func (g *Group) indexOf(id string) int {
	for i, p := range g.panes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (g *Group) paneKeys() []persist.PaneKey {
	keys := make([]persist.PaneKey, len(g.panes))
	for i, p := range g.panes {
		keys[i] = p.key()
	}
	return keys
}

// settle recomputes the layout after the pane set changed: the saved layout
// for this pane set when there is one, otherwise the default layout, then
// validated against the constraints.
func (g *Group) settle() {
	if !g.dirty {
		return
	}
	g.dirty = false

	if len(g.panes) == 0 {
		g.layout = nil
		return
	}

	constraints := g.Constraints()

	if restored, ok := g.restore(constraints); ok {
		g.commit(restored)
		return
	}

	validated, err := layout.ValidateLayout(layout.ComputeDefaultLayout(constraints), constraints)
	if err != nil {
		// Lengths always match here, so this is an internal inconsistency.
		g.log.Error("layout does not match panes", logger.WithError(err))
		validated = layout.ComputeDefaultLayout(constraints)
	}
	g.commit(validated)
}

// restore returns the saved layout for the current pane set, validated
// against constraints. A saved layout that cannot be brought back to a total
// of 100 is discarded along with its collapse memory.
func (g *Group) restore(constraints []layout.PaneConstraints) (layout.Layout, bool) {
	if g.persister == nil {
		return nil, false
	}
	saved, ok := g.persister.Load(context.Background(), g.autoSaveID, g.paneKeys())
	if !ok {
		return nil, false
	}

	validated, err := layout.ValidateLayout(saved.Layout, constraints)
	if err != nil || !layout.Equal(validated.Sum(), 100) {
		g.log.Warn("ignoring saved layout",
			"layout", layout.Layout(saved.Layout).String(),
			"sum", layout.Layout(saved.Layout).Sum())
		return nil, false
	}

	for id, size := range saved.ExpandToSizes {
		if g.indexOf(id) >= 0 {
			g.collapseMemory[id] = size
		}
	}
	g.log.Debug("restored layout", "layout", validated.String())
	return validated, true
}

// commit installs next as the current layout and notifies when it differs.
func (g *Group) commit(next layout.Layout) bool {
	if next.Identical(g.layout) {
		return false
	}
	g.layout = next

	g.notifySubscribers()
	g.notifyPanes()
	g.scheduleSave()
	return true
}

func (g *Group) scheduleSave() {
	if g.persister == nil {
		return
	}
	if len(g.layout) == 0 || len(g.layout) != len(g.panes) {
		return
	}

	keys := g.paneKeys()
	state := persist.PaneSetState{
		Layout:        g.layout.Clone(),
		ExpandToSizes: make(map[string]float64, len(g.collapseMemory)),
	}
	for id, size := range g.collapseMemory {
		state.ExpandToSizes[id] = size
	}

	autoSaveID := g.autoSaveID
	p := g.persister
	g.debouncer.Schedule(autoSaveID, func() {
		_ = p.Save(context.Background(), autoSaveID, keys, state)
	})
}
