package persist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"splitpane/internal/logger"
	"splitpane/internal/metrics"
	"splitpane/internal/storage"
)

// DefaultNamespace prefixes group keys when none is configured.
const DefaultNamespace = "splitpane"

// Options configures a Persister.
type Options struct {
	Namespace string

	// Timeout bounds each storage call. Zero means no limit.
	Timeout time.Duration

	Logger  *logger.Logger
	Metrics metrics.Recorder
}

// Persister loads and saves pane layouts. Storage failures are logged and
// reported as "no saved state" so they never block layout changes.
type Persister struct {
	store     storage.Store
	namespace string
	timeout   time.Duration
	log       *logger.Logger
	metrics   metrics.Recorder

	// mu serializes read-modify-write of group values.
	mu sync.Mutex
}

// New creates a Persister over store.
func New(store storage.Store, opts Options) *Persister {
	p := &Persister{
		store:     store,
		namespace: opts.Namespace,
		timeout:   opts.Timeout,
		log:       opts.Logger,
		metrics:   opts.Metrics,
	}
	if p.namespace == "" {
		p.namespace = DefaultNamespace
	}
	if p.log == nil {
		p.log = logger.Discard()
	}
	if p.metrics == nil {
		p.metrics = metrics.Noop{}
	}
	p.log = p.log.Component("persist")
	return p
}

// Namespace returns the key namespace.
func (p *Persister) Namespace() string { return p.namespace }

func (p *Persister) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

// Load returns the state saved for panes under autoSaveID. The second result
// is false when nothing usable is stored.
func (p *Persister) Load(ctx context.Context, autoSaveID string, panes []PaneKey) (PaneSetState, bool) {
	state, err := p.LoadGroup(ctx, autoSaveID)
	if err != nil {
		if storage.IsNotFound(err) {
			p.metrics.StateLoaded(metrics.LoadMiss)
			return PaneSetState{}, false
		}
		p.log.Warn("failed to load layout", "autosave_id", autoSaveID, logger.WithError(err))
		p.metrics.StateLoaded(metrics.LoadError)
		return PaneSetState{}, false
	}

	saved, ok := state[Signature(panes)]
	if !ok || len(saved.Layout) != len(panes) {
		p.metrics.StateLoaded(metrics.LoadMiss)
		return PaneSetState{}, false
	}

	p.metrics.StateLoaded(metrics.LoadHit)
	return saved.clone(), true
}

// LoadGroup returns every pane set saved under autoSaveID. It returns
// storage.ErrNotFound when the group has never been saved.
func (p *Persister) LoadGroup(ctx context.Context, autoSaveID string) (GroupState, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	raw, err := p.store.Get(ctx, GroupKey(p.namespace, autoSaveID))
	if err != nil {
		return nil, err
	}
	return decodeGroupState(raw)
}

// Save records state for panes under autoSaveID, keeping the other pane sets
// already stored for the group.
func (p *Persister) Save(ctx context.Context, autoSaveID string, panes []PaneKey, state PaneSetState) error {
	start := time.Now()
	err := p.save(ctx, autoSaveID, panes, state)
	p.metrics.StateSaved(time.Since(start), err)
	if err != nil {
		p.log.Warn("failed to save layout", "autosave_id", autoSaveID, logger.WithError(err))
		return err
	}
	p.log.Debug("saved layout", "autosave_id", autoSaveID, "panes", len(panes))
	return nil
}

func (p *Persister) save(ctx context.Context, autoSaveID string, panes []PaneKey, state PaneSetState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	key := GroupKey(p.namespace, autoSaveID)

	group := GroupState{}
	raw, err := p.store.Get(ctx, key)
	switch {
	case err == nil:
		if existing, decodeErr := decodeGroupState(raw); decodeErr == nil {
			group = existing
		} else {
			p.log.Warn("discarding malformed layout state", "autosave_id", autoSaveID, logger.WithError(decodeErr))
		}
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("read %s: %w", key, err)
	}

	saved := state.clone()
	if saved.ExpandToSizes == nil {
		saved.ExpandToSizes = map[string]float64{}
	}
	group[Signature(panes)] = saved

	encoded, err := encodeGroupState(group)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := p.store.Set(ctx, key, encoded); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Clear removes everything saved under autoSaveID.
func (p *Persister) Clear(ctx context.Context, autoSaveID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	return p.store.Delete(ctx, GroupKey(p.namespace, autoSaveID))
}

// List returns the autosave ids stored in the namespace.
func (p *Persister) List(ctx context.Context) ([]string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	prefix := p.namespace + ":"
	keys, err := p.store.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	sort.Strings(ids)
	return ids, nil
}
