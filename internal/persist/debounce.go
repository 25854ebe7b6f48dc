package persist

import (
	"sync"
	"time"
)

// Debouncer coalesces calls per key: only the last function scheduled for a
// key runs, once the key has been idle for the wait duration.
type Debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	pending map[string]*pendingCall
	gen     uint64
	stopped bool
}

type pendingCall struct {
	timer *time.Timer
	fn    func()
	gen   uint64
}

// NewDebouncer creates a Debouncer. A wait of zero or less runs every
// scheduled function immediately.
func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait, pending: make(map[string]*pendingCall)}
}

// Schedule arranges for fn to run after the idle window, replacing any
// function still pending for key.
func (d *Debouncer) Schedule(key string, fn func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.wait <= 0 {
		d.mu.Unlock()
		fn()
		return
	}

	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}
	d.gen++
	call := &pendingCall{fn: fn, gen: d.gen}
	gen := d.gen
	call.timer = time.AfterFunc(d.wait, func() { d.fire(key, gen) })
	d.pending[key] = call
	d.mu.Unlock()
}

func (d *Debouncer) fire(key string, gen uint64) {
	d.mu.Lock()
	call, ok := d.pending[key]
	if !ok || call.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	call.fn()
}

// Pending reports how many keys have a call waiting.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Flush runs every pending call now, in the calling goroutine.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	calls := make([]*pendingCall, 0, len(d.pending))
	for key, call := range d.pending {
		call.timer.Stop()
		calls = append(calls, call)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	for _, call := range calls {
		call.fn()
	}
}

// Stop cancels pending calls without running them and rejects new ones.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, call := range d.pending {
		call.timer.Stop()
		delete(d.pending, key)
	}
	d.stopped = true
}
