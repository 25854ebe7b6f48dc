// Package metrics records pane group activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Load outcomes reported to StateLoaded.
const (
	LoadHit   = "hit"
	LoadMiss  = "miss"
	LoadError = "error"
)

// Recorder receives layout and persistence events.
type Recorder interface {
	// AdjustmentApplied counts a resize that changed the layout.
	AdjustmentApplied(trigger string)
	// AdjustmentRejected counts a resize the solver turned into a no-op.
	AdjustmentRejected(trigger string)
	// StateLoaded counts a persisted layout lookup.
	StateLoaded(outcome string)
	// StateSaved observes a persisted layout write.
	StateSaved(d time.Duration, err error)
}

// Noop discards everything.
type Noop struct{}

func (Noop) AdjustmentApplied(string) {}
func (Noop) AdjustmentRejected(string) {}
func (Noop) StateLoaded(string) {}
func (Noop) StateSaved(time.Duration, error) {}

// Prometheus is a Recorder backed by client_golang collectors.
type Prometheus struct {
	adjustments *prometheus.CounterVec
	loads       *prometheus.CounterVec
	saves       *prometheus.CounterVec
	saveLatency prometheus.Histogram
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitpane",
			Name:      "layout_adjustments_total",
			Help:      "Layout adjustments by trigger and result.",
		}, []string{"trigger", "result"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitpane",
			Name:      "state_loads_total",
			Help:      "Persisted layout lookups by outcome.",
		}, []string{"outcome"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitpane",
			Name:      "state_saves_total",
			Help:      "Persisted layout writes by result.",
		}, []string{"result"}),
		saveLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "splitpane",
			Name:      "state_save_duration_seconds",
			Help:      "Time spent writing a persisted layout.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{p.adjustments, p.loads, p.saves, p.saveLatency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) AdjustmentApplied(trigger string) {
	p.adjustments.WithLabelValues(trigger, "applied").Inc()
}

func (p *Prometheus) AdjustmentRejected(trigger string) {
	p.adjustments.WithLabelValues(trigger, "rejected").Inc()
}

func (p *Prometheus) StateLoaded(outcome string) {
	p.loads.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) StateSaved(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.saves.WithLabelValues(result).Inc()
	p.saveLatency.Observe(d.Seconds())
}
