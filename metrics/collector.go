// Package metrics exports ring selection statistics to Prometheus.
//
// A Collector implements overlay.Observer:
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewCollector(metrics.Config{Namespace: "ringselect"}, reg)
//	sel := overlay.SelectRings(op, a, b, cut, overlay.WithObserver(c))
//
// Metrics:
//   - <ns>_<sub>_selections_total: selections by operation
//   - <ns>_<sub>_rings_total: rings by operation and outcome
//     (selected, reversed, excluded, rejected)
//   - <ns>_<sub>_selection_rings: histogram of rings described per selection
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/overlay"
)

// ErrNoTextfilePath is returned by WriteTextfile for an empty path.
var ErrNoTextfilePath = errors.New("metrics: textfile path is empty")

// Outcome label values.
const (
	OutcomeSelected = "selected"
	OutcomeReversed = "reversed"
	OutcomeExcluded = "excluded"
	OutcomeRejected = "rejected"
)

// Config names the metrics.
type Config struct {
	Namespace string
	Subsystem string

	// RingBuckets are the histogram buckets for rings per selection.
	RingBuckets []float64
}

// Collector records selection statistics. It is safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	selectionsTotal *prometheus.CounterVec
	ringsTotal      *prometheus.CounterVec
	selectionRings  *prometheus.HistogramVec
}

// NewCollector creates a collector and registers its metrics with registry.
// A nil registry gets a fresh one.
func NewCollector(cfg Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "overlay"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "selection"
	}
	if len(cfg.RingBuckets) == 0 {
		cfg.RingBuckets = prometheus.ExponentialBuckets(1, 4, 8)
	}

	c := &Collector{
		registry: registry,
		selectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "selections_total",
				Help:      "Total number of ring selections",
			},
			[]string{"operation"},
		),
		ringsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rings_total",
				Help:      "Rings seen by ring selection, by outcome",
			},
			[]string{"operation", "outcome"},
		),
		selectionRings: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "selection_rings",
				Help:      "Number of rings described per selection",
				Buckets:   cfg.RingBuckets,
			},
			[]string{"operation"},
		),
	}

	registry.MustRegister(c.selectionsTotal, c.ringsTotal, c.selectionRings)
	return c
}

// ObserveSelection implements overlay.Observer.
func (c *Collector) ObserveSelection(s overlay.SelectionStats) {
	op := s.Operation.String()

	c.selectionsTotal.WithLabelValues(op).Inc()
	c.selectionRings.WithLabelValues(op).Observe(float64(s.Total))

	c.ringsTotal.WithLabelValues(op, OutcomeSelected).Add(float64(s.Selected))
	c.ringsTotal.WithLabelValues(op, OutcomeReversed).Add(float64(s.Reversed))
	c.ringsTotal.WithLabelValues(op, OutcomeExcluded).Add(float64(s.Excluded))
	c.ringsTotal.WithLabelValues(op, OutcomeRejected).Add(float64(s.Rejected()))
}

// Registry returns the registry the metrics are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the collector's metrics in the Prometheus text
// format, for the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoTextfilePath
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write textfile %q: %w", path, err)
	}
	return nil
}
