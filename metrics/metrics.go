// Package metrics exposes Prometheus collectors for circuit replays and
// queries. A Collector implements circuit.Observer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/junction/circuit"
)

const namespace = "junction"

// Label values.
const (
	ResultMerged = "merged"
	ResultNoop   = "noop"

	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector counts consumed edges and times queries.
type Collector struct {
	// EdgesConsumed counts replayed edges by result (merged or noop).
	EdgesConsumed *prometheus.CounterVec

	// QueryDuration observes query latency by query name and outcome.
	QueryDuration *prometheus.HistogramVec

	merged, noop prometheus.Counter
}

var _ circuit.Observer = (*Collector)(nil)

// New registers the collectors on reg. Passing a fresh prometheus.Registry
// keeps repeated construction (tests, several runs in one process) free of
// duplicate-registration panics.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	c := &Collector{
		EdgesConsumed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edges_consumed_total",
				Help:      "Edges replayed against a partition, by whether they merged two circuits",
			},
			[]string{"result"},
		),
		QueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "query_duration_seconds",
				Help:      "Wall time of circuit queries",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"query", "outcome"},
		),
	}
	c.merged = c.EdgesConsumed.WithLabelValues(ResultMerged)
	c.noop = c.EdgesConsumed.WithLabelValues(ResultNoop)

	return c
}

// ObserveEdge implements circuit.Observer.
func (c *Collector) ObserveEdge(merged bool) {
	if merged {
		c.merged.Inc()
		return
	}
	c.noop.Inc()
}

// ObserveQuery implements circuit.Observer.
func (c *Collector) ObserveQuery(query string, took time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.QueryDuration.WithLabelValues(query, outcome).Observe(took.Seconds())
}
