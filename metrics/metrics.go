// Package metrics exports A* search statistics to Prometheus.
//
// An *Observer plugs into a Finder through astar.WithObserver and records,
// per search:
//
//	<ns>_searches_total{result}      counter, result is an astar.Outcome
//	<ns>_search_expanded_cells       histogram of expanded cells
//	<ns>_search_duration_seconds     histogram of wall time
//	<ns>_path_length                 histogram of path length (found only)
//
// Observers are safe for concurrent use; one Observer may serve any number of
// Finders.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridpath/astar"
)

// Observer records astar.Stats into Prometheus collectors.
type Observer struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	duration prometheus.Histogram
	pathLen  prometheus.Histogram
}

// NewObserver creates the collectors under namespace and registers them with
// reg. A nil reg selects prometheus.DefaultRegisterer. If any collector fails
// to register, the ones already registered are removed again and the error is
// returned (typically a prometheus.AlreadyRegisteredError).
func NewObserver(reg prometheus.Registerer, namespace string) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	// Unregistered factory; registration happens below so conflicts surface
	// as errors instead of panics.
	factory := promauto.With(nil)
	o := &Observer{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of A* searches by result",
		}, []string{"result"}),
		expanded: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expanded_cells",
			Help:      "Cells expanded per A* search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of A* searches",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		pathLen: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Number of cells in found paths, start excluded",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		}),
	}

	registered := make([]prometheus.Collector, 0, 4)
	for _, c := range o.Collectors() {
		if err := reg.Register(c); err != nil {
			for _, done := range registered {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
		registered = append(registered, c)
	}

	return o, nil
}

// Collectors returns the collectors owned by o.
func (o *Observer) Collectors() []prometheus.Collector {
	return []prometheus.Collector{o.searches, o.expanded, o.duration, o.pathLen}
}

// ObserveSearch implements astar.Observer.
func (o *Observer) ObserveSearch(s astar.Stats) {
	o.searches.WithLabelValues(string(s.Outcome)).Inc()
	o.duration.Observe(s.Elapsed.Seconds())
	if s.Outcome == astar.OutcomeInvalid {
		return
	}
	o.expanded.Observe(float64(s.Expanded))
	if s.Outcome == astar.OutcomeFound {
		o.pathLen.Observe(float64(s.PathLen))
	}
}

var _ astar.Observer = (*Observer)(nil)
