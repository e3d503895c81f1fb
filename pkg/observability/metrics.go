package observability

import (
	"context"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by search lifecycle events.
type Metrics struct {
	Searches      *prometheus.CounterVec
	Expansions    prometheus.Counter
	PathMarks     prometheus.Counter
	PathLength    prometheus.Histogram
	SearchTime    prometheus.Histogram
	ExpandedCells prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathfinder_searches_total",
				Help: "Total number of completed searches by outcome",
			},
			[]string{"outcome"},
		),
		Expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathfinder_expansions_total",
			Help: "Total number of cells expanded across all searches",
		}),
		PathMarks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathfinder_path_marks_total",
			Help: "Total number of cells tagged as path",
		}),
		PathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_path_steps",
			Help:    "Step count of successful searches",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		SearchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_search_duration_seconds",
			Help:    "Wall time of searches, observer time included",
			Buckets: prometheus.DefBuckets,
		}),
		ExpandedCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathfinder_search_expanded_cells",
			Help:    "Cells closed per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Searches, m.Expansions, m.PathMarks, m.PathLength, m.SearchTime, m.ExpandedCells)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExpand: func(ctx context.Context, e *domain.StepEvent) {
			m.Expansions.Inc()
		},
		OnPathMark: func(ctx context.Context, e *domain.StepEvent) {
			m.PathMarks.Inc()
		},
		OnSearchEnd: func(ctx context.Context, e *domain.SearchEvent) {
			if e.Result == nil {
				return
			}
			m.Searches.WithLabelValues(string(e.Result.Outcome)).Inc()
			m.SearchTime.Observe(e.Result.Duration.Seconds())
			m.ExpandedCells.Observe(float64(e.Result.Expanded))
			if e.Result.Found() {
				m.PathLength.Observe(float64(e.Result.StepCount))
			}
		},
	}
}
