package observability

import (
	"context"
	"errors"

	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chempath"

// Metrics holds the Prometheus collectors for searches and the result cache.
type Metrics struct {
	Searches         *prometheus.CounterVec
	Visited          prometheus.Histogram
	PathLength       prometheus.Histogram
	Duration         prometheus.Histogram
	RuleApplications *prometheus.CounterVec
	CacheRequests    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total path searches by outcome (found, not_found, limit, error).",
		}, []string{"outcome"}),
		Visited: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visited_compounds",
			Help:      "Distinct compounds discovered per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		PathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_length_reactions",
			Help:      "Number of reactions in found paths.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time spent per search.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		RuleApplications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_applications_total",
			Help:      "Successful rule applications during searches.",
		}, []string{"rule"}),
		CacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Path cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.Searches, m.Visited, m.PathLength, m.Duration, m.RuleApplications, m.CacheRequests)
	}
	return m
}

// Hooks returns search hooks that record into m.
func (m *Metrics) Hooks() domain.SearchHooks {
	return domain.SearchHooks{
		OnReaction: func(_ context.Context, e *domain.ReactionEvent) {
			m.RuleApplications.WithLabelValues(e.Rule).Inc()
		},
		OnSearchEnd: func(_ context.Context, e *domain.SearchEvent) {
			m.Searches.WithLabelValues(searchOutcome(e)).Inc()
			m.Visited.Observe(float64(e.Visited))
			m.Duration.Observe(e.Elapsed.Seconds())
			if e.Found {
				m.PathLength.Observe(float64(e.Steps))
			}
		},
	}
}

func searchOutcome(e *domain.SearchEvent) string {
	switch {
	case errors.Is(e.Err, domain.ErrSearchLimit):
		return "limit"
	case e.Err != nil:
		return "error"
	case e.Found:
		return "found"
	default:
		return "not_found"
	}
}

// InstrumentCache wraps c so every lookup is counted.
func (m *Metrics) InstrumentCache(c ports.PathCache) ports.PathCache {
	return &instrumentedCache{PathCache: c, m: m}
}

type instrumentedCache struct {
	ports.PathCache
	m *Metrics
}

func (c *instrumentedCache) Get(ctx context.Context, key string) (domain.Outcome, error) {
	out, err := c.PathCache.Get(ctx, key)
	switch {
	case err == nil:
		c.m.CacheRequests.WithLabelValues("hit").Inc()
	case errors.Is(err, domain.ErrCacheMiss):
		c.m.CacheRequests.WithLabelValues("miss").Inc()
	default:
		c.m.CacheRequests.WithLabelValues("error").Inc()
	}
	return out, err
}
