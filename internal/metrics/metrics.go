package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "boxrank"

var (
	RankingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rankings_total",
		Help:      "Rankings computed, by penalty policy and request source (preset or custom).",
	}, []string{"policy", "source"})

	RankingErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ranking_errors_total",
		Help:      "Ranking requests that failed, by reason.",
	}, []string{"reason"})

	WinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wins_total",
		Help:      "Times each device was ranked first.",
	}, []string{"device"})

	RankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ranking_duration_seconds",
		Help:      "Time to score and rank the catalog.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	EventPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_publish_failures_total",
		Help:      "Ranking events that could not be published.",
	})
)

// ObserveRanking records a successful ranking.
func ObserveRanking(policy, source, winner string, took time.Duration) {
	RankingsTotal.WithLabelValues(policy, source).Inc()
	WinsTotal.WithLabelValues(winner).Inc()
	RankingDuration.Observe(took.Seconds())
}

// ObserveError records a failed ranking request.
func ObserveError(reason string) {
	RankingErrorsTotal.WithLabelValues(reason).Inc()
}
