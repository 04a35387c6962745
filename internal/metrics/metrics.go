// Package metrics exposes Prometheus collectors for the ranking
// engine's core flows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ranking_engine"

var (
	RankingsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rankings_served_total",
		Help:      "Rankings returned to coachees, by cache outcome.",
	}, []string{"cache"})

	RankingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ranking_duration_seconds",
		Help:      "Time spent computing a full ranking.",
		Buckets:   prometheus.DefBuckets,
	})

	EventsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_ingested_total",
		Help:      "Activity events accepted, by event type.",
	}, []string{"type"})

	StaleWritesDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_writes_discarded_total",
		Help:      "Out-of-order state writes discarded by last-write-wins checks.",
	})

	CoachesHidden = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coaches_hidden_total",
		Help:      "Coaches hidden from ranking by reputation decay.",
	})

	CoachesReadmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "coaches_readmitted_total",
		Help:      "Hidden coaches re-admitted after resuming activity.",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Visibility notifications delivered, by type and outcome.",
	}, []string{"type", "outcome"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by endpoint and status code.",
	}, []string{"endpoint", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by endpoint.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})
)
