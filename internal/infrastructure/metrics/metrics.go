package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InteractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomies_interactions_total",
			Help: "Interactions recorded, by type and whether they were new",
		},
		[]string{"type", "created"},
	)

	MatchesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomies_matches_created_total",
			Help: "Total number of mutual matches created",
		},
	)

	Unmatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomies_unmatches_total",
			Help: "Total number of matches removed by a participant",
		},
	)

	CompatibilityScores = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roomies_compatibility_score",
			Help:    "Distribution of computed compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"mode"},
	)

	CompatibilityCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomies_compatibility_cache_total",
			Help: "Compatibility cache lookups by result",
		},
		[]string{"result"},
	)

	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomies_notification_failures_total",
			Help: "Notifications that could not be delivered, by kind",
		},
		[]string{"kind"},
	)
)
