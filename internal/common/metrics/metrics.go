// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TripSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_submissions_total",
			Help: "Total number of trip submissions by outcome",
		},
		[]string{"outcome"},
	)

	WeatherFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_fetches_total",
			Help: "Total number of weather fetches by outcome",
		},
		[]string{"outcome"},
	)

	ItineraryRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "itinerary_request_duration_seconds",
			Help: "Duration of itinerary generation requests in seconds",
		},
	)

	WeatherCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cache_lookups_total",
			Help: "Total number of weather cache lookups by result",
		},
		[]string{"result"},
	)
)

const (
	OutcomeAccepted         = "accepted"
	OutcomeValidationFailed = "validation_failed"
	OutcomeRejected         = "rejected"
	OutcomePrimaryFailed    = "primary_failed"
	OutcomeSuccess          = "success"
	OutcomeFailed           = "failed"
	OutcomeStale            = "stale"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
