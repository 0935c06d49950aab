package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the service.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	BookingsCreated prometheus.Counter
	PointsAwarded   prometheus.Counter
	TierUpgrades    prometheus.Counter
	ErrorsCount     *prometheus.CounterVec
}

// New registers the service metrics on the given registerer. Tests pass a
// fresh prometheus.NewRegistry so collectors never collide.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of handled HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to handle HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of bookings created",
		}),
		PointsAwarded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_awarded_total",
			Help:      "The total number of loyalty points credited",
		}),
		TierUpgrades: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tier_upgrades_total",
			Help:      "The total number of tier changes after awards",
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
