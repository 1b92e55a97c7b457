package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meetingroom_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meetingroom_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meetingroom_reservation_queries_total",
			Help: "Total number of reservation queries by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	RoomCountCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meetingroom_room_count_cache_total",
			Help: "Room count cache lookups by result",
		},
		[]string{"result"},
	)
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordReservationQuery counts one repository call; status is "ok" or "error".
func RecordReservationQuery(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ReservationQueriesTotal.WithLabelValues(operation, status).Inc()
}

func RecordCacheLookup(result string) {
	RoomCountCacheTotal.WithLabelValues(result).Inc()
}
