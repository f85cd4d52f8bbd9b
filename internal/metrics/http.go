package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var httpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: prometheus.ExponentialBuckets(5, 2, 10),
	},
	[]string{"method", "route", "status"},
)

func RecordHTTP(method, route string, status int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).
		Observe(float64(time.Since(started).Milliseconds()))
}
