package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GeneratorTicks counts generator task executions by task name and
	// result (ok, error, skipped).
	GeneratorTicks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "airportops_generator_ticks_total",
		Help: "Generator task executions by task and result.",
	}, []string{"task", "result"})

	RecordsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "airportops_generator_records_total",
		Help: "Synthetic records written by entity.",
	}, []string{"entity"})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "airportops_http_requests_total",
		Help: "HTTP requests by method, path and status.",
	}, []string{"method", "path", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "airportops_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

func init() {
	prometheus.MustRegister(GeneratorTicks, RecordsGenerated, HTTPRequests, HTTPDuration)
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
