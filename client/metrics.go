package client

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adminpanel_backend_requests_total",
			Help: "Total number of backend REST calls",
		},
		[]string{"resource", "method", "outcome"},
	)

	backendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adminpanel_backend_request_duration_seconds",
			Help:    "Duration of backend REST calls",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2, 5, 10},
		},
		[]string{"resource", "method"},
	)
)

func observeRequest(resource, method string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			outcome = "http_error"
		} else {
			outcome = "transport_error"
		}
	}
	backendRequestsTotal.WithLabelValues(resource, method, outcome).Inc()
	backendRequestDuration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}
