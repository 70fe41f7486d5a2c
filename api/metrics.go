package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricRequests counts API requests by route and status code
	MetricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolkit_http_requests_total",
		Help: "Total API requests by route and status code",
	}, []string{"route", "code"})

	// MetricRequestDuration tracks handler latency by route
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "toolkit_http_request_duration_seconds",
		Help:    "API request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30},
	}, []string{"route"})

	// MetricHarmonies counts generated harmony palettes by scheme
	MetricHarmonies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolkit_harmonies_total",
		Help: "Total harmony palettes generated by scheme",
	}, []string{"scheme"})

	// MetricPalettes counts AI palette requests by outcome
	MetricPalettes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "toolkit_ai_palettes_total",
		Help: "Total AI palette requests by outcome",
	}, []string{"outcome"})
)
