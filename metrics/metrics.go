// Package metrics defines the Prometheus collectors exposed by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikiquiz_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wikiquiz_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Business metrics for the generation pipeline
	QuizRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikiquiz_quiz_requests_total",
			Help: "Total number of quiz generation requests",
		},
		[]string{"result"}, // cached | generated | error
	)

	ArticleScrapesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wikiquiz_article_scrapes_total",
			Help: "Total number of article scrape attempts",
		},
		[]string{"status"}, // ok | error
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wikiquiz_generation_duration_seconds",
			Help:    "End-to-end duration of cache-miss quiz generation",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
	)
)
