package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imgverify_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "imgverify_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Verification metrics
	verificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imgverify_verifications_total",
			Help: "Total number of verification runs",
		},
		[]string{"outcome"}, // outcome: valid, invalid, error
	)

	verificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "imgverify_verification_duration_seconds",
			Help:    "Verification pipeline duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 25},
		},
	)

	extractedTextLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "imgverify_extracted_text_length",
			Help:    "Length of OCR-extracted text",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	// File upload metrics
	uploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "imgverify_upload_size_bytes",
			Help:    "Size of uploaded files in bytes",
			Buckets: []float64{1024, 10 * 1024, 100 * 1024, 1024 * 1024, 10 * 1024 * 1024, 50 * 1024 * 1024},
		},
	)
)

// recordVerification updates the verification metrics for one completed run.
func recordVerification(outcome string, seconds float64, textLen int) {
	verificationsTotal.WithLabelValues(outcome).Inc()
	verificationDuration.Observe(seconds)
	extractedTextLength.Observe(float64(textLen))
}
