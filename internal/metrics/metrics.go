// Package metrics exposes Prometheus instrumentation for the frame engine
// and the EOP fetch path. Handler returns the scrape endpoint for embedding
// in a host process.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	transformsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astroframe_transforms_total",
			Help: "Total frame rotations composed, by frame pair and EOP mode.",
		},
		[]string{"source", "target", "eop_mode"},
	)

	eopFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "astroframe_eop_fetch_duration_seconds",
			Help:    "EOP bulletin download duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)

	eopFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astroframe_eop_fetch_total",
			Help: "Total EOP bulletin download attempts by result.",
		},
		[]string{"result"},
	)

	eopDatasetSpanDays = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "astroframe_eop_dataset_span_days",
			Help: "Span of the currently loaded EOP dataset in days.",
		},
	)
)

func init() {
	prometheus.MustRegister(transformsTotal)
	prometheus.MustRegister(eopFetchDuration)
	prometheus.MustRegister(eopFetchTotal)
	prometheus.MustRegister(eopDatasetSpanDays)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordTransform counts one composed frame rotation. eopMode is "eop" or
// "zero-eop".
func RecordTransform(source, target, eopMode string) {
	transformsTotal.WithLabelValues(source, target, eopMode).Inc()
}

// RecordEOPFetch records one EOP bulletin download attempt.
func RecordEOPFetch(d time.Duration, ok bool) {
	eopFetchDuration.Observe(d.Seconds())
	result := "success"
	if !ok {
		result = "error"
	}
	eopFetchTotal.WithLabelValues(result).Inc()
}

// SetEOPDatasetSpan publishes the span of the loaded EOP dataset.
func SetEOPDatasetSpan(days float64) {
	eopDatasetSpanDays.Set(days)
}
