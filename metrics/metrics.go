package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for identifier verification and OCR calls.
type Metrics struct {
	// Verification outcomes by identifier, source and outcome
	Verifications *prometheus.CounterVec

	// Confidence reported for each verification
	Confidence *prometheus.HistogramVec

	// OCR provider latency by provider and status
	OCRDuration *prometheus.HistogramVec
}

// New registers all metrics on reg. Passing a fresh registry keeps tests
// independent of the global default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Verifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "idverify_verifications_total",
			Help: "Total identifier verifications by identifier, source and outcome",
		}, []string{"identifier", "source", "outcome"}),

		Confidence: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idverify_confidence",
			Help:    "Confidence score reported per verification",
			Buckets: []float64{0, 30, 70, 75, 80, 85, 90, 95, 100},
		}, []string{"identifier"}),

		OCRDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idverify_ocr_duration_seconds",
			Help:    "Duration of OCR provider calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provider", "status"}), // status: "ok", "empty", "error"
	}
}

// ObserveVerification records one verification result.
func (m *Metrics) ObserveVerification(identifier, source, outcome string, confidence int) {
	if m != nil {
		m.Verifications.WithLabelValues(identifier, source, outcome).Inc()
		m.Confidence.WithLabelValues(identifier).Observe(float64(confidence))
	}
}

// ObserveOCR records the duration of one provider call.
func (m *Metrics) ObserveOCR(provider, status string, d time.Duration) {
	if m != nil {
		m.OCRDuration.WithLabelValues(provider, status).Observe(d.Seconds())
	}
}
