package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveVerification(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveVerification("aadhaar", "number", "valid", 85)
	m.ObserveVerification("aadhaar", "number", "valid", 85)
	m.ObserveVerification("pan", "document", "structure_invalid", 30)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Verifications.WithLabelValues("aadhaar", "number", "valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Verifications.WithLabelValues("pan", "document", "structure_invalid")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Confidence))
}

func TestObserveOCR(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveOCR("tesseract", "ok", 120*time.Millisecond)
	m.ObserveOCR("vision", "error", time.Second)

	assert.Equal(t, 2, testutil.CollectAndCount(m.OCRDuration))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveVerification("pan", "text", "valid", 100)
		m.ObserveOCR("qr", "empty", time.Millisecond)
	})
}
