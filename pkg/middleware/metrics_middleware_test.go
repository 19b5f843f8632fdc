package middleware

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

// collect reads the current state of a single metric.
func collect(t *testing.T, c prometheus.Metric) *dto.Metric {
	t.Helper()
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	return m
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	return collect(t, c).GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	return collect(t, g).GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	h, ok := o.(prometheus.Histogram)
	if !ok {
		t.Fatalf("%T is not a histogram", o)
	}
	return collect(t, h).GetHistogram().GetSampleCount()
}

func TestPrometheusStatus(t *testing.T) {
	tests := []struct {
		status string
		err    error
	}{
		{"success", nil},
		{"panic", fmt.Errorf("%w: nil map", ErrHandlerPanic)},
		{"not_found", errors.New("handler not found")},
		{"error", errors.New("boom")},
	}

	resetGlobalMetricsForTest()
	mw := Prometheus(WithRegistry(prometheus.NewRegistry()))
	m := current()

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := mw(func(*Event) error { return tt.err })(newEvent("copy"))
			if !errors.Is(got, tt.err) {
				t.Fatalf("handler error = %v, want %v", got, tt.err)
			}
			if n := metricCounterValue(t, m.eventsTotal.WithLabelValues("button", "copy", tt.status)); n != 1 {
				t.Errorf("events_total{status=%q} = %v, want 1", tt.status, n)
			}
		})
	}

	if n := metricHistogramCount(t, m.eventDuration.WithLabelValues("button", "copy")); n != uint64(len(tests)) {
		t.Errorf("event_duration_seconds count = %d, want %d", n, len(tests))
	}
}

func TestPrometheusMiddleware_CountsSelections(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()
	h := Prometheus(WithRegistry(reg))(func(*Event) error { return nil })

	_ = h(newEvent("select", "control", "size", "value", "small"))
	_ = h(newEvent("select", "control", "size", "value", "large"))
	_ = h(newEvent("select", "control", "color", "value", "secondary"))

	m := current()
	if got := metricCounterValue(t, m.selections.WithLabelValues("button", "size")); got != 2 {
		t.Errorf("selections_total(size)=%v, want 2", got)
	}
	if got := metricCounterValue(t, m.selections.WithLabelValues("button", "color")); got != 1 {
		t.Errorf("selections_total(color)=%v, want 1", got)
	}
}

func TestPrometheusMiddleware_ReusesMetrics(t *testing.T) {
	resetGlobalMetricsForTest()
	reg := prometheus.NewRegistry()

	Prometheus(WithRegistry(reg), WithNamespace("a"))
	first := current()
	Prometheus(WithRegistry(reg), WithNamespace("b"))
	if current() != first {
		t.Error("second Prometheus() call should reuse the registered metrics")
	}
}

func TestRecordFunctions(t *testing.T) {
	resetGlobalMetricsForTest()
	RecordSessionCreate() // no metrics yet: must not panic

	reg := prometheus.NewRegistry()
	Prometheus(WithRegistry(reg))
	m := current()

	RecordSessionCreate()
	RecordSessionCreate()
	RecordSessionDestroy()
	if got := metricGaugeValue(t, m.activeSessions); got != 1 {
		t.Errorf("active_sessions=%v, want 1", got)
	}

	RecordPatches(3)
	if got := metricCounterValue(t, m.patchesSent); got != 3 {
		t.Errorf("patches_sent_total=%v, want 3", got)
	}

	RecordCopy("switch", CopyRequested)
	RecordCopy("switch", CopyFailed)
	RecordCopy("switch", CopyFailed)
	if got := metricCounterValue(t, m.copies.WithLabelValues("switch", CopyFailed)); got != 2 {
		t.Errorf("copies_total(failed)=%v, want 2", got)
	}

	RecordWebSocketError("read")
	if got := metricCounterValue(t, m.wsErrors.WithLabelValues("read")); got != 1 {
		t.Errorf("websocket_errors_total(read)=%v, want 1", got)
	}
}
