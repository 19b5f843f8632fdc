package middleware

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures Prometheus. The zero Namespace, Buckets and
// Registry fall back to "cosmos", prometheus.DefBuckets and the default
// registerer.
type MetricsConfig struct {
	Namespace   string
	Subsystem   string
	ConstLabels prometheus.Labels
	Buckets     []float64
	Registry    prometheus.Registerer
}

type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = subsystem }
}

func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

type metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	selections     *prometheus.CounterVec
	copies         *prometheus.CounterVec
	patchesSent    prometheus.Counter
	activeSessions prometheus.Gauge
	wsErrors       *prometheus.CounterVec
}

// The collectors are process wide: the first Prometheus call registers
// them and the Record helpers are no-ops until then.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func newMetrics(c MetricsConfig) *metrics {
	f := promauto.With(c.Registry)
	opts := func(name, help string) prometheus.Opts {
		return prometheus.Opts{
			Namespace:   c.Namespace,
			Subsystem:   c.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: c.ConstLabels,
		}
	}
	counterVec := func(name, help string, labels ...string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts(opts(name, help)), labels)
	}

	latency := opts("event_duration_seconds", "Time spent handling one preview event")
	return &metrics{
		eventsTotal: counterVec("events_total", "Preview events handled, by action and status", "preview", "type", "status"),
		eventDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   latency.Namespace,
			Subsystem:   latency.Subsystem,
			Name:        latency.Name,
			Help:        latency.Help,
			ConstLabels: latency.ConstLabels,
			Buckets:     c.Buckets,
		}, []string{"preview", "type"}),
		selections:     counterVec("selections_total", "Option selections, by control", "preview", "control"),
		copies:         counterVec("copies_total", "Copy-to-clipboard attempts, by outcome", "preview", "outcome"),
		patchesSent:    f.NewCounter(prometheus.CounterOpts(opts("patches_sent_total", "Patches pushed to clients"))),
		activeSessions: f.NewGauge(prometheus.GaugeOpts(opts("active_sessions", "Open WebSocket sessions"))),
		wsErrors:       counterVec("websocket_errors_total", "WebSocket failures, by kind", "type"),
	}
}

// Prometheus counts and times every event under the <namespace>_events_total
// and <namespace>_event_duration_seconds families, and counts successful
// selections per control. Options only apply to the first call; later
// calls reuse the registered collectors.
func Prometheus(opts ...MetricsOption) Middleware {
	config := MetricsConfig{
		Namespace: "cosmos",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = newMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next Handler) Handler {
		return func(ev *Event) error {
			action := ev.Action()
			start := time.Now()
			err := next(ev)
			m.eventDuration.WithLabelValues(ev.Preview, action).Observe(time.Since(start).Seconds())
			m.eventsTotal.WithLabelValues(ev.Preview, action, statusOf(err)).Inc()
			if err == nil && action == "select" {
				m.selections.WithLabelValues(ev.Preview, ev.Control()).Inc()
			}
			return err
		}
	}
}

// ErrHandlerPanic is wrapped by errors produced from a recovered handler
// panic.
var ErrHandlerPanic = errors.New("handler panic")

func statusOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrHandlerPanic):
		return "panic"
	case strings.Contains(err.Error(), "not found"):
		return "not_found"
	}
	return "error"
}

// Copy outcomes.
const (
	CopyRequested   = "requested"   // handed to the client
	CopySucceeded   = "succeeded"   // client confirmed the write
	CopyFailed      = "failed"      // client reported a failure
	CopyUnavailable = "unavailable" // no connection to deliver the write
)

func RecordPatches(count int) {
	withMetrics(func(m *metrics) { m.patchesSent.Add(float64(count)) })
}

func RecordSessionCreate() {
	withMetrics(func(m *metrics) { m.activeSessions.Inc() })
}

func RecordSessionDestroy() {
	withMetrics(func(m *metrics) { m.activeSessions.Dec() })
}

func RecordCopy(preview, outcome string) {
	withMetrics(func(m *metrics) { m.copies.WithLabelValues(preview, outcome).Inc() })
}

func RecordWebSocketError(kind string) {
	withMetrics(func(m *metrics) { m.wsErrors.WithLabelValues(kind).Inc() })
}

func withMetrics(fn func(*metrics)) {
	if m := current(); m != nil {
		fn(m)
	}
}

func current() *metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	return globalMetrics
}
