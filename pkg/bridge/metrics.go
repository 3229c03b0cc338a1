package bridge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vbridge").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures NewMetrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegisterer sets the Prometheus registerer.
func WithRegisterer(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vbridge",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the adapter's Prometheus collectors. All methods are safe on
// a nil receiver.
type Metrics struct {
	mounts          *prometheus.CounterVec
	unmounts        *prometheus.CounterVec
	active          *prometheus.GaugeVec
	renders         *prometheus.CounterVec
	renderDuration  *prometheus.HistogramVec
	watchersFired   *prometheus.CounterVec
	deferredDrained *prometheus.CounterVec
	deferredDropped *prometheus.CounterVec
	methodCalls     *prometheus.CounterVec
}

// NewMetrics registers the adapter collectors.
//
// Metrics collected:
//   - vbridge_mounts_total: components created, by tag
//   - vbridge_unmounts_total: components unmounted, by tag
//   - vbridge_active_components: mounted components, by tag
//   - vbridge_renders_total: render calls, by tag
//   - vbridge_render_duration_seconds: render duration, by tag
//   - vbridge_watchers_fired_total: watcher invocations, by tag
//   - vbridge_deferred_drained_total: NextTick callbacks run, by tag
//   - vbridge_deferred_dropped_total: NextTick callbacks discarded on unmount, by tag
//   - vbridge_method_calls_total: host method calls, by tag and status
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		}, labels)
	}

	return &Metrics{
		mounts:   counter("mounts_total", "Total number of components created", "tag"),
		unmounts: counter("unmounts_total", "Total number of components unmounted", "tag"),
		active: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_components",
			Help:        "Number of components currently mounted",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),
		renders: counter("renders_total", "Total number of component renders", "tag"),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Component render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"tag"}),
		watchersFired:   counter("watchers_fired_total", "Total number of watcher invocations", "tag"),
		deferredDrained: counter("deferred_drained_total", "Total number of NextTick callbacks run", "tag"),
		deferredDropped: counter("deferred_dropped_total", "Total number of NextTick callbacks dropped on unmount", "tag"),
		methodCalls:     counter("method_calls_total", "Total number of host method calls", "tag", "status"),
	}
}

func (m *Metrics) recordMount(tag string) {
	if m == nil {
		return
	}
	m.mounts.WithLabelValues(tag).Inc()
	m.active.WithLabelValues(tag).Inc()
}

func (m *Metrics) recordUnmount(tag string) {
	if m == nil {
		return
	}
	m.unmounts.WithLabelValues(tag).Inc()
	m.active.WithLabelValues(tag).Dec()
}

func (m *Metrics) recordRender(tag string, d time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(tag).Inc()
	m.renderDuration.WithLabelValues(tag).Observe(d.Seconds())
}

func (m *Metrics) recordWatchers(tag string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.watchersFired.WithLabelValues(tag).Add(float64(n))
}

func (m *Metrics) recordDrained(tag string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.deferredDrained.WithLabelValues(tag).Add(float64(n))
}

func (m *Metrics) recordDropped(tag string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.deferredDropped.WithLabelValues(tag).Add(float64(n))
}

func (m *Metrics) recordCall(tag string, ok bool) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "unknown_method"
	}
	m.methodCalls.WithLabelValues(tag, status).Inc()
}
