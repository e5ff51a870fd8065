package middleware

import (
	stderrors "errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/server"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "showcase").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for action duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
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

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "showcase",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// actionMetrics holds the collectors of one Prometheus middleware.
type actionMetrics struct {
	actionsTotal   *prometheus.CounterVec
	actionDuration *prometheus.HistogramVec
	actionErrors   *prometheus.CounterVec
}

func initMetrics(config MetricsConfig) *actionMetrics {
	factory := promauto.With(config.Registry)

	return &actionMetrics{
		actionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "actions_total",
			Help:        "Total number of widget actions processed",
			ConstLabels: config.ConstLabels,
		}, []string{"action", "status"}),

		actionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "action_duration_seconds",
			Help:        "Action processing duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"action"}),

		actionErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "action_errors_total",
			Help:        "Total number of rejected actions",
			ConstLabels: config.ConstLabels,
		}, []string{"action", "error_type"}),
	}
}

// knownActions bounds the action label. Anything else is counted as "other".
var knownActions = map[string]bool{
	"modal.open":    true,
	"modal.close":   true,
	"toast.show":    true,
	"toast.dismiss": true,
}

// Prometheus creates middleware that collects metrics for every action.
//
// Metrics collected:
//   - showcase_actions_total: Counter of actions by name and status
//   - showcase_action_duration_seconds: Histogram of action duration
//   - showcase_action_errors_total: Counter of rejected actions by error type
//
// The collectors register with the configured registry when Prometheus is
// called; calling it twice with the same registry panics.
func Prometheus(opts ...MetricsOption) server.Middleware {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	m := initMetrics(config)

	return func(next server.HandlerFunc) server.HandlerFunc {
		return func(a *server.Action) error {
			name := a.Name
			if !knownActions[name] {
				name = "other"
			}

			start := time.Now()
			err := next(a)
			m.actionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

			status := "success"
			if err != nil {
				status = "error"
				m.actionErrors.WithLabelValues(name, categorizeError(err)).Inc()
			}
			m.actionsTotal.WithLabelValues(name, status).Inc()

			return err
		}
	}
}

// categorizeError returns a low-cardinality label for err.
func categorizeError(err error) string {
	var ve *viewstate.ValidationError
	if stderrors.As(err, &ve) {
		return "validation"
	}
	if stderrors.Is(err, viewstate.ErrClosed) {
		return "closed"
	}
	var se *errors.ShowcaseError
	if stderrors.As(err, &se) && se.Category != "" {
		return string(se.Category)
	}
	return "internal"
}
