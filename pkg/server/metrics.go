package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serverMetrics holds the session-level collectors. A nil *serverMetrics
// records nothing.
type serverMetrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	patchesSent    *prometheus.CounterVec
	protocolErrors *prometheus.CounterVec
	wsErrors       *prometheus.CounterVec
}

func newServerMetrics(reg prometheus.Registerer, namespace string) *serverMetrics {
	if reg == nil {
		return nil
	}
	factory := promauto.With(reg)

	return &serverMetrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of open WebSocket sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Total number of sessions created",
		}),
		patchesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patches_sent_total",
			Help:      "Slot patches sent to clients",
		}, []string{"slot", "reason"}),
		protocolErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "protocol_errors_total",
			Help:      "Error frames sent to clients by code",
		}, []string{"code"}),
		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "websocket_errors_total",
			Help:      "Total WebSocket errors by type",
		}, []string{"type"}),
	}
}

func (m *serverMetrics) sessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
	m.sessionsTotal.Inc()
}

func (m *serverMetrics) sessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}

func (m *serverMetrics) recordPatch(slot, reason string) {
	if m == nil {
		return
	}
	m.patchesSent.WithLabelValues(slot, reason).Inc()
}

func (m *serverMetrics) recordError(code string) {
	if m == nil {
		return
	}
	if code == "" {
		code = "none"
	}
	m.protocolErrors.WithLabelValues(code).Inc()
}

func (m *serverMetrics) recordWebSocketError(kind string) {
	if m == nil {
		return
	}
	m.wsErrors.WithLabelValues(kind).Inc()
}
