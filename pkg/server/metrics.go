package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// liveMetrics tracks the live-session side of the server. HTTP metrics
// are handled separately by the middleware package.
type liveMetrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	eventsTotal    prometheus.Counter
	eventsDropped  prometheus.Counter
	opsSent        prometheus.Counter
	opsFrames      prometheus.Counter
	renderErrors   prometheus.Counter
}

func newLiveMetrics(reg prometheus.Registerer) *liveMetrics {
	factory := promauto.With(reg)

	return &liveMetrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "reactor",
			Subsystem: "live",
			Name:      "active_sessions",
			Help:      "Number of active WebSocket sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reactor",
			Subsystem: "live",
			Name:      "sessions_total",
			Help:      "Total number of WebSocket sessions ever started",
		}),
		eventsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reactor",
			Subsystem: "live",
			Name:      "events_total",
			Help:      "Total number of client events processed",
		}),
		eventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reactor",
			Subsystem: "live",
			Name:      "events_dropped_total",
			Help:      "Total number of client events dropped due to a full queue",
		}),
		opsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reactor",
			Subsystem: "live",
			Name:      "ops_sent_total",
			Help:      "Total number of DOM mutation ops sent to clients",
		}),
		opsFrames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reactor",
			Subsystem: "live",
			Name:      "ops_frames_total",
			Help:      "Total number of ops frames sent to clients",
		}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reactor",
			Subsystem: "live",
			Name:      "render_errors_total",
			Help:      "Total number of component render failures in live sessions",
		}),
	}
}
