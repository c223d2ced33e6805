package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// serverMetrics exports simulation loop health on /metrics. Each server
// owns its registry, so multiple servers in one process never collide on
// registration.
type serverMetrics struct {
	registry *prometheus.Registry

	stepDuration  prometheus.Histogram
	stepsTotal    prometheus.Counter
	plateCount    prometheus.Gauge
	boundaryCount prometheus.Gauge
	clientCount   prometheus.Gauge
}

func newServerMetrics() *serverMetrics {
	m := &serverMetrics{
		registry: prometheus.NewRegistry(),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "planetsim",
			Name:      "step_duration_seconds",
			Help:      "Wall time of one full simulation step.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		stepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "planetsim",
			Name:      "steps_total",
			Help:      "Simulation steps completed.",
		}),
		plateCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "planetsim",
			Name:      "plates",
			Help:      "Number of tectonic plates.",
		}),
		boundaryCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "planetsim",
			Name:      "boundaries",
			Help:      "Number of plate boundaries after the last step.",
		}),
		clientCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "planetsim",
			Name:      "viewer_clients",
			Help:      "Connected websocket viewers.",
		}),
	}

	m.registry.MustRegister(
		m.stepDuration, m.stepsTotal, m.plateCount, m.boundaryCount, m.clientCount)
	return m
}
