package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/hanoi/pkg/domain"
)

// Metrics holds the Prometheus collectors for the engine.
type Metrics struct {
	SolvesTotal   *prometheus.CounterVec
	MovesTotal    prometheus.Counter
	CallsEntered  prometheus.Counter
	SessionsTotal *prometheus.CounterVec
	PlaybackDepth prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hanoi_solves_total",
				Help: "Total number of solve/trace computations",
			},
			[]string{"disks"},
		),
		MovesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hanoi_moves_total",
				Help: "Total number of disk moves replayed",
			},
		),
		CallsEntered: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hanoi_calls_entered_total",
				Help: "Total number of recursive calls entered during playback",
			},
		),
		SessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hanoi_sessions_total",
				Help: "Total number of sessions created",
			},
			[]string{"mode"},
		),
		PlaybackDepth: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "hanoi_playback_call_depth",
				Help:    "Recursion depth of calls entered during playback",
				Buckets: prometheus.LinearBuckets(0, 1, 10),
			},
		),
	}
	reg.MustRegister(m.SolvesTotal, m.MovesTotal, m.CallsEntered, m.SessionsTotal, m.PlaybackDepth)
	return m
}

// Hooks returns playback hooks that record metrics. The returned hooks can
// be chained by the caller with logging hooks if both are wanted.
func (m *Metrics) Hooks(trace *domain.Trace) domain.PlaybackHooks {
	return domain.PlaybackHooks{
		OnCallEnter: func(_ context.Context, e *domain.CallEvent) {
			m.CallsEntered.Inc()
			if e.NodeID >= 0 && e.NodeID < len(trace.Nodes) {
				m.PlaybackDepth.Observe(float64(trace.Nodes[e.NodeID].Depth))
			}
		},
		OnMove: func(_ context.Context, _ *domain.MoveEvent) {
			m.MovesTotal.Inc()
		},
	}
}
