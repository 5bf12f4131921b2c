package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RouterMetrics records how the data-access router splits traffic between
// the hosted backend and the local fallback.
type RouterMetrics struct {
	remoteFailures *prometheus.CounterVec
	remoteSkips    *prometheus.CounterVec
	fallbacks      *prometheus.CounterVec
	localFailures  *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

// NewRouterMetrics registers the router metrics on the provided registerer.
func NewRouterMetrics(reg prometheus.Registerer) *RouterMetrics {
	if reg == nil {
		return &RouterMetrics{}
	}
	remoteFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_remote_failures_total",
		Help: "Operations that failed against the hosted backend.",
	}, []string{"operation"})
	remoteSkips := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_remote_skips_total",
		Help: "Operations routed straight to the local store because the hosted backend was reported unreachable.",
	}, []string{"operation"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_fallbacks_total",
		Help: "Operations served by the local store after a remote failure.",
	}, []string{"operation"})
	localFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_local_failures_total",
		Help: "Operations that failed against the local store.",
	}, []string{"operation"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "backend"})
	reg.MustRegister(remoteFailures, remoteSkips, fallbacks, localFailures, duration)
	return &RouterMetrics{
		remoteFailures: remoteFailures,
		remoteSkips:    remoteSkips,
		fallbacks:      fallbacks,
		localFailures:  localFailures,
		duration:       duration,
	}
}

// IncRemoteFailure increments the remote failure counter for the operation.
func (r *RouterMetrics) IncRemoteFailure(operation string) {
	if r == nil || r.remoteFailures == nil {
		return
	}
	r.remoteFailures.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncRemoteSkip increments the skipped-remote counter for the operation.
func (r *RouterMetrics) IncRemoteSkip(operation string) {
	if r == nil || r.remoteSkips == nil {
		return
	}
	r.remoteSkips.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncFallback increments the fallback counter for the operation.
func (r *RouterMetrics) IncFallback(operation string) {
	if r == nil || r.fallbacks == nil {
		return
	}
	r.fallbacks.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncLocalFailure increments the local failure counter for the operation.
func (r *RouterMetrics) IncLocalFailure(operation string) {
	if r == nil || r.localFailures == nil {
		return
	}
	r.localFailures.WithLabelValues(normalizeLabel(operation)).Inc()
}

// ObserveDuration records how long the operation took on the given backend.
func (r *RouterMetrics) ObserveDuration(operation, backend string, duration time.Duration) {
	if r == nil || r.duration == nil {
		return
	}
	r.duration.WithLabelValues(normalizeLabel(operation), normalizeLabel(backend)).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
