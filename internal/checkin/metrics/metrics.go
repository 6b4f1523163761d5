package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the capability counters.
const (
	OutcomeAcquired        = "acquired"
	OutcomeGeocodeFallback = "geocode_fallback"
	OutcomeDenied          = "denied"
	OutcomeUnavailable     = "unavailable"
	OutcomeCaptured        = "captured"
	OutcomeFailed          = "failed"
	OutcomeShared          = "shared"
)

// Metrics provides observability for the check-in module.
type Metrics struct {
	// Assembled check-ins by status id
	CheckInsAssembled *prometheus.CounterVec

	// Submissions rejected by error code
	CheckInsRejected *prometheus.CounterVec

	// Location acquisition attempts by outcome
	LocationAttempts *prometheus.CounterVec

	// Photo capture attempts by outcome
	PhotoCaptures *prometheus.CounterVec

	// Share sheet invocations by result
	Shares *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg. A nil reg uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		CheckInsAssembled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safecheck_checkins_assembled_total",
			Help: "Total check-in records assembled by status",
		}, []string{"status"}),

		CheckInsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safecheck_checkins_rejected_total",
			Help: "Total check-in submissions rejected by error code",
		}, []string{"code"}),

		LocationAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safecheck_location_attempts_total",
			Help: "Location snapshot acquisition attempts by outcome",
		}, []string{"outcome"}),

		PhotoCaptures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safecheck_photo_captures_total",
			Help: "Photo capture attempts by outcome",
		}, []string{"outcome"}),

		Shares: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safecheck_shares_total",
			Help: "Share sheet invocations by result",
		}, []string{"result"}),
	}
}

// IncrementAssembled records a successfully assembled check-in.
func (m *Metrics) IncrementAssembled(status string) {
	if m != nil {
		m.CheckInsAssembled.WithLabelValues(status).Inc()
	}
}

// IncrementRejected records a submission that failed validation.
func (m *Metrics) IncrementRejected(code string) {
	if m != nil {
		m.CheckInsRejected.WithLabelValues(code).Inc()
	}
}

// IncrementLocation records the outcome of one acquisition attempt.
func (m *Metrics) IncrementLocation(outcome string) {
	if m != nil {
		m.LocationAttempts.WithLabelValues(outcome).Inc()
	}
}

// IncrementCapture records the outcome of one capture attempt.
func (m *Metrics) IncrementCapture(outcome string) {
	if m != nil {
		m.PhotoCaptures.WithLabelValues(outcome).Inc()
	}
}

// IncrementShare records a share attempt; result is "ok" or "error".
func (m *Metrics) IncrementShare(result string) {
	if m != nil {
		m.Shares.WithLabelValues(result).Inc()
	}
}
