package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"safecheck/internal/checkin/metrics"
	"safecheck/internal/checkin/models"
	"safecheck/internal/checkin/ports"
	dErrors "safecheck/pkg/domain-errors"
	"safecheck/pkg/platform/sentinel"
)

const tracerName = "safecheck/internal/checkin/location"

// Acquirer turns one request against the device location service into a
// LocationSnapshot. Every call is a fresh attempt; nothing is cached.
type Acquirer struct {
	service ports.LocationService
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	tracer  trace.Tracer
}

type Option func(*Acquirer)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Acquirer) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Acquirer) {
		a.metrics = m
	}
}

// WithClock overrides the clock used to stamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(a *Acquirer) {
		a.now = now
	}
}

func New(service ports.LocationService, opts ...Option) (*Acquirer, error) {
	if service == nil {
		return nil, fmt.Errorf("location service is required")
	}

	a := &Acquirer{
		service: service,
		now:     time.Now,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Acquire requests permission, reads the current position and reverse
// geocodes it.
//
// Errors: CodePermissionDenied when access is refused (terminal for this
// attempt, no retry), CodePositionUnavailable when no usable fix is
// produced. A failed or empty geocode is not an error: the snapshot carries
// models.UnknownLocation instead.
func (a *Acquirer) Acquire(ctx context.Context) (*models.LocationSnapshot, error) {
	ctx, span := a.tracer.Start(ctx, "location.Acquire")
	defer span.End()

	perm, err := a.service.RequestPermission(ctx)
	if err != nil && !errors.Is(err, sentinel.ErrDenied) {
		return nil, a.fail(ctx, span, metrics.OutcomeUnavailable,
			dErrors.Wrap(err, dErrors.CodePositionUnavailable, "could not request location permission"))
	}
	if err != nil || !perm.Granted() {
		return nil, a.fail(ctx, span, metrics.OutcomeDenied,
			dErrors.Wrap(err, dErrors.CodePermissionDenied, "location permission denied"))
	}

	pos, err := a.service.CurrentPosition(ctx)
	if err != nil {
		return nil, a.fail(ctx, span, metrics.OutcomeUnavailable,
			dErrors.Wrap(err, dErrors.CodePositionUnavailable, "current position unavailable"))
	}
	if err := pos.Validate(); err != nil {
		return nil, a.fail(ctx, span, metrics.OutcomeUnavailable,
			dErrors.Wrap(err, dErrors.CodePositionUnavailable, "device reported an invalid position"))
	}

	address, fallback := a.geocode(ctx, pos)
	snap, err := models.NewLocationSnapshot(pos, address, a.now())
	if err != nil {
		return nil, a.fail(ctx, span, metrics.OutcomeUnavailable,
			dErrors.Wrap(err, dErrors.CodePositionUnavailable, "could not build location snapshot"))
	}

	outcome := metrics.OutcomeAcquired
	if fallback {
		outcome = metrics.OutcomeGeocodeFallback
	}
	a.metrics.IncrementLocation(outcome)
	span.SetAttributes(attribute.String("outcome", outcome))
	return snap, nil
}

func (a *Acquirer) geocode(ctx context.Context, pos models.Position) (string, bool) {
	raw, err := a.service.ReverseGeocode(ctx, pos.Latitude, pos.Longitude)
	if err != nil {
		if a.logger != nil {
			a.logger.WarnContext(ctx, "reverse geocode failed", "error", err)
		}
		return models.UnknownLocation, true
	}
	address := NormalizeAddress(raw)
	if address == "" {
		return models.UnknownLocation, true
	}
	return address, false
}

func (a *Acquirer) fail(ctx context.Context, span trace.Span, outcome string, err error) error {
	a.metrics.IncrementLocation(outcome)
	span.SetAttributes(attribute.String("outcome", outcome))
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	if a.logger != nil {
		a.logger.InfoContext(ctx, "location acquisition failed", "outcome", outcome, "error", err)
	}
	return err
}
