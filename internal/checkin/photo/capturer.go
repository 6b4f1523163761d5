package photo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

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

const tracerName = "safecheck/internal/checkin/photo"

// Prompt shown when the camera permission is not granted.
const (
	PermissionTitle   = "Camera Permission"
	PermissionMessage = "SafeCheck needs camera access to attach a photo. Please allow camera access in Settings and try again."
)

// Capturer attaches at most one photo to a check-in. A new capture replaces
// the current photo; a failed one leaves it in place.
type Capturer struct {
	camera  ports.Camera
	alerter ports.Alerter
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Capturer)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Capturer) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Capturer) {
		c.metrics = m
	}
}

func New(camera ports.Camera, alerter ports.Alerter, opts ...Option) (*Capturer, error) {
	if camera == nil {
		return nil, fmt.Errorf("camera is required")
	}
	if alerter == nil {
		return nil, fmt.Errorf("alerter is required")
	}

	c := &Capturer{
		camera:  camera,
		alerter: alerter,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Capture takes a photo and returns the reference that should be attached
// afterwards. On any error the returned reference is current, unchanged.
//
// Errors: CodePermissionDenied after prompting the user to grant camera
// access, CodeCaptureFailed when the camera produced no image.
func (c *Capturer) Capture(ctx context.Context, current models.PhotoReference) (models.PhotoReference, error) {
	ctx, span := c.tracer.Start(ctx, "photo.Capture")
	defer span.End()

	perm, err := c.camera.RequestPermission(ctx)
	if err != nil && !errors.Is(err, sentinel.ErrDenied) {
		return current, c.fail(ctx, span, metrics.OutcomeFailed,
			dErrors.Wrap(err, dErrors.CodeCaptureFailed, "could not request camera permission"))
	}
	if err != nil || !perm.Granted() {
		if alertErr := c.alerter.Alert(ctx, PermissionTitle, PermissionMessage); alertErr != nil && c.logger != nil {
			c.logger.WarnContext(ctx, "camera permission prompt failed", "error", alertErr)
		}
		return current, c.fail(ctx, span, metrics.OutcomeDenied,
			dErrors.Wrap(err, dErrors.CodePermissionDenied, "camera permission denied"))
	}

	ref, err := c.camera.Capture(ctx)
	if err != nil {
		return current, c.fail(ctx, span, metrics.OutcomeFailed,
			dErrors.Wrap(err, dErrors.CodeCaptureFailed, "photo capture failed"))
	}
	if ref.IsZero() {
		return current, c.fail(ctx, span, metrics.OutcomeFailed,
			dErrors.New(dErrors.CodeCaptureFailed, "camera returned no image"))
	}

	c.metrics.IncrementCapture(metrics.OutcomeCaptured)
	span.SetAttributes(attribute.String("outcome", metrics.OutcomeCaptured), attribute.Bool("replaced", !current.IsZero()))
	return ref, nil
}

func (c *Capturer) fail(ctx context.Context, span trace.Span, outcome string, err error) error {
	c.metrics.IncrementCapture(outcome)
	span.SetAttributes(attribute.String("outcome", outcome))
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	if c.logger != nil {
		c.logger.InfoContext(ctx, "photo capture failed", "outcome", outcome, "error", err)
	}
	return err
}
