// Package assembly builds immutable check-in records from the in-progress
// form at submit time.
package assembly

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"safecheck/internal/checkin/metrics"
	"safecheck/internal/checkin/models"
	"safecheck/internal/checkin/taxonomy"
	dErrors "safecheck/pkg/domain-errors"
)

const tracerName = "safecheck/internal/checkin/assembly"

// Input is the form state captured at submission.
type Input struct {
	Status   string
	Message  string
	Location *models.LocationSnapshot
	Photo    models.PhotoReference
}

type Assembler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	newID   func() uuid.UUID
	tracer  trace.Tracer
}

type Option func(*Assembler)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Assembler) {
		a.metrics = m
	}
}

// WithClock overrides the clock that stamps CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(a *Assembler) {
		a.newID = newID
	}
}

func New(opts ...Option) *Assembler {
	a := &Assembler{
		now:    time.Now,
		newID:  uuid.New,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble validates the submission and stamps it with the current time.
// CreatedAt is always the submission time, never the location's AcquiredAt.
//
// Errors: CodeMissingStatus when no status was chosen, CodeUnknownStatus when
// the status is not in the taxonomy, CodeInvalidInput when the location
// snapshot breaks its invariants.
func (a *Assembler) Assemble(ctx context.Context, in Input) (*models.Record, error) {
	_, span := a.tracer.Start(ctx, "assembly.Assemble")
	defer span.End()

	status := strings.TrimSpace(in.Status)
	if status == "" {
		return nil, a.reject(ctx, span, dErrors.New(dErrors.CodeMissingStatus, "please select a status"))
	}
	meta, err := taxonomy.Resolve(status)
	if err != nil {
		return nil, a.reject(ctx, span, err)
	}

	record, err := models.NewRecord(a.newID(), meta, in.Message, in.Location, in.Photo, a.now())
	if err != nil {
		return nil, a.reject(ctx, span, err)
	}

	a.metrics.IncrementAssembled(meta.ID.String())
	span.SetAttributes(
		attribute.String("status", meta.ID.String()),
		attribute.Bool("has_location", in.Location != nil),
		attribute.Bool("has_photo", !in.Photo.IsZero()),
	)
	if a.logger != nil {
		a.logger.InfoContext(ctx, "check-in assembled",
			"record_id", record.ID(),
			"status", meta.ID,
			"has_location", in.Location != nil,
			"has_photo", !in.Photo.IsZero(),
			"has_message", in.Message != "",
		)
	}
	return record, nil
}

func (a *Assembler) reject(ctx context.Context, span trace.Span, err error) error {
	code := string(dErrors.CodeOf(err))
	a.metrics.IncrementRejected(code)
	span.RecordError(err)
	span.SetStatus(codes.Error, code)
	if a.logger != nil {
		a.logger.InfoContext(ctx, "check-in rejected", "code", code)
	}
	return err
}
