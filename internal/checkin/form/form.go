// Package form holds the in-progress check-in owned by one check-in screen.
// Device requests run outside the lock; at most one location request and
// one capture are in flight, and responses that land after Dismiss are
// dropped.
package form

//go:generate mockgen -source=form.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"safecheck/internal/checkin/assembly"
	"safecheck/internal/checkin/models"
	dErrors "safecheck/pkg/domain-errors"
)

// LocationAcquirer produces a fresh location snapshot.
type LocationAcquirer interface {
	Acquire(ctx context.Context) (*models.LocationSnapshot, error)
}

// PhotoCapturer captures a photo, returning current unchanged on failure.
type PhotoCapturer interface {
	Capture(ctx context.Context, current models.PhotoReference) (models.PhotoReference, error)
}

// RecordAssembler builds the submitted record.
type RecordAssembler interface {
	Assemble(ctx context.Context, in assembly.Input) (*models.Record, error)
}

type Form struct {
	mu        sync.Mutex
	state     State
	locator   LocationAcquirer
	capturer  PhotoCapturer
	assembler RecordAssembler
	logger    *slog.Logger
}

type Option func(*Form)

func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

func New(locator LocationAcquirer, capturer PhotoCapturer, assembler RecordAssembler, opts ...Option) (*Form, error) {
	if locator == nil {
		return nil, fmt.Errorf("location acquirer is required")
	}
	if capturer == nil {
		return nil, fmt.Errorf("photo capturer is required")
	}
	if assembler == nil {
		return nil, fmt.Errorf("record assembler is required")
	}

	f := &Form{
		state:     State{LocationPhase: LocationIdle},
		locator:   locator,
		capturer:  capturer,
		assembler: assembler,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

var errDismissed = dErrors.New(dErrors.CodeDismissed, "check-in screen was closed")

// State returns a copy of the current form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone()
}

// TogglePicker opens or closes the status picker.
func (f *Form) TogglePicker() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Dismissed {
		return errDismissed
	}
	f.state.PickerOpen = !f.state.PickerOpen
	return nil
}

// SelectStatus sets the status and closes the picker. Unknown identifiers
// are rejected and leave the current selection untouched.
func (f *Form) SelectStatus(id string) error {
	kind, err := models.ParseStatusKind(id)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Dismissed {
		return errDismissed
	}
	f.state.Status = kind
	f.state.PickerOpen = false
	return nil
}

func (f *Form) SetMessage(msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Dismissed {
		return errDismissed
	}
	f.state.Message = msg
	return nil
}

// RefreshLocation runs one acquisition attempt. A success replaces the
// snapshot wholesale; a denial clears it for this attempt; any other failure
// keeps the previous snapshot.
//
// Errors: CodeConflict while another attempt is in flight, CodeDismissed
// when the form was dismissed before the response arrived, otherwise the
// acquirer's error.
func (f *Form) RefreshLocation(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Dismissed {
		f.mu.Unlock()
		return errDismissed
	}
	if f.state.LocationPhase == LocationAcquiring {
		f.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "location request already in progress")
	}
	f.state.LocationPhase = LocationAcquiring
	f.mu.Unlock()

	snap, err := f.locator.Acquire(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Dismissed {
		f.debug(ctx, "discarding late location response")
		return errDismissed
	}

	switch {
	case err == nil:
		f.state.Location = snap
		f.state.LocationPhase = LocationAcquired
	case dErrors.HasCode(err, dErrors.CodePermissionDenied):
		f.state.Location = nil
		f.state.LocationPhase = LocationDenied
	case f.state.Location != nil:
		f.state.LocationPhase = LocationAcquired
	default:
		f.state.LocationPhase = LocationUnavailable
	}
	return err
}

func (f *Form) OpenCamera() error {
	return f.setCamera(true)
}

func (f *Form) CloseCamera() error {
	return f.setCamera(false)
}

func (f *Form) setCamera(visible bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Dismissed {
		return errDismissed
	}
	f.state.CameraVisible = visible
	return nil
}

// TakePhoto captures a photo that replaces the attached one. On failure the
// attached photo stays; on success the camera view closes.
//
// Errors: CodeConflict while a capture is in flight, CodeDismissed for late
// responses, otherwise the capturer's error.
func (f *Form) TakePhoto(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Dismissed {
		f.mu.Unlock()
		return errDismissed
	}
	if f.state.Capturing {
		f.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "photo capture already in progress")
	}
	f.state.Capturing = true
	current := f.state.Photo
	f.mu.Unlock()

	ref, err := f.capturer.Capture(ctx, current)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Capturing = false
	if f.state.Dismissed {
		f.debug(ctx, "discarding late capture response")
		return errDismissed
	}
	if err != nil {
		return err
	}
	f.state.Photo = ref
	f.state.CameraVisible = false
	return nil
}

func (f *Form) RemovePhoto() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Dismissed {
		return errDismissed
	}
	f.state.Photo = ""
	return nil
}

// Submit assembles a record from the current state. The form stays editable
// whatever the outcome.
func (f *Form) Submit(ctx context.Context) (*models.Record, error) {
	f.mu.Lock()
	if f.state.Dismissed {
		f.mu.Unlock()
		return nil, errDismissed
	}
	if f.state.Submitting {
		f.mu.Unlock()
		return nil, dErrors.New(dErrors.CodeConflict, "submission already in progress")
	}
	f.state.Submitting = true
	in := assembly.Input{
		Status:   f.state.Status.String(),
		Message:  f.state.Message,
		Location: f.state.Location.Clone(),
		Photo:    f.state.Photo,
	}
	f.mu.Unlock()

	rec, err := f.assembler.Assemble(ctx, in)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Submitting = false
	if f.state.Dismissed {
		return nil, errDismissed
	}
	return rec, err
}

// Dismiss ends the form's lifetime. Requests still in flight are ignored
// when they complete, and further calls return CodeDismissed.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Dismissed = true
	f.state.PickerOpen = false
	f.state.CameraVisible = false
}

func (f *Form) debug(ctx context.Context, msg string) {
	if f.logger != nil {
		f.logger.DebugContext(ctx, msg)
	}
}
