package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	dErrors "safecheck/pkg/domain-errors"
)

// Record is a single submitted check-in. It is built once at submit time and
// never modified; accessors hand out copies.
type Record struct {
	id        uuid.UUID
	status    StatusMetadata
	message   string
	location  *LocationSnapshot
	photo     PhotoReference
	createdAt time.Time
}

// NewRecord enforces the record invariants. status must carry a known kind;
// message, location and photo are all optional.
func NewRecord(
	id uuid.UUID,
	status StatusMetadata,
	message string,
	location *LocationSnapshot,
	photo PhotoReference,
	createdAt time.Time,
) (*Record, error) {
	if id == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "record id is required")
	}
	if status.ID == "" {
		return nil, dErrors.New(dErrors.CodeMissingStatus, "please select a status")
	}
	if !status.ID.IsValid() {
		return nil, dErrors.New(dErrors.CodeUnknownStatus, "unknown status: "+status.ID.String())
	}
	if createdAt.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "created at is required")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}
	return &Record{
		id:        id,
		status:    status,
		message:   message,
		location:  location.Clone(),
		photo:     photo,
		createdAt: createdAt,
	}, nil
}

func (r *Record) ID() uuid.UUID { return r.id }

func (r *Record) Status() StatusMetadata { return r.status }

// Message returns the free-text message and whether one was given.
func (r *Record) Message() (string, bool) {
	return r.message, r.message != ""
}

// Location returns a copy of the attached snapshot, or nil.
func (r *Record) Location() *LocationSnapshot {
	return r.location.Clone()
}

// Photo returns the attached photo reference and whether one is present.
func (r *Record) Photo() (PhotoReference, bool) {
	return r.photo, !r.photo.IsZero()
}

// CreatedAt is the submission time, independent of the snapshot's own time.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

type recordJSON struct {
	ID        uuid.UUID         `json:"id"`
	Status    StatusKind        `json:"status"`
	Message   string            `json:"message,omitempty"`
	Location  *LocationSnapshot `json:"location,omitempty"`
	Photo     PhotoReference    `json:"photo,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// MarshalJSON renders the record with ISO-8601 timestamps for hosts that
// hand it to other components.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ID:        r.id,
		Status:    r.status.ID,
		Message:   r.message,
		Location:  r.location,
		Photo:     r.photo,
		CreatedAt: r.createdAt,
	})
}
