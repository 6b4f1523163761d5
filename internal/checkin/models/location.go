package models

import (
	"time"

	"github.com/go-playground/validator/v10"

	dErrors "safecheck/pkg/domain-errors"
)

// UnknownLocation is the address shown when reverse geocoding yields nothing.
const UnknownLocation = "Unknown location"

var validate = validator.New()

// Position is a raw fix reported by the device location service.
type Position struct {
	Latitude  float64  `json:"latitude" validate:"latitude"`
	Longitude float64  `json:"longitude" validate:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
}

// Validate checks that the coordinates are on the globe and the accuracy
// radius, when reported, is not negative.
func (p Position) Validate() error {
	if err := validate.Struct(p); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "position out of range")
	}
	return nil
}

// LocationSnapshot is a geocoded position captured by one acquisition
// attempt. It is immutable once acquired; a newer attempt replaces it whole.
type LocationSnapshot struct {
	Latitude   float64   `json:"latitude" validate:"latitude"`
	Longitude  float64   `json:"longitude" validate:"longitude"`
	Address    string    `json:"address" validate:"required"`
	Accuracy   *float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	AcquiredAt time.Time `json:"acquired_at" validate:"required"`
}

// NewLocationSnapshot builds a snapshot from a validated position.
func NewLocationSnapshot(pos Position, address string, acquiredAt time.Time) (*LocationSnapshot, error) {
	snap := &LocationSnapshot{
		Latitude:   pos.Latitude,
		Longitude:  pos.Longitude,
		Address:    address,
		AcquiredAt: acquiredAt,
	}
	if pos.Accuracy != nil {
		acc := *pos.Accuracy
		snap.Accuracy = &acc
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Validate enforces the snapshot invariants.
func (s *LocationSnapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid location snapshot")
	}
	return nil
}

// Clone returns a deep copy so holders cannot alter each other's snapshot.
func (s *LocationSnapshot) Clone() *LocationSnapshot {
	if s == nil {
		return nil
	}
	c := *s
	if s.Accuracy != nil {
		acc := *s.Accuracy
		c.Accuracy = &acc
	}
	return &c
}
