// Package ports defines the device capabilities the check-in core calls but
// does not implement. Hosts provide adapters; tests use the generated mocks.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"safecheck/internal/checkin/models"
)

// LocationService is the platform location capability.
// Adapters report refusals and outages with pkg/platform/sentinel errors.
type LocationService interface {
	// RequestPermission asks the user for foreground location access.
	RequestPermission(ctx context.Context) (models.Permission, error)

	// CurrentPosition returns a single fix. No background tracking.
	CurrentPosition(ctx context.Context) (models.Position, error)

	// ReverseGeocode returns a human-readable address for the coordinates.
	// An empty string means the platform found no match.
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}

// Camera is the platform camera capability.
type Camera interface {
	RequestPermission(ctx context.Context) (models.Permission, error)

	// Capture takes one picture and returns a local reference to it.
	Capture(ctx context.Context) (models.PhotoReference, error)
}

// Alerter shows a blocking message to the user (permission prompts, errors).
type Alerter interface {
	Alert(ctx context.Context, title, message string) error
}

// ShareSheet hands rendered text to the platform's share mechanism.
type ShareSheet interface {
	Share(ctx context.Context, text string) error
}
