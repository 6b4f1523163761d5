// Package sim provides simulated device capabilities for hosts without real
// location or camera hardware, such as the terminal app and tests.
package sim

import (
	"context"
	"fmt"

	"safecheck/internal/checkin/models"
	"safecheck/pkg/platform/sentinel"
)

// Location reports a fixed position and address.
type Location struct {
	Permission models.Permission
	Position   models.Position
	// Address is returned verbatim by ReverseGeocode; leave it empty to
	// simulate a geocoder with no match.
	Address string
}

func (l *Location) RequestPermission(ctx context.Context) (models.Permission, error) {
	if err := ctx.Err(); err != nil {
		return models.PermissionUndetermined, fmt.Errorf("location permission: %w", sentinel.ErrCanceled)
	}
	return l.Permission, nil
}

func (l *Location) CurrentPosition(ctx context.Context) (models.Position, error) {
	if err := ctx.Err(); err != nil {
		return models.Position{}, fmt.Errorf("current position: %w", sentinel.ErrCanceled)
	}
	if !l.Permission.Granted() {
		return models.Position{}, fmt.Errorf("current position: %w", sentinel.ErrDenied)
	}
	return l.Position, nil
}

func (l *Location) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("reverse geocode: %w", sentinel.ErrCanceled)
	}
	return l.Address, nil
}
