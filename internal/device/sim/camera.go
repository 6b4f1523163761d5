package sim

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/google/uuid"

	"safecheck/internal/checkin/models"
	"safecheck/pkg/platform/sentinel"
)

// Camera hands out file references under Dir without writing image data.
type Camera struct {
	Permission models.Permission
	Dir        string
	// Fail makes every capture report the camera as unavailable.
	Fail bool

	newID func() uuid.UUID
}

func (c *Camera) RequestPermission(ctx context.Context) (models.Permission, error) {
	if err := ctx.Err(); err != nil {
		return models.PermissionUndetermined, fmt.Errorf("camera permission: %w", sentinel.ErrCanceled)
	}
	return c.Permission, nil
}

func (c *Camera) Capture(ctx context.Context) (models.PhotoReference, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("capture: %w", sentinel.ErrCanceled)
	}
	if !c.Permission.Granted() {
		return "", fmt.Errorf("capture: %w", sentinel.ErrDenied)
	}
	if c.Fail {
		return "", fmt.Errorf("capture: %w", sentinel.ErrUnavailable)
	}
	newID := c.newID
	if newID == nil {
		newID = uuid.New
	}
	u := url.URL{Scheme: "file", Path: path.Join("/", c.Dir, newID().String()+".jpg")}
	return models.PhotoReference(u.String()), nil
}
