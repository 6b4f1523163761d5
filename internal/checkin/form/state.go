package form

import "safecheck/internal/checkin/models"

// LocationPhase tracks the location row of the form.
type LocationPhase string

const (
	LocationIdle        LocationPhase = "idle"
	LocationAcquiring   LocationPhase = "acquiring"
	LocationAcquired    LocationPhase = "acquired"
	LocationUnavailable LocationPhase = "unavailable"
	LocationDenied      LocationPhase = "denied"
)

// State is the complete, screen-local state of one check-in form. Each form
// instance owns exactly one; callers only ever see copies.
type State struct {
	Status        models.StatusKind
	Message       string
	Location      *models.LocationSnapshot
	LocationPhase LocationPhase
	Photo         models.PhotoReference
	PickerOpen    bool
	CameraVisible bool
	Capturing     bool
	Submitting    bool
	Dismissed     bool
}

func (s State) clone() State {
	s.Location = s.Location.Clone()
	return s
}
