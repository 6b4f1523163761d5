package models

import dErrors "safecheck/pkg/domain-errors"

// StatusKind identifies a self-reported safety state.
// Invariant: the value must be one of the kinds declared below.
//
// Usage: construct via ParseStatusKind at trust boundaries; direct casting
// bypasses validation.
type StatusKind string

const (
	StatusSafe      StatusKind = "safe"
	StatusNeedHelp  StatusKind = "help"
	StatusEmergency StatusKind = "emergency"
	StatusTraveling StatusKind = "traveling"
	StatusArrived   StatusKind = "arrived"
)

// validStatusKinds is the single source of truth for recognized identifiers.
var validStatusKinds = map[StatusKind]bool{
	StatusSafe:      true,
	StatusNeedHelp:  true,
	StatusEmergency: true,
	StatusTraveling: true,
	StatusArrived:   true,
}

// ParseStatusKind constructs a StatusKind from user or host input.
//
// Errors: CodeMissingStatus when s is empty, CodeUnknownStatus when s names no
// known kind. Unknown identifiers are never mapped to a default kind.
func ParseStatusKind(s string) (StatusKind, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeMissingStatus, "please select a status")
	}
	k := StatusKind(s)
	if !k.IsValid() {
		return "", dErrors.New(dErrors.CodeUnknownStatus, "unknown status: "+s)
	}
	return k, nil
}

// IsValid checks if the kind is one of the supported enum values.
func (k StatusKind) IsValid() bool {
	return validStatusKinds[k]
}

func (k StatusKind) String() string {
	return string(k)
}

// StatusMetadata is the display information attached to a StatusKind.
type StatusMetadata struct {
	ID          StatusKind `json:"id"`
	Label       string     `json:"label"`
	Glyph       string     `json:"glyph"`
	Color       string     `json:"color"`
	Description string     `json:"description"`
}

// Badge renders the glyph and label the way every screen shows a status.
func (m StatusMetadata) Badge() string {
	return m.Glyph + " " + m.Label
}
