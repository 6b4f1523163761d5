// Package taxonomy holds the fixed set of safety statuses and their display
// metadata. The order of entries is the order shown in status pickers.
package taxonomy

import (
	"safecheck/internal/checkin/models"
	dErrors "safecheck/pkg/domain-errors"
)

var statuses = []models.StatusMetadata{
	{
		ID:          models.StatusSafe,
		Label:       "Safe",
		Glyph:       "✅",
		Color:       "#27ae60",
		Description: "I'm safe and everything is okay",
	},
	{
		ID:          models.StatusNeedHelp,
		Label:       "Need Help",
		Glyph:       "🆘",
		Color:       "#e74c3c",
		Description: "I need assistance but it's not urgent",
	},
	{
		ID:          models.StatusEmergency,
		Label:       "Emergency",
		Glyph:       "🚨",
		Color:       "#c0392b",
		Description: "I need immediate help",
	},
	{
		ID:          models.StatusTraveling,
		Label:       "Traveling",
		Glyph:       "✈️",
		Color:       "#3498db",
		Description: "I'm on the move",
	},
	{
		ID:          models.StatusArrived,
		Label:       "Arrived",
		Glyph:       "🏁",
		Color:       "#8e44ad",
		Description: "I've reached my destination",
	},
}

var byID = func() map[models.StatusKind]models.StatusMetadata {
	m := make(map[models.StatusKind]models.StatusMetadata, len(statuses))
	for _, s := range statuses {
		if _, dup := m[s.ID]; dup {
			panic("taxonomy: duplicate status id " + s.ID.String())
		}
		m[s.ID] = s
	}
	return m
}()

// Resolve returns the metadata for identifier.
//
// Errors: CodeMissingStatus for an empty identifier, CodeUnknownStatus when no
// variant matches. There is no fallback variant.
func Resolve(identifier string) (models.StatusMetadata, error) {
	if identifier == "" {
		return models.StatusMetadata{}, dErrors.New(dErrors.CodeMissingStatus, "please select a status")
	}
	meta, ok := byID[models.StatusKind(identifier)]
	if !ok {
		return models.StatusMetadata{}, dErrors.New(dErrors.CodeUnknownStatus, "unknown status: "+identifier)
	}
	return meta, nil
}

// ListAll returns every status in display order. The slice is a copy.
func ListAll() []models.StatusMetadata {
	out := make([]models.StatusMetadata, len(statuses))
	copy(out, statuses)
	return out
}
