// Package presentation renders check-in records as plain text for the
// confirmation prompt, the status screen and outbound sharing. Every function
// is pure: the same record always renders to the same bytes.
package presentation

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"safecheck/internal/checkin/models"
)

const (
	appName        = "SafeCheck"
	notAvailable   = "Not available"
	unknownAddress = "Unknown"
	included       = "Included"
	none           = "None"
)

// Renderer formats timestamps for one locale and time zone.
type Renderer struct {
	locale int
	loc    *time.Location
}

// NewRenderer picks the supported locale closest to locale (falling back to
// en-US) and renders times in loc (UTC when nil).
func NewRenderer(locale string, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{locale: matchLocale(locale), loc: loc}
}

// Locale reports the locale actually used for rendering.
func (r *Renderer) Locale() language.Tag {
	return supportedLocales[r.locale].tag
}

// FormatTime renders t the way the locale shows a date and time.
func (r *Renderer) FormatTime(t time.Time) string {
	return formatTime(t, r.loc, r.locale)
}

var defaultRenderer = NewRenderer("en-US", time.UTC)

// FormatConfirmation renders the summary shown before the user confirms a
// check-in.
func FormatConfirmation(rec *models.Record) string {
	if rec == nil {
		return ""
	}
	address := notAvailable
	if loc := rec.Location(); loc != nil {
		address = loc.Address
	}
	_, hasPhoto := rec.Photo()
	_, hasMessage := rec.Message()

	var b strings.Builder
	b.WriteString("Please confirm your check-in:\n\n")
	fmt.Fprintf(&b, "Status: %s\n", rec.Status().Badge())
	fmt.Fprintf(&b, "Location: %s\n", address)
	fmt.Fprintf(&b, "Photo: %s\n", presence(hasPhoto))
	fmt.Fprintf(&b, "Message: %s", presence(hasMessage))
	return b.String()
}

// FormatShareText renders the outbound share message using en-US and UTC.
func FormatShareText(rec *models.Record) string {
	return defaultRenderer.FormatShareText(rec)
}

// FormatShareText renders the outbound share message. The message block is
// present only when the record carries a message, and is never truncated.
func (r *Renderer) FormatShareText(rec *models.Record) string {
	if rec == nil {
		return ""
	}
	address := unknownAddress
	if loc := rec.Location(); loc != nil {
		address = loc.Address
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Update: %s\n\n", appName, rec.Status().Badge())
	fmt.Fprintf(&b, "Location: %s\n", address)
	fmt.Fprintf(&b, "Time: %s\n", r.FormatTime(rec.CreatedAt()))
	if msg, ok := rec.Message(); ok {
		fmt.Fprintf(&b, "\nMessage: %s\n", msg)
	}
	fmt.Fprintf(&b, "\nSent via %s App", appName)
	return b.String()
}

// FormatSummary renders the status screen rows using en-US and UTC.
func FormatSummary(rec *models.Record) string {
	return defaultRenderer.FormatSummary(rec)
}

// FormatSummary renders the status screen rows. Location, coordinates, photo
// and message rows appear only when the record has them.
func (r *Renderer) FormatSummary(rec *models.Record) string {
	if rec == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s\n", rec.Status().Badge())
	fmt.Fprintf(&b, "Time: %s\n", r.FormatTime(rec.CreatedAt()))
	if loc := rec.Location(); loc != nil {
		fmt.Fprintf(&b, "Location: %s\n", loc.Address)
		fmt.Fprintf(&b, "Coordinates: %s\n", FormatCoordinates(loc))
	}
	if _, ok := rec.Photo(); ok {
		b.WriteString("Photo: 📸 Attached\n")
	}
	if msg, ok := rec.Message(); ok {
		fmt.Fprintf(&b, "Message: %s\n", msg)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// FormatCoordinates renders latitude and longitude to four decimals.
func FormatCoordinates(loc *models.LocationSnapshot) string {
	if loc == nil {
		return ""
	}
	return fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude)
}

func presence(ok bool) string {
	if ok {
		return included
	}
	return none
}
