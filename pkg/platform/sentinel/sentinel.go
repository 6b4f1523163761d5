package sentinel

import "errors"

// Sentinel errors for device capability facts. Capability adapters (location,
// camera, share sheet) return these, optionally wrapped, so the check-in core
// can translate them into domain errors.
//
// These describe what the platform reported, not validation failures:
// - ErrDenied: the user or OS refused access to the capability
// - ErrUnavailable: the capability could not produce a result right now
// - ErrCanceled: the user dismissed the platform UI before it completed
// - ErrNotFound: the lookup succeeded but yielded nothing (e.g. no geocode match)
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrDenied      = errors.New("denied")
	ErrUnavailable = errors.New("unavailable")
	ErrCanceled    = errors.New("canceled")
	ErrNotFound    = errors.New("not found")
)
