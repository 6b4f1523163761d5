package models

// Permission is the platform's answer to a capability permission request.
type Permission string

const (
	PermissionUndetermined Permission = "undetermined"
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
)

// Granted reports whether the capability may be used.
func (p Permission) Granted() bool {
	return p == PermissionGranted
}

// ParsePermission maps host configuration values onto a Permission.
// Anything other than "granted" or "denied" is treated as undetermined.
func ParsePermission(s string) Permission {
	switch Permission(s) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionUndetermined
	}
}
