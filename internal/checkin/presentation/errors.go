package presentation

import (
	dErrors "safecheck/pkg/domain-errors"
)

// ErrorMessage turns a check-in error into an alert title and an actionable
// message for the user.
func ErrorMessage(err error) (title, message string) {
	switch {
	case err == nil:
		return "", ""
	case dErrors.HasCode(err, dErrors.CodeMissingStatus):
		return "Error", "Please select a status"
	case dErrors.HasCode(err, dErrors.CodeUnknownStatus):
		return "Error", "That status is not recognized. Please choose one from the list."
	case dErrors.HasCode(err, dErrors.CodePermissionDenied):
		return "Permission needed", "Access was denied. You can still check in; enable access in Settings to attach it."
	case dErrors.HasCode(err, dErrors.CodePositionUnavailable):
		return "Location", "Unable to get your current location. Try refreshing."
	case dErrors.HasCode(err, dErrors.CodeCaptureFailed):
		return "Camera", "Failed to take photo. Please try again."
	case dErrors.HasCode(err, dErrors.CodeConflict):
		return "Please wait", "A request is already in progress."
	case dErrors.HasCode(err, dErrors.CodeInvalidInput):
		return "Error", "Some check-in details are invalid. Please review and try again."
	default:
		return "Error", "Something went wrong. Please try again."
	}
}
