package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Suhaibk137/attendance-app/internal/domain/attendance"
	"github.com/Suhaibk137/attendance-app/internal/domain/auth"
	"github.com/Suhaibk137/attendance-app/internal/domain/report"
	"github.com/Suhaibk137/attendance-app/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid admin password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance already recorded for this employee today")

	// Report domain errors
	case errors.Is(err, report.ErrNoRecords):
		NotFound(w, "No attendance records found for the selected period")

	// Default
	default:
		slog.Error("request failed", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
