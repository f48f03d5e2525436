package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/timerecord"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
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
	// Time record domain errors
	case errors.Is(err, timerecord.ErrInvalidKind):
		Error(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
	case errors.Is(err, timerecord.ErrDuplicateEvent):
		Error(w, http.StatusConflict, "DUPLICATE_EVENT", err.Error())
	case errors.Is(err, timerecord.ErrMissingClockIn):
		Error(w, http.StatusUnprocessableEntity, "MISSING_CLOCK_IN", err.Error())
	case errors.Is(err, timerecord.ErrMissingBreakStart):
		Error(w, http.StatusUnprocessableEntity, "MISSING_BREAK_START", err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDailyAttendanceNotFound):
		NotFound(w, "Daily attendance not found")
	case errors.Is(err, attendance.ErrInvalidRebuildRange):
		BadRequest(w, err.Error(), nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token not provided")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrCPFExists):
		Conflict(w, "CPF already registered")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrRegistrationNumberExists):
		Conflict(w, "Registration number already registered")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
