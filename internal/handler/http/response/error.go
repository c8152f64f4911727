package response

import (
	"errors"
	"net/http"

	"github.com/lakbayhr/hr-portal-go/internal/domain/attendance"
	"github.com/lakbayhr/hr-portal-go/internal/domain/schedule"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation errors
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Schedule domain errors
	switch {
	case errors.Is(err, schedule.ErrInvalidMonth):
		BadRequest(w, "Invalid month. Month must be between 1 and 12", nil)
	case errors.Is(err, schedule.ErrInvalidDateFormat),
		errors.Is(err, attendance.ErrInvalidDateFormat):
		BadRequest(w, "Invalid date format, use YYYY-MM-DD", nil)
	case errors.Is(err, schedule.ErrMissingDateRange),
		errors.Is(err, attendance.ErrMissingDateRange):
		BadRequest(w, "startDate and endDate are required", nil)
	case errors.Is(err, schedule.ErrInvalidDateRange),
		errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, schedule.ErrEmployeeIDRequired):
		BadRequest(w, "Employee ID is required", nil)
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "No schedule found for this date")
	case errors.Is(err, schedule.ErrDuplicateSchedule):
		Conflict(w, "A schedule already exists for this employee and date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
