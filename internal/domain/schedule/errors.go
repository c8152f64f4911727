package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("no schedule found for this date")
	ErrDuplicateSchedule = errors.New("a schedule already exists for this employee and date")

	// Validation errors
	ErrInvalidMonth       = errors.New("invalid month, must be between 1 and 12")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingDateRange   = errors.New("start date and end date are required")
	ErrEmployeeIDRequired = errors.New("employee ID is required")
)
