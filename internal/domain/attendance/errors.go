package attendance

import "errors"

var (
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingDateRange  = errors.New("start date and end date are required")
)
