package calendar

import "time"

// HolidayType distinguishes regular (paid) holidays from special
// non-working days, following the national holiday proclamations.
type HolidayType string

const (
	HolidayRegular           HolidayType = "Regular"
	HolidaySpecialNonWorking HolidayType = "Special Non-Working"
)

var HolidayTypeValues = []string{
	string(HolidayRegular),
	string(HolidaySpecialNonWorking),
}

// HolidayEntry is immutable reference data keyed by calendar date.
type HolidayEntry struct {
	Date time.Time
	Name string
	Type HolidayType
}
