package calendar

import "time"

// DayKind is the closed classification of a calendar day consumed by
// the schedule reconciler when picking defaults.
type DayKind int

const (
	DayRegular DayKind = iota
	DayWeekend
	DayHoliday
)

func (k DayKind) String() string {
	switch k {
	case DayWeekend:
		return "Weekend"
	case DayHoliday:
		return "Holiday"
	default:
		return "Regular"
	}
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Classify resolves a date against the holiday provider and the
// weekday. A holiday wins over a weekend so the day carries its name.
func Classify(date time.Time, provider Provider) DayKind {
	if provider != nil {
		if _, ok := provider.Lookup(date); ok {
			return DayHoliday
		}
	}
	if IsWeekend(date) {
		return DayWeekend
	}
	return DayRegular
}
