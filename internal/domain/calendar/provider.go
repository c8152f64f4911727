package calendar

import "time"

// Provider looks up holiday reference data for a date. Lookups fail
// open: unknown years or dates return ok=false, never an error.
type Provider interface {
	Lookup(date time.Time) (HolidayEntry, bool)
}
