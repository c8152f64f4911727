package schedule

import (
	"time"

	"github.com/lakbayhr/hr-portal-go/internal/pkg/validator"
)

type ShiftType string

const (
	ShiftRegular  ShiftType = "Regular"
	ShiftNight    ShiftType = "Night"
	ShiftFlexible ShiftType = "Flexible"
	ShiftSplit    ShiftType = "Split"
	ShiftOvertime ShiftType = "Overtime"
	ShiftRestDay  ShiftType = "Rest Day"
	ShiftHoliday  ShiftType = "Holiday"
)

var ShiftTypeValues = []string{
	string(ShiftRegular),
	string(ShiftNight),
	string(ShiftFlexible),
	string(ShiftSplit),
	string(ShiftOvertime),
	string(ShiftRestDay),
	string(ShiftHoliday),
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusModified  Status = "modified"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusConfirmed),
	string(StatusModified),
	string(StatusCancelled),
}

// Record is the persisted, authoritative per-day work-time assignment
// for one employee. At most one record exists per (employee, date).
// Records are soft-retired via Status, never hard-deleted here.
type Record struct {
	ID                   string
	EmployeeID           string
	Date                 time.Time
	ScheduleIn           string // "HH:MM", 24h
	ScheduleOut          string // "HH:MM", 24h
	IsRestDay            bool
	ShiftType            ShiftType
	BreakDurationMinutes int
	Location             string
	Notes                string
	CreatedBy            string
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate enforces the write-time invariants: strict "HH:MM" clocks,
// in != out unless the day is a rest day, a known shift type, and a
// non-negative break.
func (r Record) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employee ID is required"})
	}
	if r.Date.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	}
	if !validator.IsValidClock(r.ScheduleIn) {
		errs = append(errs, validator.ValidationError{Field: "scheduleIn", Message: "must be a 24h HH:MM time"})
	}
	if !validator.IsValidClock(r.ScheduleOut) {
		errs = append(errs, validator.ValidationError{Field: "scheduleOut", Message: "must be a 24h HH:MM time"})
	}
	if !r.IsRestDay && r.ScheduleIn == r.ScheduleOut && validator.IsValidClock(r.ScheduleIn) {
		errs = append(errs, validator.ValidationError{Field: "scheduleOut", Message: "schedule in and out must differ on a working day"})
	}
	if !validator.IsInSlice(string(r.ShiftType), ShiftTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "shiftType", Message: "unknown shift type"})
	}
	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "breakDurationMinutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
