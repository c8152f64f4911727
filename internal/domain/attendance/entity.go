package attendance

import "time"

// Attendance statuses recognized by the aggregator. Anything else is
// ignored, not an error; upstream producers are not consistent.
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
	StatusOnLeave = "on_leave"
)

// LeaveTypeValues are the leave buckets tallied per period: vacation,
// sick, leave without pay, bereavement, offset, calamity.
var LeaveTypeValues = []string{"VL", "SL", "LWOP", "BL", "OS", "CL"}

// Record is a read-only attendance row consumed by the aggregator.
// CheckIn and CheckOut hold whatever the producer wrote: a 24h clock,
// a 12h AM/PM clock, a full timestamp, or a "-" placeholder. They are
// normalized by timeutil.ParseToMinutes, never interpreted directly.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *string
	CheckOut   *string
	Status     string
	LeaveType  *string
}
