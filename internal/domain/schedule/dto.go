package schedule

// HolidayInfo annotates a day with its holiday name and type.
type HolidayInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DaySchedule is the computed, never-persisted view of one day: the
// stored record when one exists, calendar annotations always.
type DaySchedule struct {
	Date        string       `json:"date"`
	Day         string       `json:"day"`
	ScheduleIn  string       `json:"scheduleIn"`
	ScheduleOut string       `json:"scheduleOut"`
	IsRestDay   bool         `json:"isRestDay"`
	ShiftType   string       `json:"shiftType"`
	IsWeekend   bool         `json:"isWeekend"`
	Holiday     *HolidayInfo `json:"holiday"`
}

// Summary aggregates a sequence of day schedules.
type Summary struct {
	TotalDays int `json:"totalDays"`
	WorkDays  int `json:"workDays"`
	RestDays  int `json:"restDays"`
	Holidays  int `json:"holidays"`
	Weekends  int `json:"weekends"`
}

type MonthScheduleResponse struct {
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	Schedules []DaySchedule `json:"schedules"`
	Summary   Summary       `json:"summary"`
}

type RangeScheduleResponse struct {
	Schedules []DaySchedule `json:"schedules"`
	Summary   Summary       `json:"summary"`
}

// CreateScheduleRequest is the single-record admin assignment path.
type CreateScheduleRequest struct {
	EmployeeID           string `json:"employeeId"`
	Date                 string `json:"date"`
	ScheduleIn           string `json:"scheduleIn"`
	ScheduleOut          string `json:"scheduleOut"`
	IsRestDay            bool   `json:"isRestDay"`
	ShiftType            string `json:"shiftType"`
	BreakDurationMinutes int    `json:"breakDurationMinutes"`
	Location             string `json:"location"`
	Notes                string `json:"notes"`
	CreatedBy            string `json:"-"`
}

// DefaultTemplate describes the working-day default used when
// generating a month of schedules.
type DefaultTemplate struct {
	ScheduleIn           string `json:"scheduleIn"`
	ScheduleOut          string `json:"scheduleOut"`
	ShiftType            string `json:"shiftType"`
	BreakDurationMinutes int    `json:"breakDurationMinutes"`
}

type GenerateMonthRequest struct {
	EmployeeID string           `json:"employeeId"`
	Year       int              `json:"year"`
	Month      int              `json:"month"`
	Template   *DefaultTemplate `json:"template"`
	CreatedBy  string           `json:"-"`
}

type GenerateMonthResponse struct {
	Inserted int `json:"inserted"`
}

// ScheduleUpdate is one item of a bulk upsert, keyed by employee+date.
type ScheduleUpdate struct {
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"`
	ScheduleIn  string `json:"scheduleIn"`
	ScheduleOut string `json:"scheduleOut"`
	IsRestDay   bool   `json:"isRestDay"`
	ShiftType   string `json:"shiftType"`
}

type BulkUpdateRequest struct {
	Updates   []ScheduleUpdate `json:"updates"`
	CreatedBy string           `json:"-"`
}

// UpdateOutcome reports one bulk item; failures carry the message and
// never abort the rest of the batch.
type UpdateOutcome struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type BulkUpdateResponse struct {
	Applied int             `json:"applied"`
	Failed  int             `json:"failed"`
	Results []UpdateOutcome `json:"results"`
}
