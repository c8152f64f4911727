package attendance

// PeriodSummary aggregates attendance over a date range. TotalLate is
// TotalMinutesLate rendered as "{h}h {m}m" for display.
type PeriodSummary struct {
	TotalMinutesLate int            `json:"totalMinutesLate"`
	TotalLate        string         `json:"totalLate"`
	LateCount        int            `json:"lateCount"`
	AbsentCount      int            `json:"absentCount"`
	LeaveTypeCounts  map[string]int `json:"leaveTypeCounts"`
}
