package attendance

import "context"

type Service interface {
	// PeriodReport loads the employee's attendance rows for the range
	// and summarizes them against scheduled start times.
	PeriodReport(ctx context.Context, employeeID, startDate, endDate string) (PeriodSummary, error)
}
