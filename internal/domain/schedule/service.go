package schedule

import "context"

type Service interface {
	// Read path. BuildMonth reconciles stored records with calendar
	// defaults into a complete day sequence; GetByDate and GetRange
	// return persisted records only, with no default synthesis.
	BuildMonth(ctx context.Context, employeeID string, year, month int) (MonthScheduleResponse, error)
	GetByDate(ctx context.Context, employeeID, date string) (DaySchedule, error)
	GetRange(ctx context.Context, employeeID, startDate, endDate string) (RangeScheduleResponse, error)

	// Write path.
	Create(ctx context.Context, req CreateScheduleRequest) (DaySchedule, error)
	GenerateMonth(ctx context.Context, req GenerateMonthRequest) (GenerateMonthResponse, error)
	BulkUpdate(ctx context.Context, req BulkUpdateRequest) (BulkUpdateResponse, error)
}
