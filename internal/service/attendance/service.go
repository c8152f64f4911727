// Package attendance aggregates attendance rows against scheduled
// start times into period statistics: tardiness totals, absences and
// per-type leave counts.
package attendance

import (
	"context"

	"github.com/lakbayhr/hr-portal-go/internal/domain/attendance"
	"github.com/lakbayhr/hr-portal-go/internal/domain/schedule"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/timeutil"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/validator"
)

type serviceImpl struct {
	attendanceRepo attendance.Repository
	scheduleRepo   schedule.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, scheduleRepo schedule.Repository) attendance.Service {
	return &serviceImpl{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
	}
}

// PeriodReport implements attendance.Service. Scheduled start times
// come from persisted schedule records only; days without one are
// skipped by the tardiness math, matching the range read path.
func (s *serviceImpl) PeriodReport(ctx context.Context, employeeID, startStr, endStr string) (attendance.PeriodSummary, error) {
	if validator.IsEmpty(startStr) || validator.IsEmpty(endStr) {
		return attendance.PeriodSummary{}, attendance.ErrMissingDateRange
	}
	start, ok := validator.IsValidDate(startStr)
	if !ok {
		return attendance.PeriodSummary{}, attendance.ErrInvalidDateFormat
	}
	end, ok := validator.IsValidDate(endStr)
	if !ok {
		return attendance.PeriodSummary{}, attendance.ErrInvalidDateFormat
	}
	if start.After(end) {
		return attendance.PeriodSummary{}, attendance.ErrInvalidDateRange
	}

	records, err := s.attendanceRepo.FindRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.PeriodSummary{}, err
	}

	schedules, err := s.scheduleRepo.FindRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.PeriodSummary{}, err
	}

	scheduledIn := make(map[string]*int, len(schedules))
	for _, rec := range schedules {
		scheduledIn[rec.Date.Format("2006-01-02")] = timeutil.ParseToMinutes(rec.ScheduleIn)
	}

	return Summarize(records, func(date string) *int {
		return scheduledIn[date]
	}), nil
}

// Summarize folds attendance records into a period summary. Statuses
// outside the recognized set are ignored, not errors; malformed check
// times degrade to nil through timeutil and their record is skipped
// by the tardiness accumulation.
func Summarize(records []attendance.Record, scheduledInLookup func(date string) *int) attendance.PeriodSummary {
	summary := attendance.PeriodSummary{
		LeaveTypeCounts: make(map[string]int),
	}

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusLate:
			actual := timeutil.ParseToMinutes(rec.CheckIn)
			if actual == nil {
				continue
			}
			scheduled := scheduledInLookup(rec.Date.Format("2006-01-02"))
			if scheduled == nil {
				continue
			}
			summary.TotalMinutesLate += timeutil.Tardiness(*actual, *scheduled)
			summary.LateCount++
		case attendance.StatusAbsent:
			summary.AbsentCount++
		case attendance.StatusLeave, attendance.StatusOnLeave:
			if rec.LeaveType != nil && validator.IsInSlice(*rec.LeaveType, attendance.LeaveTypeValues) {
				summary.LeaveTypeCounts[*rec.LeaveType]++
			}
		}
	}

	summary.TotalLate = timeutil.FormatMinutes(summary.TotalMinutesLate)
	return summary
}
