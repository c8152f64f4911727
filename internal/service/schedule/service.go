// Package schedule implements the reconciliation engine: it merges
// the authoritative per-day schedule store with computed calendar
// defaults (weekends, holidays) into complete day sequences, and the
// idempotent bulk write paths that populate the store.
package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lakbayhr/hr-portal-go/internal/domain/calendar"
	"github.com/lakbayhr/hr-portal-go/internal/domain/schedule"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/timeutil"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/validator"
)

// Working-day defaults synthesized on the read path and used as the
// generation template when the caller supplies none.
const (
	defaultScheduleIn   = "08:00"
	defaultScheduleOut  = "17:00"
	defaultBreakMinutes = 60
	restDayClock        = "00:00"
)

type serviceImpl struct {
	repo     schedule.Repository
	holidays calendar.Provider
}

func NewScheduleService(repo schedule.Repository, holidays calendar.Provider) schedule.Service {
	return &serviceImpl{
		repo:     repo,
		holidays: holidays,
	}
}

// BuildMonth implements schedule.Service. It returns exactly one
// entry per day of the month, ascending: the stored record where one
// exists, a synthesized calendar default otherwise. Holiday and
// weekend annotations are recomputed for every day regardless of
// which source supplied the times.
func (s *serviceImpl) BuildMonth(ctx context.Context, employeeID string, year, month int) (schedule.MonthScheduleResponse, error) {
	if validator.IsEmpty(employeeID) {
		return schedule.MonthScheduleResponse{}, schedule.ErrEmployeeIDRequired
	}
	if month < 1 || month > 12 {
		return schedule.MonthScheduleResponse{}, schedule.ErrInvalidMonth
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	records, err := s.repo.FindRange(ctx, employeeID, start, end)
	if err != nil {
		return schedule.MonthScheduleResponse{}, err
	}
	byDate := indexByDate(records)

	days := make([]schedule.DaySchedule, 0, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		rec, hasRecord := byDate[key]

		var day schedule.DaySchedule
		if hasRecord {
			day = s.dayFromRecord(rec)
		} else {
			day = s.defaultDay(d)
		}
		s.annotate(&day, d)
		days = append(days, day)
	}

	return schedule.MonthScheduleResponse{
		Year:      year,
		Month:     month,
		Schedules: days,
		Summary:   summarize(days),
	}, nil
}

// GetByDate implements schedule.Service. Unlike BuildMonth it never
// synthesizes a default: a date with no stored record is a miss.
func (s *serviceImpl) GetByDate(ctx context.Context, employeeID, dateStr string) (schedule.DaySchedule, error) {
	if validator.IsEmpty(employeeID) {
		return schedule.DaySchedule{}, schedule.ErrEmployeeIDRequired
	}
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		return schedule.DaySchedule{}, schedule.ErrInvalidDateFormat
	}

	rec, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return schedule.DaySchedule{}, err
	}

	day := s.dayFromRecord(rec)
	s.annotate(&day, date)
	return day, nil
}

// GetRange implements schedule.Service. Persisted records only; the
// summary covers just those records, not the calendar span.
func (s *serviceImpl) GetRange(ctx context.Context, employeeID, startStr, endStr string) (schedule.RangeScheduleResponse, error) {
	if validator.IsEmpty(employeeID) {
		return schedule.RangeScheduleResponse{}, schedule.ErrEmployeeIDRequired
	}
	if validator.IsEmpty(startStr) || validator.IsEmpty(endStr) {
		return schedule.RangeScheduleResponse{}, schedule.ErrMissingDateRange
	}
	start, ok := validator.IsValidDate(startStr)
	if !ok {
		return schedule.RangeScheduleResponse{}, schedule.ErrInvalidDateFormat
	}
	end, ok := validator.IsValidDate(endStr)
	if !ok {
		return schedule.RangeScheduleResponse{}, schedule.ErrInvalidDateFormat
	}
	if start.After(end) {
		return schedule.RangeScheduleResponse{}, schedule.ErrInvalidDateRange
	}

	records, err := s.repo.FindRange(ctx, employeeID, start, end)
	if err != nil {
		return schedule.RangeScheduleResponse{}, err
	}

	days := make([]schedule.DaySchedule, 0, len(records))
	for _, rec := range records {
		day := s.dayFromRecord(rec)
		s.annotate(&day, rec.Date)
		days = append(days, day)
	}

	return schedule.RangeScheduleResponse{
		Schedules: days,
		Summary:   summarize(days),
	}, nil
}

// Create implements schedule.Service: the single-record admin
// assignment path.
func (s *serviceImpl) Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.DaySchedule, error) {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return schedule.DaySchedule{}, schedule.ErrInvalidDateFormat
	}

	rec := schedule.Record{
		ID:                   uuid.NewString(),
		EmployeeID:           req.EmployeeID,
		Date:                 date,
		ScheduleIn:           req.ScheduleIn,
		ScheduleOut:          req.ScheduleOut,
		IsRestDay:            req.IsRestDay,
		ShiftType:            schedule.ShiftType(req.ShiftType),
		BreakDurationMinutes: req.BreakDurationMinutes,
		Location:             req.Location,
		Notes:                req.Notes,
		CreatedBy:            req.CreatedBy,
		Status:               schedule.StatusPending,
	}
	if rec.ShiftType == "" {
		rec.ShiftType = schedule.ShiftRegular
	}
	if err := rec.Validate(); err != nil {
		return schedule.DaySchedule{}, err
	}

	created, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return schedule.DaySchedule{}, err
	}

	day := s.dayFromRecord(created)
	s.annotate(&day, created.Date)
	return day, nil
}

// GenerateMonth implements schedule.Service. Defaults are keyed only
// on the weekday: weekends become rest days, everything else gets the
// template. Holidays are not consulted here; the read path still
// annotates and defaults them. Days that already have a record are
// left untouched, so a second call inserts nothing.
func (s *serviceImpl) GenerateMonth(ctx context.Context, req schedule.GenerateMonthRequest) (schedule.GenerateMonthResponse, error) {
	if validator.IsEmpty(req.EmployeeID) {
		return schedule.GenerateMonthResponse{}, schedule.ErrEmployeeIDRequired
	}
	if req.Month < 1 || req.Month > 12 {
		return schedule.GenerateMonthResponse{}, schedule.ErrInvalidMonth
	}

	tmpl := schedule.DefaultTemplate{
		ScheduleIn:           defaultScheduleIn,
		ScheduleOut:          defaultScheduleOut,
		ShiftType:            string(schedule.ShiftRegular),
		BreakDurationMinutes: defaultBreakMinutes,
	}
	if req.Template != nil {
		tmpl = *req.Template
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	candidates := make([]schedule.Record, 0, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rec := schedule.Record{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			Date:       d,
			CreatedBy:  req.CreatedBy,
			Status:     schedule.StatusPending,
		}
		if calendar.IsWeekend(d) {
			rec.ScheduleIn = restDayClock
			rec.ScheduleOut = restDayClock
			rec.IsRestDay = true
			rec.ShiftType = schedule.ShiftRestDay
		} else {
			rec.ScheduleIn = tmpl.ScheduleIn
			rec.ScheduleOut = tmpl.ScheduleOut
			rec.ShiftType = schedule.ShiftType(tmpl.ShiftType)
			rec.BreakDurationMinutes = tmpl.BreakDurationMinutes
		}
		if err := rec.Validate(); err != nil {
			return schedule.GenerateMonthResponse{}, err
		}
		candidates = append(candidates, rec)
	}

	inserted, err := s.repo.InsertMissing(ctx, candidates)
	if err != nil {
		return schedule.GenerateMonthResponse{}, err
	}
	return schedule.GenerateMonthResponse{Inserted: inserted}, nil
}

// BulkUpdate implements schedule.Service. Each (employee, date) item
// upserts independently: one bad item is reported in its outcome and
// the rest of the batch still applies. Reapplying an identical
// payload leaves the stored state unchanged.
func (s *serviceImpl) BulkUpdate(ctx context.Context, req schedule.BulkUpdateRequest) (schedule.BulkUpdateResponse, error) {
	resp := schedule.BulkUpdateResponse{
		Results: make([]schedule.UpdateOutcome, 0, len(req.Updates)),
	}

	for _, upd := range req.Updates {
		outcome := schedule.UpdateOutcome{EmployeeID: upd.EmployeeID, Date: upd.Date}

		if err := s.applyUpdate(ctx, upd, req.CreatedBy); err != nil {
			outcome.Error = err.Error()
			resp.Failed++
		} else {
			outcome.Success = true
			resp.Applied++
		}
		resp.Results = append(resp.Results, outcome)
	}

	return resp, nil
}

func (s *serviceImpl) applyUpdate(ctx context.Context, upd schedule.ScheduleUpdate, createdBy string) error {
	date, ok := validator.IsValidDate(upd.Date)
	if !ok {
		return schedule.ErrInvalidDateFormat
	}

	rec := schedule.Record{
		ID:          uuid.NewString(),
		EmployeeID:  upd.EmployeeID,
		Date:        date,
		ScheduleIn:  upd.ScheduleIn,
		ScheduleOut: upd.ScheduleOut,
		IsRestDay:   upd.IsRestDay,
		ShiftType:   schedule.ShiftType(upd.ShiftType),
		CreatedBy:   createdBy,
		Status:      schedule.StatusModified,
	}
	if rec.ShiftType == "" {
		rec.ShiftType = schedule.ShiftRegular
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	_, err := s.repo.Upsert(ctx, rec)
	return err
}

// dayFromRecord maps a stored record into the computed day view. The
// record is authoritative for times, rest-day flag and shift type;
// stored clock values are normalized down to "HH:MM" in case a
// producer persisted a wider timestamp shape.
func (s *serviceImpl) dayFromRecord(rec schedule.Record) schedule.DaySchedule {
	return schedule.DaySchedule{
		Date:        rec.Date.Format("2006-01-02"),
		Day:         rec.Date.Weekday().String(),
		ScheduleIn:  normalizeClock(rec.ScheduleIn),
		ScheduleOut: normalizeClock(rec.ScheduleOut),
		IsRestDay:   rec.IsRestDay,
		ShiftType:   string(rec.ShiftType),
		IsWeekend:   calendar.IsWeekend(rec.Date),
	}
}

// defaultDay synthesizes the calendar default for a day with no
// stored record: holidays and weekends rest, everything else works
// the standard 08:00-17:00 shift.
func (s *serviceImpl) defaultDay(date time.Time) schedule.DaySchedule {
	day := schedule.DaySchedule{
		Date:      date.Format("2006-01-02"),
		Day:       date.Weekday().String(),
		IsWeekend: calendar.IsWeekend(date),
	}

	switch calendar.Classify(date, s.holidays) {
	case calendar.DayHoliday:
		day.ScheduleIn = restDayClock
		day.ScheduleOut = restDayClock
		day.IsRestDay = true
		day.ShiftType = string(schedule.ShiftHoliday)
	case calendar.DayWeekend:
		day.ScheduleIn = restDayClock
		day.ScheduleOut = restDayClock
		day.IsRestDay = true
		day.ShiftType = string(schedule.ShiftRestDay)
	default:
		day.ScheduleIn = defaultScheduleIn
		day.ScheduleOut = defaultScheduleOut
		day.ShiftType = string(schedule.ShiftRegular)
	}
	return day
}

// annotate attaches the holiday annotation whenever the lookup
// succeeds, independent of whether the day came from a record or a
// synthesized default.
func (s *serviceImpl) annotate(day *schedule.DaySchedule, date time.Time) {
	if s.holidays == nil {
		return
	}
	if entry, ok := s.holidays.Lookup(date); ok {
		day.Holiday = &schedule.HolidayInfo{
			Name: entry.Name,
			Type: string(entry.Type),
		}
	}
}

func normalizeClock(value string) string {
	if minutes := timeutil.ParseToMinutes(value); minutes != nil {
		return timeutil.FormatHHMM(*minutes)
	}
	return value
}

func indexByDate(records []schedule.Record) map[string]schedule.Record {
	byDate := make(map[string]schedule.Record, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}
	return byDate
}

func summarize(days []schedule.DaySchedule) schedule.Summary {
	summary := schedule.Summary{TotalDays: len(days)}
	for _, day := range days {
		if day.IsRestDay {
			summary.RestDays++
		} else {
			summary.WorkDays++
		}
		if day.Holiday != nil {
			summary.Holidays++
		}
		if day.IsWeekend {
			summary.Weekends++
		}
	}
	return summary
}
