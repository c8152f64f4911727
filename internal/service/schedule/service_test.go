package schedule

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/lakbayhr/hr-portal-go/internal/domain/schedule"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/holidays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduleRepo is an in-memory schedule.Repository keyed by
// (employee, date), mirroring the unique constraint of the real table.
type fakeScheduleRepo struct {
	records   map[string]schedule.Record
	upsertErr func(rec schedule.Record) error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{records: make(map[string]schedule.Record)}
}

func repoKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeScheduleRepo) FindByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (schedule.Record, error) {
	rec, ok := f.records[repoKey(employeeID, date)]
	if !ok {
		return schedule.Record{}, schedule.ErrScheduleNotFound
	}
	return rec, nil
}

func (f *fakeScheduleRepo) FindRange(_ context.Context, employeeID string, start, end time.Time) ([]schedule.Record, error) {
	var out []schedule.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeScheduleRepo) Insert(_ context.Context, rec schedule.Record) (schedule.Record, error) {
	key := repoKey(rec.EmployeeID, rec.Date)
	if _, exists := f.records[key]; exists {
		return schedule.Record{}, schedule.ErrDuplicateSchedule
	}
	f.records[key] = rec
	return rec, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, rec schedule.Record) (schedule.Record, error) {
	if f.upsertErr != nil {
		if err := f.upsertErr(rec); err != nil {
			return schedule.Record{}, err
		}
	}
	f.records[repoKey(rec.EmployeeID, rec.Date)] = rec
	return rec, nil
}

func (f *fakeScheduleRepo) InsertMissing(_ context.Context, recs []schedule.Record) (int, error) {
	inserted := 0
	for _, rec := range recs {
		key := repoKey(rec.EmployeeID, rec.Date)
		if _, exists := f.records[key]; exists {
			continue
		}
		f.records[key] = rec
		inserted++
	}
	return inserted, nil
}

func newTestService(t *testing.T, repo schedule.Repository) schedule.Service {
	t.Helper()
	provider, err := holidays.NewStaticProvider()
	require.NoError(t, err)
	return NewScheduleService(repo, provider)
}

func storedRecord(employeeID, date, in, out string) schedule.Record {
	d, _ := time.Parse("2006-01-02", date)
	return schedule.Record{
		ID:          "rec-" + date,
		EmployeeID:  employeeID,
		Date:        d,
		ScheduleIn:  in,
		ScheduleOut: out,
		ShiftType:   schedule.ShiftRegular,
		Status:      schedule.StatusConfirmed,
	}
}

// ===== BUILD MONTH =====

func TestBuildMonth_CoversEveryDayAscending(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	result, err := svc.BuildMonth(context.Background(), "emp-1", 2025, 2)
	require.NoError(t, err)

	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, 2, result.Month)
	require.Len(t, result.Schedules, 28)
	assert.Equal(t, 28, result.Summary.TotalDays)

	seen := make(map[string]bool)
	prev := ""
	for _, day := range result.Schedules {
		assert.False(t, seen[day.Date], "duplicate date %s", day.Date)
		seen[day.Date] = true
		assert.Greater(t, day.Date, prev)
		prev = day.Date
	}
}

func TestBuildMonth_LeapFebruary(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	result, err := svc.BuildMonth(context.Background(), "emp-1", 2024, 2)
	require.NoError(t, err)
	assert.Len(t, result.Schedules, 29)
}

func TestBuildMonth_WeekendDefault(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	result, err := svc.BuildMonth(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)

	// 2025-03-08 is a Saturday with no stored record
	day := result.Schedules[7]
	assert.Equal(t, "2025-03-08", day.Date)
	assert.Equal(t, "Saturday", day.Day)
	assert.True(t, day.IsWeekend)
	assert.True(t, day.IsRestDay)
	assert.Equal(t, "Rest Day", day.ShiftType)
	assert.Equal(t, "00:00", day.ScheduleIn)
	assert.Equal(t, "00:00", day.ScheduleOut)
}

func TestBuildMonth_HolidayDefault(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	result, err := svc.BuildMonth(context.Background(), "emp-1", 2025, 1)
	require.NoError(t, err)

	// New Year's Day, a Wednesday, no stored record
	day := result.Schedules[0]
	assert.Equal(t, "2025-01-01", day.Date)
	assert.True(t, day.IsRestDay)
	assert.Equal(t, "Holiday", day.ShiftType)
	require.NotNil(t, day.Holiday)
	assert.Equal(t, "New Year's Day", day.Holiday.Name)
	assert.Equal(t, "Regular", day.Holiday.Type)
}

func TestBuildMonth_WorkingDayDefault(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	result, err := svc.BuildMonth(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)

	// 2025-03-10 is a plain Monday
	day := result.Schedules[9]
	assert.Equal(t, "2025-03-10", day.Date)
	assert.False(t, day.IsRestDay)
	assert.Equal(t, "Regular", day.ShiftType)
	assert.Equal(t, "08:00", day.ScheduleIn)
	assert.Equal(t, "17:00", day.ScheduleOut)
	assert.Nil(t, day.Holiday)
}

func TestBuildMonth_StoredRecordIsAuthoritative(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	rec := storedRecord("emp-1", "2025-01-01", "22:00", "06:00")
	rec.ShiftType = schedule.ShiftNight
	repo.records[repoKey(rec.EmployeeID, rec.Date)] = rec
	svc := newTestService(t, repo)

	result, err := svc.BuildMonth(context.Background(), "emp-1", 2025, 1)
	require.NoError(t, err)

	// The record wins over the holiday default, but the holiday
	// annotation is still attached.
	day := result.Schedules[0]
	assert.Equal(t, "22:00", day.ScheduleIn)
	assert.Equal(t, "06:00", day.ScheduleOut)
	assert.False(t, day.IsRestDay)
	assert.Equal(t, "Night", day.ShiftType)
	require.NotNil(t, day.Holiday)
	assert.Equal(t, "New Year's Day", day.Holiday.Name)
}

func TestBuildMonth_SummaryCounts(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	result, err := svc.BuildMonth(context.Background(), "emp-1", 2025, 1)
	require.NoError(t, err)

	// January 2025: 31 days, 8 weekend days, New Year's Day (Wed) and
	// Chinese New Year (Wed, special) in the table.
	assert.Equal(t, 31, result.Summary.TotalDays)
	assert.Equal(t, 8, result.Summary.Weekends)
	assert.Equal(t, 2, result.Summary.Holidays)
	assert.Equal(t, 10, result.Summary.RestDays)
	assert.Equal(t, 21, result.Summary.WorkDays)
}

func TestBuildMonth_InvalidMonth(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeScheduleRepo())

	for _, month := range []int{0, 13, -1} {
		_, err := svc.BuildMonth(context.Background(), "emp-1", 2025, month)
		assert.ErrorIs(t, err, schedule.ErrInvalidMonth, "month %d", month)
	}
}

func TestBuildMonth_RequiresEmployee(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeScheduleRepo())

	_, err := svc.BuildMonth(context.Background(), "", 2025, 1)
	assert.ErrorIs(t, err, schedule.ErrEmployeeIDRequired)
}

// ===== GET BY DATE =====

func TestGetByDate_NotFoundWhileBuildMonthSynthesizes(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	// Exact-date lookup misses...
	_, err := svc.GetByDate(context.Background(), "emp-1", "2025-03-10")
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)

	// ...while the month view covering the same date synthesizes.
	result, err := svc.BuildMonth(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", result.Schedules[9].Date)
	assert.Equal(t, "08:00", result.Schedules[9].ScheduleIn)
}

func TestGetByDate_ReturnsStoredRecordWithAnnotations(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	rec := storedRecord("emp-1", "2025-01-01", "09:00", "18:00")
	repo.records[repoKey(rec.EmployeeID, rec.Date)] = rec
	svc := newTestService(t, repo)

	day, err := svc.GetByDate(context.Background(), "emp-1", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, "09:00", day.ScheduleIn)
	assert.False(t, day.IsWeekend)
	require.NotNil(t, day.Holiday)
	assert.Equal(t, "New Year's Day", day.Holiday.Name)
}

func TestGetByDate_BadDate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeScheduleRepo())

	_, err := svc.GetByDate(context.Background(), "emp-1", "03/10/2025")
	assert.ErrorIs(t, err, schedule.ErrInvalidDateFormat)
}

// ===== GET RANGE =====

func TestGetRange_PersistedOnly(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	for _, date := range []string{"2025-03-10", "2025-03-12"} {
		rec := storedRecord("emp-1", date, "08:00", "17:00")
		repo.records[repoKey(rec.EmployeeID, rec.Date)] = rec
	}
	svc := newTestService(t, repo)

	result, err := svc.GetRange(context.Background(), "emp-1", "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	// No synthesis: only the two stored records come back.
	require.Len(t, result.Schedules, 2)
	assert.Equal(t, 2, result.Summary.TotalDays)
	assert.Equal(t, 2, result.Summary.WorkDays)
}

func TestGetRange_InvertedBounds(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeScheduleRepo())

	_, err := svc.GetRange(context.Background(), "emp-1", "2025-03-31", "2025-03-01")
	assert.ErrorIs(t, err, schedule.ErrInvalidDateRange)
}

func TestGetRange_MissingBounds(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeScheduleRepo())

	_, err := svc.GetRange(context.Background(), "emp-1", "", "2025-03-31")
	assert.ErrorIs(t, err, schedule.ErrMissingDateRange)
}

// ===== CREATE =====

func TestCreate_DuplicateDateFails(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	req := schedule.CreateScheduleRequest{
		EmployeeID:  "emp-1",
		Date:        "2025-03-10",
		ScheduleIn:  "08:00",
		ScheduleOut: "17:00",
		ShiftType:   "Regular",
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, schedule.ErrDuplicateSchedule)
}

func TestCreate_RejectsEqualInOut(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeScheduleRepo())

	_, err := svc.Create(context.Background(), schedule.CreateScheduleRequest{
		EmployeeID:  "emp-1",
		Date:        "2025-03-10",
		ScheduleIn:  "09:00",
		ScheduleOut: "09:00",
		ShiftType:   "Regular",
	})
	assert.Error(t, err)
}

// ===== GENERATE MONTH =====

func TestGenerateMonth_Idempotent(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	req := schedule.GenerateMonthRequest{EmployeeID: "emp-1", Year: 2025, Month: 3}

	first, err := svc.GenerateMonth(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 31, first.Inserted)

	second, err := svc.GenerateMonth(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
}

func TestGenerateMonth_SkipsExistingDays(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	existing := storedRecord("emp-1", "2025-03-10", "10:00", "19:00")
	repo.records[repoKey(existing.EmployeeID, existing.Date)] = existing
	svc := newTestService(t, repo)

	result, err := svc.GenerateMonth(context.Background(), schedule.GenerateMonthRequest{
		EmployeeID: "emp-1", Year: 2025, Month: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, result.Inserted)

	// The pre-existing day is untouched.
	kept := repo.records[repoKey("emp-1", existing.Date)]
	assert.Equal(t, "10:00", kept.ScheduleIn)
}

func TestGenerateMonth_WeekendOnlyDefaults(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	// January 2025 contains New Year's Day on a Wednesday. Generation
	// keys only on the weekday, so the holiday gets a working-day row;
	// the read path still defaults and annotates holidays.
	_, err := svc.GenerateMonth(context.Background(), schedule.GenerateMonthRequest{
		EmployeeID: "emp-1", Year: 2025, Month: 1,
	})
	require.NoError(t, err)

	newYear := repo.records[repoKey("emp-1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))]
	assert.False(t, newYear.IsRestDay)
	assert.Equal(t, schedule.ShiftRegular, newYear.ShiftType)

	saturday := repo.records[repoKey("emp-1", time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC))]
	assert.True(t, saturday.IsRestDay)
	assert.Equal(t, schedule.ShiftRestDay, saturday.ShiftType)
	assert.Equal(t, "00:00", saturday.ScheduleIn)
}

func TestGenerateMonth_CustomTemplate(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	_, err := svc.GenerateMonth(context.Background(), schedule.GenerateMonthRequest{
		EmployeeID: "emp-1",
		Year:       2025,
		Month:      3,
		Template: &schedule.DefaultTemplate{
			ScheduleIn:           "22:00",
			ScheduleOut:          "06:00",
			ShiftType:            "Night",
			BreakDurationMinutes: 30,
		},
	})
	require.NoError(t, err)

	monday := repo.records[repoKey("emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))]
	assert.Equal(t, "22:00", monday.ScheduleIn)
	assert.Equal(t, schedule.ShiftNight, monday.ShiftType)
	assert.Equal(t, 30, monday.BreakDurationMinutes)
}

// ===== BULK UPDATE =====

func TestBulkUpdate_AppliesAllItems(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	req := schedule.BulkUpdateRequest{Updates: []schedule.ScheduleUpdate{
		{EmployeeID: "emp-1", Date: "2025-03-10", ScheduleIn: "09:00", ScheduleOut: "18:00", ShiftType: "Regular"},
		{EmployeeID: "emp-1", Date: "2025-03-11", ScheduleIn: "00:00", ScheduleOut: "00:00", IsRestDay: true, ShiftType: "Rest Day"},
	}}

	result, err := svc.BulkUpdate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, repo.records, 2)
}

func TestBulkUpdate_OneFailureDoesNotBlockOthers(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	storeDown := errors.New("connection reset")
	repo.upsertErr = func(rec schedule.Record) error {
		if rec.Date.Day() == 11 {
			return storeDown
		}
		return nil
	}
	svc := newTestService(t, repo)

	req := schedule.BulkUpdateRequest{Updates: []schedule.ScheduleUpdate{
		{EmployeeID: "emp-1", Date: "2025-03-10", ScheduleIn: "09:00", ScheduleOut: "18:00", ShiftType: "Regular"},
		{EmployeeID: "emp-1", Date: "2025-03-11", ScheduleIn: "09:00", ScheduleOut: "18:00", ShiftType: "Regular"},
		{EmployeeID: "emp-1", Date: "2025-03-12", ScheduleIn: "09:00", ScheduleOut: "18:00", ShiftType: "Regular"},
	}}

	result, err := svc.BulkUpdate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].Success)
	assert.False(t, result.Results[1].Success)
	assert.Equal(t, storeDown.Error(), result.Results[1].Error)
	assert.True(t, result.Results[2].Success)
}

func TestBulkUpdate_InvalidItemReported(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	req := schedule.BulkUpdateRequest{Updates: []schedule.ScheduleUpdate{
		{EmployeeID: "emp-1", Date: "2025-03-10", ScheduleIn: "9am", ScheduleOut: "18:00", ShiftType: "Regular"},
		{EmployeeID: "emp-1", Date: "2025-03-11", ScheduleIn: "09:00", ScheduleOut: "18:00", ShiftType: "Regular"},
	}}

	result, err := svc.BulkUpdate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Results[0].Success)
	assert.Len(t, repo.records, 1)
}

func TestBulkUpdate_ReapplyingIsNoOp(t *testing.T) {
	t.Parallel()
	repo := newFakeScheduleRepo()
	svc := newTestService(t, repo)

	req := schedule.BulkUpdateRequest{Updates: []schedule.ScheduleUpdate{
		{EmployeeID: "emp-1", Date: "2025-03-10", ScheduleIn: "09:00", ScheduleOut: "18:00", ShiftType: "Regular"},
	}}

	_, err := svc.BulkUpdate(context.Background(), req)
	require.NoError(t, err)
	first := repo.records[repoKey("emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))]

	result, err := svc.BulkUpdate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)

	second := repo.records[repoKey("emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))]
	assert.Equal(t, first.ScheduleIn, second.ScheduleIn)
	assert.Equal(t, first.ScheduleOut, second.ScheduleOut)
	assert.Equal(t, first.IsRestDay, second.IsRestDay)
	assert.Equal(t, first.ShiftType, second.ShiftType)
}
