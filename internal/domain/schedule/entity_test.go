package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/lakbayhr/hr-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	return Record{
		ID:          "rec-1",
		EmployeeID:  "emp-1",
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ScheduleIn:  "08:00",
		ScheduleOut: "17:00",
		ShiftType:   ShiftRegular,
		Status:      StatusConfirmed,
	}
}

func TestRecordValidate_OK(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validRecord().Validate())
}

func TestRecordValidate_BadClockFormat(t *testing.T) {
	t.Parallel()

	tests := []string{"8:00", "08:60", "24:00", "0800", "08:00 AM", "-"}
	for _, in := range tests {
		rec := validRecord()
		rec.ScheduleIn = in

		err := rec.Validate()
		require.Error(t, err, "scheduleIn %q", in)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "scheduleIn")
	}
}

func TestRecordValidate_EqualInOutOnWorkingDay(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.ScheduleIn = "09:00"
	rec.ScheduleOut = "09:00"

	err := rec.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "scheduleOut")
}

func TestRecordValidate_EqualInOutAllowedOnRestDay(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.ScheduleIn = "00:00"
	rec.ScheduleOut = "00:00"
	rec.IsRestDay = true
	rec.ShiftType = ShiftRestDay

	assert.NoError(t, rec.Validate())
}

func TestRecordValidate_UnknownShiftType(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.ShiftType = "Graveyard"

	err := rec.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "shiftType")
}

func TestRecordValidate_NegativeBreak(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.BreakDurationMinutes = -15

	assert.Error(t, rec.Validate())
}

func TestRecordValidate_MissingEmployee(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.EmployeeID = "  "

	err := rec.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "employeeId")
}
