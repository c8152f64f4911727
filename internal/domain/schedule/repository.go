package schedule

import (
	"context"
	"time"
)

// Repository defines data access for schedule records. Every write
// runs the Record invariants first; the (employee_id, date) unique
// constraint backs them at the storage level.
type Repository interface {
	// FindByEmployeeAndDate returns the record for one employee-day,
	// or ErrScheduleNotFound.
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// FindRange returns records for [start, end] inclusive, ascending
	// by date. An empty range is not an error.
	FindRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// Insert creates a new record; a second record for the same
	// (employee, date) fails with ErrDuplicateSchedule.
	Insert(ctx context.Context, record Record) (Record, error)

	// Upsert inserts the record or, when the (employee, date) row
	// exists, overwrites its schedule fields last-write-wins.
	Upsert(ctx context.Context, record Record) (Record, error)

	// InsertMissing stages the records in one batch, skipping days
	// that already have a row, and returns how many were inserted.
	InsertMissing(ctx context.Context, records []Record) (int, error)
}
