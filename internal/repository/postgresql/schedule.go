package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lakbayhr/hr-portal-go/internal/domain/schedule"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/database"
)

const uniqueViolation = "23505"

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleColumns = `
	id, employee_id, date, schedule_in, schedule_out, is_rest_day,
	shift_type, break_duration_minutes, location, notes, created_by,
	status, created_at, updated_at
`

func scanScheduleRecord(row pgx.Row) (schedule.Record, error) {
	var rec schedule.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.ScheduleIn,
		&rec.ScheduleOut,
		&rec.IsRestDay,
		&rec.ShiftType,
		&rec.BreakDurationMinutes,
		&rec.Location,
		&rec.Notes,
		&rec.CreatedBy,
		&rec.Status,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// FindByEmployeeAndDate implements schedule.Repository.
func (r *scheduleRepositoryImpl) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (schedule.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM employee_schedules
		WHERE employee_id = $1 AND date = $2::date
	`

	rec, err := scanScheduleRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Record{}, schedule.ErrScheduleNotFound
		}
		return schedule.Record{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return rec, nil
}

// FindRange implements schedule.Repository.
func (r *scheduleRepositoryImpl) FindRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `
		FROM employee_schedules
		WHERE employee_id = $1 AND date BETWEEN $2::date AND $3::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var records []schedule.Record
	for rows.Next() {
		rec, err := scanScheduleRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Insert implements schedule.Repository. A second record for the same
// (employee, date) trips the unique constraint and maps to
// ErrDuplicateSchedule.
func (r *scheduleRepositoryImpl) Insert(ctx context.Context, record schedule.Record) (schedule.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_schedules (
			id, employee_id, date, schedule_in, schedule_out, is_rest_day,
			shift_type, break_duration_minutes, location, notes, created_by,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.ScheduleIn, record.ScheduleOut,
		record.IsRestDay, record.ShiftType, record.BreakDurationMinutes, record.Location,
		record.Notes, record.CreatedBy, record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return schedule.Record{}, schedule.ErrDuplicateSchedule
		}
		return schedule.Record{}, fmt.Errorf("failed to insert schedule: %w", err)
	}
	return record, nil
}

// Upsert implements schedule.Repository. Same-day writers resolve
// last-write-wins; there is no version token on the row.
func (r *scheduleRepositoryImpl) Upsert(ctx context.Context, record schedule.Record) (schedule.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_schedules (
			id, employee_id, date, schedule_in, schedule_out, is_rest_day,
			shift_type, break_duration_minutes, location, notes, created_by,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			schedule_in = EXCLUDED.schedule_in,
			schedule_out = EXCLUDED.schedule_out,
			is_rest_day = EXCLUDED.is_rest_day,
			shift_type = EXCLUDED.shift_type,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.ScheduleIn, record.ScheduleOut,
		record.IsRestDay, record.ShiftType, record.BreakDurationMinutes, record.Location,
		record.Notes, record.CreatedBy, record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return schedule.Record{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return record, nil
}

// InsertMissing implements schedule.Repository. All inserts go out in
// one batch round trip; ON CONFLICT DO NOTHING leaves pre-existing
// days untouched, which makes month generation idempotent.
func (r *scheduleRepositoryImpl) InsertMissing(ctx context.Context, records []schedule.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_schedules (
			id, employee_id, date, schedule_in, schedule_out, is_rest_day,
			shift_type, break_duration_minutes, location, notes, created_by,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, record := range records {
		batch.Queue(query,
			record.ID, record.EmployeeID, record.Date, record.ScheduleIn, record.ScheduleOut,
			record.IsRestDay, record.ShiftType, record.BreakDurationMinutes, record.Location,
			record.Notes, record.CreatedBy, record.Status,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range records {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert schedule batch: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
