package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/lakbayhr/hr-portal-go/internal/domain/attendance"
	"github.com/lakbayhr/hr-portal-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// FindRange implements attendance.Repository. Check times come back
// as the raw text the capture system wrote; normalization happens in
// timeutil at the aggregation layer.
func (r *attendanceRepositoryImpl) FindRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, status, leave_type
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2::date AND $3::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.EmployeeID,
			&rec.Date,
			&rec.CheckIn,
			&rec.CheckOut,
			&rec.Status,
			&rec.LeaveType,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
