package attendance

import (
	"context"
	"time"
)

// Repository reads attendance rows written by the attendance capture
// system. This engine never writes them.
type Repository interface {
	// FindRange returns records for [start, end] inclusive, ascending
	// by date.
	FindRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)
}
