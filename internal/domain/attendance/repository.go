package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// One row exists per (employee_name, date) pair; the table enforces this with
// a unique index so a racing insert fails instead of duplicating the row.
type AttendanceRepository interface {
	// GetByEmployeeAndDate retrieves the record for an employee on a specific
	// date. Returns nil, nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeName string, date time.Time) (*AttendanceRecord, error)

	// Insert creates a new record with the given field populated and the
	// other left NULL. Returns ErrDuplicateRecord when a row for the pair
	// already exists.
	Insert(ctx context.Context, employeeName string, date time.Time, field Field, timeValue string) (int64, error)

	// UpdateField sets exactly one field on an existing row by primary key.
	// Returns ErrRecordNotFound when the row does not exist.
	UpdateField(ctx context.Context, id int64, field Field, timeValue string) error

	// QueryRange retrieves records with date between startDate and endDate
	// inclusive, ordered by date descending then employee name ascending.
	// An empty range yields an empty slice, not an error.
	QueryRange(ctx context.Context, startDate, endDate time.Time) ([]AttendanceRecord, error)
}
