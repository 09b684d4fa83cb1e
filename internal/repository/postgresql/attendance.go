package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Suhaibk137/attendance-app/internal/domain/attendance"
	"github.com/Suhaibk137/attendance-app/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// Fixed statements per writable field. Which column a write touches is
// decided by this closed mapping, never by interpolating caller input into
// the query text.
const (
	insertCheckInQuery = `
		INSERT INTO attendance_records (employee_name, date, check_in)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	insertCheckOutQuery = `
		INSERT INTO attendance_records (employee_name, date, check_out)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	updateCheckInQuery = `
		UPDATE attendance_records
		SET check_in = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`
	updateCheckOutQuery = `
		UPDATE attendance_records
		SET check_out = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeName string, date time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_name, date, check_in, check_out, created_at, updated_at
		FROM attendance_records
		WHERE employee_name = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeName, date).Scan(
		&rec.ID, &rec.EmployeeName, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing record found
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// Insert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Insert(ctx context.Context, employeeName string, date time.Time, field attendance.Field, timeValue string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var query string
	switch field {
	case attendance.FieldCheckIn:
		query = insertCheckInQuery
	case attendance.FieldCheckOut:
		query = insertCheckOutQuery
	default:
		return 0, fmt.Errorf("unknown attendance field: %q", field)
	}

	var id int64
	if err := q.QueryRow(ctx, query, employeeName, date, timeValue).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, attendance.ErrDuplicateRecord
		}
		return 0, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return id, nil
}

// UpdateField implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateField(ctx context.Context, id int64, field attendance.Field, timeValue string) error {
	q := GetQuerier(ctx, a.db)

	var query string
	switch field {
	case attendance.FieldCheckIn:
		query = updateCheckInQuery
	case attendance.FieldCheckOut:
		query = updateCheckOutQuery
	default:
		return fmt.Errorf("unknown attendance field: %q", field)
	}

	var updatedID int64
	if err := q.QueryRow(ctx, query, timeValue, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// QueryRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) QueryRange(ctx context.Context, startDate, endDate time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_name, date, check_in, check_out, created_at, updated_at
		FROM attendance_records
		WHERE date >= $1
		  AND date <= $2
		ORDER BY date DESC, employee_name ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeName, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return records, nil
}
