package attendance

import (
	"time"

	"github.com/Suhaibk137/attendance-app/internal/pkg/validator"
)

// AttendanceRecord is one employee's attendance for one calendar day.
// CheckIn and CheckOut hold wall-clock strings in the reference time zone
// (formatted "3:04:05 PM"); each stays nil until the matching action arrives
// and is never overwritten afterwards.
type AttendanceRecord struct {
	ID           int64
	EmployeeName string
	Date         time.Time
	CheckIn      *string
	CheckOut     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Field names a writable column of an attendance record. Repositories map
// each value to a fixed, pre-written statement; a Field value never reaches
// SQL as interpolated text.
type Field string

const (
	FieldCheckIn  Field = "check_in"
	FieldCheckOut Field = "check_out"
)

// Action is the event type being recorded.
type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
)

// Valid reports whether the action is one of the known event types.
func (a Action) Valid() bool {
	return validator.IsInSlice(string(a), []string{string(ActionCheckIn), string(ActionCheckOut)})
}

// Field returns the record column this action writes.
func (a Action) Field() Field {
	if a == ActionCheckOut {
		return FieldCheckOut
	}
	return FieldCheckIn
}
