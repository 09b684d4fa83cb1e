package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrDuplicateRecord = errors.New("attendance record already exists for this employee and date")
)
