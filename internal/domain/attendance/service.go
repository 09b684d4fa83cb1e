package attendance

import "context"

type AttendanceService interface {
	// RecordAction decides the effect of one inbound check-in/check-out
	// against "today" in the reference time zone and applies it.
	RecordAction(ctx context.Context, req RecordActionRequest) (Outcome, error)

	// QueryAttendance retrieves records in an inclusive date range for the
	// admin view, ordered by date descending then employee name ascending.
	QueryAttendance(ctx context.Context, req QueryRequest) ([]RecordResponse, error)
}
