package report

import "context"

type ReportService interface {
	// GenerateAttendanceReport exports the records in an inclusive date
	// range. Returns ErrNoRecords when the range matches nothing.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (Export, error)
}
