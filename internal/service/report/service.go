package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Suhaibk137/attendance-app/internal/domain/attendance"
	"github.com/Suhaibk137/attendance-app/internal/domain/report"
)

const dateFormat = "2006-01-02"

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	serializer     report.Serializer
	storageTimeout time.Duration
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	serializer report.Serializer,
	storageTimeout time.Duration,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		serializer:     serializer,
		storageTimeout: storageTimeout,
	}
}

// GenerateAttendanceReport implements report.ReportService.
//
// The serializer materialises a transient file; this service owns its
// lifetime and removes it once the content has been read back, whether the
// read succeeded or not.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.Export, error) {
	if err := req.Validate(); err != nil {
		return report.Export{}, err
	}

	startDate, _ := time.Parse(dateFormat, req.StartDate)
	endDate, _ := time.Parse(dateFormat, req.EndDate)

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	records, err := s.attendanceRepo.QueryRange(ctx, startDate, endDate)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to query attendance records: %w", err)
	}
	if len(records) == 0 {
		return report.Export{}, report.ErrNoRecords
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			rec.EmployeeName,
			rec.Date.Format(dateFormat),
			stringValue(rec.CheckIn),
			stringValue(rec.CheckOut),
		})
	}

	baseName := fmt.Sprintf("attendance_%s_to_%s", req.StartDate, req.EndDate)
	artifact, err := s.serializer.CreateArtifact(baseName, report.Columns, rows)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to serialize attendance report: %w", err)
	}
	defer func() {
		if err := os.Remove(artifact.Path); err != nil {
			slog.Warn("failed to remove report artifact", "path", artifact.Path, "error", err)
		}
	}()

	content, err := os.ReadFile(artifact.Path)
	if err != nil {
		return report.Export{}, fmt.Errorf("failed to read report artifact: %w", err)
	}

	return report.Export{
		Filename:    artifact.Filename,
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
