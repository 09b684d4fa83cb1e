package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/Suhaibk137/attendance-app/internal/domain/attendance"
	"github.com/Suhaibk137/attendance-app/internal/domain/report"
	"github.com/Suhaibk137/attendance-app/internal/pkg/export"
	"github.com/Suhaibk137/attendance-app/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

type fakeAttendanceRepo struct {
	records  []attendance.AttendanceRecord
	queryErr error
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeName string, date time.Time) (*attendance.AttendanceRecord, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Insert(ctx context.Context, employeeName string, date time.Time, field attendance.Field, timeValue string) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeAttendanceRepo) UpdateField(ctx context.Context, id int64, field attendance.Field, timeValue string) error {
	return errors.New("not implemented")
}

func (f *fakeAttendanceRepo) QueryRange(ctx context.Context, startDate, endDate time.Time) ([]attendance.AttendanceRecord, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.Date.Before(startDate) || rec.Date.After(endDate) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out, nil
}

// stubSerializer lets tests control the artifact that comes back, including
// handing out a path that cannot be read as a file.
type stubSerializer struct {
	dir      string
	makeDir  bool
	fail     bool
	lastPath string
}

func (s *stubSerializer) CreateArtifact(baseName string, headers []string, rows [][]string) (report.Artifact, error) {
	if s.fail {
		return report.Artifact{}, errors.New("serializer exploded")
	}
	if s.makeDir {
		path := filepath.Join(s.dir, baseName)
		if err := os.Mkdir(path, 0o755); err != nil {
			return report.Artifact{}, err
		}
		s.lastPath = path
		return report.Artifact{Path: path, Filename: baseName + ".csv"}, nil
	}
	f, err := os.CreateTemp(s.dir, baseName+"_*.csv")
	if err != nil {
		return report.Artifact{}, err
	}
	if _, err := f.WriteString("stub content\n"); err != nil {
		f.Close()
		return report.Artifact{}, err
	}
	if err := f.Close(); err != nil {
		return report.Artifact{}, err
	}
	s.lastPath = f.Name()
	return report.Artifact{Path: f.Name(), Filename: baseName + ".csv"}, nil
}

func strPtr(s string) *string { return &s }

func sampleRecords() []attendance.AttendanceRecord {
	return []attendance.AttendanceRecord{
		{
			ID:           1,
			EmployeeName: "Alice",
			Date:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CheckIn:      strPtr("9:00:00 AM"),
			CheckOut:     strPtr("6:00:00 PM"),
		},
		{
			ID:           2,
			EmployeeName: "Bob",
			Date:         time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			CheckIn:      strPtr("9:30:00 AM"),
		},
	}
}

func rangeReq(start, end string) report.AttendanceReportRequest {
	return report.AttendanceReportRequest{StartDate: start, EndDate: end}
}

func TestGenerateAttendanceReport_CSVContent(t *testing.T) {
	repo := &fakeAttendanceRepo{records: sampleRecords()}
	serializer := export.NewCSVSerializer(t.TempDir())
	svc := NewReportService(repo, serializer, testTimeout)

	exp, err := svc.GenerateAttendanceReport(context.Background(), rangeReq("2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	assert.Equal(t, "attendance_2024-01-01_to_2024-01-31.csv", exp.Filename)
	assert.Equal(t, "text/csv", exp.ContentType)

	want := "ID,Employee Name,Date,Check In,Check Out\n" +
		"2,Bob,2024-01-02,9:30:00 AM,\n" +
		"1,Alice,2024-01-01,9:00:00 AM,6:00:00 PM\n"
	assert.Equal(t, want, string(exp.Content))
}

func TestGenerateAttendanceReport_RemovesArtifactOnSuccess(t *testing.T) {
	repo := &fakeAttendanceRepo{records: sampleRecords()}
	serializer := &stubSerializer{dir: t.TempDir()}
	svc := NewReportService(repo, serializer, testTimeout)

	exp, err := svc.GenerateAttendanceReport(context.Background(), rangeReq("2024-01-01", "2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, "stub content\n", string(exp.Content))

	_, statErr := os.Stat(serializer.lastPath)
	assert.True(t, os.IsNotExist(statErr), "artifact should be removed after a successful export")
}

func TestGenerateAttendanceReport_RemovesArtifactOnReadFailure(t *testing.T) {
	// A directory as artifact path makes the read-back fail while the
	// deferred removal still succeeds.
	repo := &fakeAttendanceRepo{records: sampleRecords()}
	serializer := &stubSerializer{dir: t.TempDir(), makeDir: true}
	svc := NewReportService(repo, serializer, testTimeout)

	_, err := svc.GenerateAttendanceReport(context.Background(), rangeReq("2024-01-01", "2024-01-31"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read report artifact")

	_, statErr := os.Stat(serializer.lastPath)
	assert.True(t, os.IsNotExist(statErr), "artifact should be removed even when reading it back fails")
}

func TestGenerateAttendanceReport_SerializerErrorPropagates(t *testing.T) {
	repo := &fakeAttendanceRepo{records: sampleRecords()}
	serializer := &stubSerializer{fail: true}
	svc := NewReportService(repo, serializer, testTimeout)

	_, err := svc.GenerateAttendanceReport(context.Background(), rangeReq("2024-01-01", "2024-01-31"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "serializer exploded")
}

func TestGenerateAttendanceReport_NoRecords(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	serializer := &stubSerializer{dir: t.TempDir()}
	svc := NewReportService(repo, serializer, testTimeout)

	_, err := svc.GenerateAttendanceReport(context.Background(), rangeReq("2024-01-01", "2024-01-31"))
	require.ErrorIs(t, err, report.ErrNoRecords)
	assert.Empty(t, serializer.lastPath, "no artifact should be created for an empty range")
}

func TestGenerateAttendanceReport_StorageErrorPropagates(t *testing.T) {
	repo := &fakeAttendanceRepo{queryErr: errors.New("connection reset")}
	svc := NewReportService(repo, &stubSerializer{}, testTimeout)

	_, err := svc.GenerateAttendanceReport(context.Background(), rangeReq("2024-01-01", "2024-01-31"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
}

func TestGenerateAttendanceReport_Validation(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{}, &stubSerializer{}, testTimeout)

	cases := []report.AttendanceReportRequest{
		{StartDate: "", EndDate: "2024-01-31"},
		{StartDate: "2024/01/01", EndDate: "2024-01-31"},
		{StartDate: "2024-02-01", EndDate: "2024-01-31"},
	}
	for _, req := range cases {
		_, err := svc.GenerateAttendanceReport(context.Background(), req)
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
	}
}
