package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/Suhaibk137/attendance-app/internal/domain/attendance"
	"github.com/Suhaibk137/attendance-app/internal/pkg/clock"
	"github.com/Suhaibk137/attendance-app/internal/pkg/keylock"
)

const (
	dateFormat = "2006-01-02"
	// timeOfDayFormat renders wall-clock values the way the admin view
	// shows them, e.g. "9:05:07 AM".
	timeOfDayFormat = "3:04:05 PM"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clock          clock.Clock
	location       *time.Location
	locks          *keylock.KeyLock
	storageTimeout time.Duration
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	clk clock.Clock,
	location *time.Location,
	storageTimeout time.Duration,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		clock:                clk,
		location:             location,
		locks:                keylock.New(),
		storageTimeout:       storageTimeout,
	}
}

// RecordAction implements attendance.AttendanceService.
//
// The lookup-then-write sequence runs under a per-(employee, date) lock so
// two concurrent submissions for the same pair cannot both observe "no
// record" and insert twice. The unique index on (employee_name, date) backs
// this up at the storage layer for writers outside this process.
func (s *AttendanceServiceImpl) RecordAction(ctx context.Context, req attendance.RecordActionRequest) (attendance.Outcome, error) {
	if err := req.Validate(); err != nil {
		return attendance.Outcome{}, err
	}

	nowLocal := s.clock.Now().In(s.location)
	dateLocal := nowLocal.Format(dateFormat)
	timeOfDay := nowLocal.Format(timeOfDayFormat)
	date := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)

	key := req.EmployeeName + "|" + dateLocal
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeName, date)
	if err != nil {
		return attendance.Outcome{}, fmt.Errorf("failed to look up attendance record: %w", err)
	}

	if rec == nil {
		id, err := s.AttendanceRepository.Insert(ctx, req.EmployeeName, date, req.Action.Field(), timeOfDay)
		if err != nil {
			return attendance.Outcome{}, fmt.Errorf("failed to create attendance record: %w", err)
		}

		resp := attendance.RecordResponse{
			ID:           id,
			EmployeeName: req.EmployeeName,
			Date:         dateLocal,
		}
		setField(&resp, req.Action.Field(), timeOfDay)

		return attendance.Outcome{Status: attendance.OutcomeCreated, Record: resp}, nil
	}

	// "Both already set" wins over the action-specific checks, so a complete
	// record always yields the combined reason.
	switch {
	case rec.CheckIn != nil && rec.CheckOut != nil:
		return rejected(attendance.ReasonAlreadyCheckedInAndOut, rec), nil
	case req.Action == attendance.ActionCheckIn && rec.CheckIn != nil:
		return rejected(attendance.ReasonAlreadyCheckedIn, rec), nil
	case req.Action == attendance.ActionCheckOut && rec.CheckOut != nil:
		return rejected(attendance.ReasonAlreadyCheckedOut, rec), nil
	}

	if err := s.AttendanceRepository.UpdateField(ctx, rec.ID, req.Action.Field(), timeOfDay); err != nil {
		return attendance.Outcome{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	resp := mapRecordToResponse(rec)
	setField(&resp, req.Action.Field(), timeOfDay)

	return attendance.Outcome{Status: attendance.OutcomeUpdated, Record: resp}, nil
}

// QueryAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) QueryAttendance(ctx context.Context, req attendance.QueryRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse(dateFormat, req.StartDate)
	endDate, _ := time.Parse(dateFormat, req.EndDate)

	ctx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()

	records, err := s.AttendanceRepository.QueryRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, mapRecordToResponse(&records[i]))
	}

	return responses, nil
}

// mapRecordToResponse converts an AttendanceRecord entity to RecordResponse.
func mapRecordToResponse(rec *attendance.AttendanceRecord) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date.Format(dateFormat),
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
	}
}

func setField(resp *attendance.RecordResponse, field attendance.Field, timeValue string) {
	if field == attendance.FieldCheckOut {
		resp.CheckOut = &timeValue
		return
	}
	resp.CheckIn = &timeValue
}

func rejected(reason string, rec *attendance.AttendanceRecord) attendance.Outcome {
	return attendance.Outcome{
		Status: attendance.OutcomeRejected,
		Reason: reason,
		Record: mapRecordToResponse(rec),
	}
}
