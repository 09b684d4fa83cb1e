package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Suhaibk137/attendance-app/internal/domain/attendance"
	"github.com/Suhaibk137/attendance-app/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordAction(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// RecordAction implements AttendanceHandler.
func (h *attendanceHandlerImpl) RecordAction(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordActionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode record action request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.attendanceService.RecordAction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch outcome.Status {
	case attendance.OutcomeCreated:
		response.Created(w, actionMessage(req.Action), outcome.Record)
	case attendance.OutcomeUpdated:
		response.SuccessWithMessage(w, actionMessage(req.Action), outcome.Record)
	case attendance.OutcomeRejected:
		response.Conflict(w, outcome.Reason)
	default:
		response.InternalServerError(w, fmt.Sprintf("unknown outcome status: %s", outcome.Status))
	}
}

// List implements AttendanceHandler. Handles GET /attendance for the admin
// range view.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := attendance.QueryRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.QueryAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func actionMessage(action attendance.Action) string {
	if action == attendance.ActionCheckOut {
		return "Check out recorded"
	}
	return "Check in recorded"
}
