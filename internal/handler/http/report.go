package http

import (
	"fmt"
	"net/http"

	"github.com/Suhaibk137/attendance-app/internal/domain/report"
	"github.com/Suhaibk137/attendance-app/internal/handler/http/response"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAttendance handles GET /reports/attendance/export. Streams the
// finished export; the transient artifact behind it is already gone by the
// time the service returns.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(export.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}
