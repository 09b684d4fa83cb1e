package report

import (
	"github.com/Suhaibk137/attendance-app/internal/pkg/validator"
)

// Columns is the fixed header row of the attendance export, in the order
// rows are materialised.
var Columns = []string{"ID", "Employee Name", "Date", "Check In", "Check Out"}

type AttendanceReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Export is the finished report handed to the transport layer. By the time
// an Export exists the transient artifact behind it has been removed.
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}
