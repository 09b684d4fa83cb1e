package attendance

import (
	"github.com/Suhaibk137/attendance-app/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordActionRequest struct {
	EmployeeName string `json:"employee_name"`
	Action       Action `json:"action"`
}

func (r *RecordActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if !r.Action.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be check_in or check_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type QueryRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *QueryRequest) Validate() error {
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

type RecordResponse struct {
	ID           int64   `json:"id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
}

// OutcomeStatus tags the result of a record-action attempt.
type OutcomeStatus string

const (
	OutcomeCreated  OutcomeStatus = "created"
	OutcomeUpdated  OutcomeStatus = "updated"
	OutcomeRejected OutcomeStatus = "rejected"
)

// Rejection reasons returned to the caller. A fully complete record yields
// the combined reason regardless of which action is resubmitted.
const (
	ReasonAlreadyCheckedInAndOut = "already checked in and out"
	ReasonAlreadyCheckedIn       = "already checked in"
	ReasonAlreadyCheckedOut      = "already checked out"
)

// Outcome is the normal return domain of RecordAction. Rejected is a
// business result, not an error; storage failures travel separately as
// ordinary errors.
type Outcome struct {
	Status OutcomeStatus
	Reason string
	Record RecordResponse
}
