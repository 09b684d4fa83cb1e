package report

import "errors"

// Report domain errors
var (
	// ErrNoRecords means the range query matched zero rows. Distinct from a
	// storage failure; the caller renders it as "no records", not as an
	// empty download.
	ErrNoRecords = errors.New("no attendance records found for the requested period")
)
