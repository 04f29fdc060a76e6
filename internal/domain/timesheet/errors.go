package timesheet

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrForbidden        = errors.New("not allowed to access this employee's timesheet")
)
