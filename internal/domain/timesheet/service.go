package timesheet

import (
	"context"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
)

// TimesheetService exposes the time-accounting engine to report renderers,
// dashboards and notification triggers.
type TimesheetService interface {
	// CalculateHoursWorked aggregates worked hours for an employee over a date range
	CalculateHoursWorked(ctx context.Context, req DateRangeRequest) (PeriodSummary, error)

	// CalculateDailyHours pairs a single day's punches and sums the intervals
	CalculateDailyHours(ctx context.Context, punches []punch.Punch) (DailyHours, error)

	// ValidatePunchPairs checks the pairing legality of a single day's punches
	ValidatePunchPairs(ctx context.Context, punches []punch.Punch) (Validation, error)

	// GenerateMonthlyTimesheet assembles the report-ready timesheet of one month
	GenerateMonthlyTimesheet(ctx context.Context, req MonthlyTimesheetRequest) (MonthlyTimesheet, error)

	// GenerateDepartmentTimesheets builds the monthly timesheet of every active
	// employee of a department
	GenerateDepartmentTimesheets(ctx context.Context, req DepartmentTimesheetRequest) ([]MonthlyTimesheet, error)

	FindMissingPunches(ctx context.Context, req DateRangeRequest) ([]MissingPunchRecord, error)
	FindLateArrivals(ctx context.Context, req DateRangeRequest) ([]LateArrivalRecord, error)
	CalculateOvertime(ctx context.Context, req DateRangeRequest) (OvertimeReport, error)
}
