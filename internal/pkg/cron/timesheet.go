package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// TimesheetJobs scans the previous day of every active employee for late arrivals
// and days without punches. Findings are only logged.
type TimesheetJobs struct {
	timesheetSvc timesheet.TimesheetService
	employeeRepo employee.EmployeeRepository
	location     *time.Location
	now          func() time.Time
}

func NewTimesheetJobs(
	timesheetSvc timesheet.TimesheetService,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) *TimesheetJobs {
	if location == nil {
		location = time.UTC
	}
	return &TimesheetJobs{
		timesheetSvc: timesheetSvc,
		employeeRepo: employeeRepo,
		location:     location,
		now:          time.Now,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler, runHour int) {
	scheduler.AddDailyJob("detect_late_arrivals", runHour, j.location, j.DetectLateArrivals)
	scheduler.AddDailyJob("detect_missing_punches", runHour, j.location, j.DetectMissingPunches)
}

// DetectLateArrivals logs yesterday's late entradas.
func (j *TimesheetJobs) DetectLateArrivals(ctx context.Context) error {
	day := j.yesterday()
	slog.Info("Cron: Starting late arrival detection", "date", day)

	found, err := j.forEachActive(ctx, day, func(req timesheet.DateRangeRequest) (int, error) {
		records, err := j.timesheetSvc.FindLateArrivals(ctx, req)
		if err != nil {
			return 0, err
		}
		for _, r := range records {
			slog.Warn("Cron: Late arrival",
				"employee_id", r.EmployeeID,
				"date", r.Date,
				"punch_id", r.PunchID,
				"minutes_late", r.MinutesLate,
			)
		}
		return len(records), nil
	})
	if err != nil {
		return err
	}

	slog.Info("Cron: Late arrival detection completed", "date", day, "late_count", found)
	return nil
}

// DetectMissingPunches logs yesterday's weekday absences without punches.
func (j *TimesheetJobs) DetectMissingPunches(ctx context.Context) error {
	day := j.yesterday()
	slog.Info("Cron: Starting missing punch detection", "date", day)

	found, err := j.forEachActive(ctx, day, func(req timesheet.DateRangeRequest) (int, error) {
		records, err := j.timesheetSvc.FindMissingPunches(ctx, req)
		if err != nil {
			return 0, err
		}
		for _, r := range records {
			slog.Warn("Cron: Missing punches",
				"employee_id", r.EmployeeID,
				"date", r.Date,
				"has_justification", r.HasJustification,
			)
		}
		return len(records), nil
	})
	if err != nil {
		return err
	}

	slog.Info("Cron: Missing punch detection completed", "date", day, "missing_count", found)
	return nil
}

// forEachActive runs check for every active employee over day. A failing employee
// is logged and skipped.
func (j *TimesheetJobs) forEachActive(ctx context.Context, day string, check func(req timesheet.DateRangeRequest) (int, error)) (int, error) {
	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active employees: %w", err)
	}

	total := 0
	for _, emp := range employees {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n, err := check(timesheet.DateRangeRequest{EmployeeID: emp.ID, StartDate: day, EndDate: day})
		if err != nil {
			slog.Error("Cron: Failed to check employee", "employee_id", emp.ID, "date", day, "error", err)
			continue
		}
		total += n
	}
	return total, nil
}

// yesterday steps back over the calendar date, since the local clock time may not
// exist on the previous day.
func (j *TimesheetJobs) yesterday() string {
	y, m, d := j.now().In(j.location).Date()
	return time.Date(y, m, d-1, 0, 0, 0, 0, time.UTC).Format(timesheet.DateLayout)
}
