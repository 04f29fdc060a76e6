package timesheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/setting"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// Config holds the engine settings resolved from the environment.
type Config struct {
	Location                    *time.Location
	DefaultLateToleranceMinutes int
	DepartmentConcurrency       int
}

type TimesheetServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	justification.JustificationRepository
	settings setting.SettingsProvider
	cfg      Config
	now      func() time.Time
}

// CalculateHoursWorked implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CalculateHoursWorked(ctx context.Context, req timesheet.DateRangeRequest) (timesheet.PeriodSummary, error) {
	emp, start, end, err := s.resolveRange(ctx, req)
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}

	punches, err := s.listPunches(ctx, emp.ID, start, end)
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}

	records := BuildDailyRecords(emp, punches, nil, start, end, s.cfg.Location)
	summary := Summarize(emp, records, timesheet.Period{Start: req.StartDate, End: req.EndDate})

	slog.Debug("Calculated hours worked",
		"employee_id", emp.ID,
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"total_hours", summary.TotalHours,
		"total_days", summary.TotalDays,
	)

	return summary, nil
}

// CalculateDailyHours implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CalculateDailyHours(ctx context.Context, punches []punch.Punch) (timesheet.DailyHours, error) {
	return CalculateDailyHours(punches), nil
}

// ValidatePunchPairs implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ValidatePunchPairs(ctx context.Context, punches []punch.Punch) (timesheet.Validation, error) {
	return ValidatePunchPairs(punches), nil
}

// GenerateMonthlyTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GenerateMonthlyTimesheet(ctx context.Context, req timesheet.MonthlyTimesheetRequest) (timesheet.MonthlyTimesheet, error) {
	if err := req.Validate(); err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	emp, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	opts, err := s.options(ctx)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	return s.monthlyTimesheet(ctx, emp, req.Month, opts)
}

// FindMissingPunches implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) FindMissingPunches(ctx context.Context, req timesheet.DateRangeRequest) ([]timesheet.MissingPunchRecord, error) {
	emp, start, end, err := s.resolveRange(ctx, req)
	if err != nil {
		return nil, err
	}

	punches, err := s.listPunches(ctx, emp.ID, start, end)
	if err != nil {
		return nil, err
	}

	justifications, err := s.JustificationRepository.ListForRange(ctx, emp.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}

	return FindMissingPunches(emp.ID, start, end, punches, justifications, s.cfg.Location), nil
}

// FindLateArrivals implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) FindLateArrivals(ctx context.Context, req timesheet.DateRangeRequest) ([]timesheet.LateArrivalRecord, error) {
	emp, start, end, err := s.resolveRange(ctx, req)
	if err != nil {
		return nil, err
	}

	punches, err := s.listPunches(ctx, emp.ID, start, end)
	if err != nil {
		return nil, err
	}

	opts, err := s.options(ctx)
	if err != nil {
		return nil, err
	}

	return FindLateArrivals(emp, punches, opts), nil
}

// CalculateOvertime implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) CalculateOvertime(ctx context.Context, req timesheet.DateRangeRequest) (timesheet.OvertimeReport, error) {
	emp, start, end, err := s.resolveRange(ctx, req)
	if err != nil {
		return timesheet.OvertimeReport{}, err
	}

	punches, err := s.listPunches(ctx, emp.ID, start, end)
	if err != nil {
		return timesheet.OvertimeReport{}, err
	}

	records := BuildDailyRecords(emp, punches, nil, start, end, s.cfg.Location)
	return CalculateOvertime(emp, records), nil
}

func (s *TimesheetServiceImpl) monthlyTimesheet(ctx context.Context, emp employee.Employee, month string, opts Options) (timesheet.MonthlyTimesheet, error) {
	first, last, err := timesheet.ParseMonth(month)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	punches, err := s.listPunches(ctx, emp.ID, first, last)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	justifications, err := s.JustificationRepository.ListForRange(ctx, emp.ID, first, last)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, fmt.Errorf("failed to list justifications: %w", err)
	}

	result, err := AssembleMonthlyTimesheet(emp, month, punches, justifications, opts, s.now())
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	slog.Debug("Generated monthly timesheet",
		"employee_id", emp.ID,
		"month", result.Month,
		"total_hours", result.Summary.TotalHours,
		"balance", result.Summary.Balance,
	)

	return result, nil
}

// resolveRange validates the request, parses its days and loads the employee.
func (s *TimesheetServiceImpl) resolveRange(ctx context.Context, req timesheet.DateRangeRequest) (employee.Employee, time.Time, time.Time, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, time.Time{}, time.Time{}, err
	}

	start, end, err := timesheet.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return employee.Employee{}, time.Time{}, time.Time{}, err
	}

	emp, err := s.getEmployee(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, time.Time{}, time.Time{}, err
	}

	return emp, start, end, nil
}

func (s *TimesheetServiceImpl) getEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// listPunches loads the punches of the inclusive day range [firstDay, lastDay].
func (s *TimesheetServiceImpl) listPunches(ctx context.Context, employeeID string, firstDay, lastDay time.Time) ([]punch.Punch, error) {
	from := dayStart(firstDay, s.cfg.Location)
	to := dayStart(calendarDate(lastDay).AddDate(0, 0, 1), s.cfg.Location)

	punches, err := s.PunchRepository.ListPunches(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	return punches, nil
}

// options resolves the per-call engine options from the settings store.
func (s *TimesheetServiceImpl) options(ctx context.Context) (Options, error) {
	minutes, err := s.settings.GetInt(ctx, setting.KeyLateToleranceMinutes, s.cfg.DefaultLateToleranceMinutes)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read late tolerance setting: %w", err)
	}
	if minutes < 0 {
		minutes = 0
	}

	return Options{
		Location:      s.cfg.Location,
		LateTolerance: time.Duration(minutes) * time.Minute,
	}, nil
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	justificationRepo justification.JustificationRepository,
	settings setting.SettingsProvider,
	cfg Config,
) timesheet.TimesheetService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DepartmentConcurrency <= 0 {
		cfg.DepartmentConcurrency = 1
	}

	return &TimesheetServiceImpl{
		PunchRepository:         punchRepo,
		EmployeeRepository:      employeeRepo,
		JustificationRepository: justificationRepo,
		settings:                settings,
		cfg:                     cfg,
		now:                     time.Now,
	}
}
