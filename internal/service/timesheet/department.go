package timesheet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
	"golang.org/x/sync/errgroup"
)

// GenerateDepartmentTimesheets implements timesheet.TimesheetService.
// Each employee is computed in its own goroutine; results keep the order of the
// department listing.
func (s *TimesheetServiceImpl) GenerateDepartmentTimesheets(ctx context.Context, req timesheet.DepartmentTimesheetRequest) ([]timesheet.MonthlyTimesheet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.ListByDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department employees: %w", err)
	}

	opts, err := s.options(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]timesheet.MonthlyTimesheet, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.DepartmentConcurrency)

	for i, emp := range employees {
		g.Go(func() error {
			ts, err := s.monthlyTimesheet(gctx, emp, req.Month, opts)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			results[i] = ts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Generated department timesheets",
		"department_id", req.DepartmentID,
		"month", req.Month,
		"employee_count", len(results),
	)

	return results, nil
}
