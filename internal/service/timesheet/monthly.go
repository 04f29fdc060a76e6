package timesheet

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// AssembleMonthlyTimesheet composes daily records, the period summary, overtime,
// late arrivals, missing punches and the NSR range of one month. Punches outside
// the month are ignored.
func AssembleMonthlyTimesheet(
	emp employee.Employee,
	month string,
	punches []punch.Punch,
	justifications []justification.Justification,
	opts Options,
	generatedAt time.Time,
) (timesheet.MonthlyTimesheet, error) {
	loc := opts.location()

	first, last, err := timesheet.ParseMonth(month)
	if err != nil {
		return timesheet.MonthlyTimesheet{}, err
	}

	period := timesheet.Period{
		Start: first.Format(timesheet.DateLayout),
		End:   last.Format(timesheet.DateLayout),
	}

	inMonth := make([]punch.Punch, 0, len(punches))
	for _, p := range punches {
		if key := dayKey(p.Timestamp, loc); key >= period.Start && key <= period.End {
			inMonth = append(inMonth, p)
		}
	}

	records := BuildDailyRecords(emp, inMonth, justifications, first, last, loc)

	return timesheet.MonthlyTimesheet{
		Employee:       snapshot(emp),
		Month:          first.Format("2006-01"),
		Period:         period,
		DailyRecords:   records,
		Summary:        Summarize(emp, records, period),
		Overtime:       CalculateOvertime(emp, records),
		LateArrivals:   FindLateArrivals(emp, inMonth, opts),
		MissingPunches: FindMissingPunches(emp.ID, first, last, inMonth, justifications, loc),
		NSRRange:       NSRRangeOf(inMonth),
		GeneratedAt:    generatedAt,
	}, nil
}

// NSRRangeOf returns the lowest and highest sequence numbers, or nil without punches.
func NSRRangeOf(punches []punch.Punch) *timesheet.NSRRange {
	if len(punches) == 0 {
		return nil
	}
	r := &timesheet.NSRRange{First: punches[0].NSR, Last: punches[0].NSR}
	for _, p := range punches[1:] {
		if p.NSR < r.First {
			r.First = p.NSR
		}
		if p.NSR > r.Last {
			r.Last = p.NSR
		}
	}
	return r
}

func snapshot(emp employee.Employee) timesheet.EmployeeSnapshot {
	return timesheet.EmployeeSnapshot{
		ID:            emp.ID,
		FullName:      emp.FullName,
		EmployeeCode:  emp.EmployeeCode,
		DepartmentID:  emp.DepartmentID,
		ManagerID:     emp.ManagerID,
		DailyHours:    emp.DailyHours,
		WorkStartTime: emp.WorkStartTime.Format("15:04:05"),
	}
}
