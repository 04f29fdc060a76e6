package timesheet

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// BuildDailyRecords produces one record per calendar day in [start, end], empty
// days included. Only days with worked hours carry expected hours.
func BuildDailyRecords(
	emp employee.Employee,
	punches []punch.Punch,
	justifications []justification.Justification,
	start, end time.Time,
	loc *time.Location,
) []timesheet.DailyRecord {
	if loc == nil {
		loc = time.UTC
	}

	punchedDays := groupByDay(punches, loc)
	justified := justificationsByDay(justifications)
	records := []timesheet.DailyRecord{}

	eachDay(start, end, func(day time.Time) {
		key := day.Format(timesheet.DateLayout)
		dayPunches := punchedDays[key]
		if dayPunches == nil {
			dayPunches = []punch.Punch{}
		}
		dayJustifications := justified[key]
		if dayJustifications == nil {
			dayJustifications = []justification.Justification{}
		}

		hours := CalculateDailyHours(dayPunches)

		var expected float64
		if hours.TotalHours > 0 {
			expected = emp.DailyHours
		}

		records = append(records, timesheet.DailyRecord{
			Date:           key,
			EmployeeID:     emp.ID,
			Weekday:        day.Weekday().String(),
			Punches:        dayPunches,
			WorkIntervals:  hours.WorkIntervals,
			BreakIntervals: hours.BreakIntervals,
			TotalHours:     hours.TotalHours,
			BreakHours:     hours.BreakHours,
			ExpectedHours:  expected,
			BalanceHours:   round2(hours.TotalHours - expected),
			Validation:     ValidatePunchPairs(dayPunches),
			Justifications: dayJustifications,
		})
	})

	return records
}

// Summarize aggregates daily records into expected-vs-actual balances. Days without
// worked hours count neither towards TotalDays nor towards ExpectedHours.
func Summarize(emp employee.Employee, records []timesheet.DailyRecord, period timesheet.Period) timesheet.PeriodSummary {
	var total float64
	var days int
	for _, r := range records {
		if r.TotalHours > 0 {
			total += r.TotalHours
			days++
		}
	}

	expected := emp.DailyHours * float64(days)

	var average float64
	if days > 0 {
		average = total / float64(days)
	}

	return timesheet.PeriodSummary{
		Period:             period,
		TotalHours:         round2(total),
		TotalDays:          days,
		AverageHoursPerDay: round2(average),
		ExpectedHours:      round2(expected),
		Balance:            round2(total - expected),
	}
}

// CalculateOvertime lists the worked days whose hours exceed the employee's daily
// hours and accumulates the excess.
func CalculateOvertime(emp employee.Employee, records []timesheet.DailyRecord) timesheet.OvertimeReport {
	report := timesheet.OvertimeReport{
		DailyOvertime: []timesheet.DailyOvertime{},
	}

	var total float64
	for _, r := range records {
		if r.TotalHours <= 0 {
			continue
		}
		overtime := r.TotalHours - emp.DailyHours
		if overtime <= 0 {
			continue
		}
		total += overtime
		report.DailyOvertime = append(report.DailyOvertime, timesheet.DailyOvertime{
			Date:          r.Date,
			TotalHours:    r.TotalHours,
			ExpectedHours: emp.DailyHours,
			OvertimeHours: round2(overtime),
		})
	}

	report.TotalOvertime = round2(total)
	return report
}
