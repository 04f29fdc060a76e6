package timesheet

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// FindMissingPunches reports every Monday to Friday in [start, end] on which the
// employee has no punch at all, along with whether a justification covers it.
// Weekends are never reported.
func FindMissingPunches(
	employeeID string,
	start, end time.Time,
	punches []punch.Punch,
	justifications []justification.Justification,
	loc *time.Location,
) []timesheet.MissingPunchRecord {
	if loc == nil {
		loc = time.UTC
	}

	punchedDays := groupByDay(punches, loc)
	justified := justificationsByDay(justifications)
	records := []timesheet.MissingPunchRecord{}

	eachDay(start, end, func(day time.Time) {
		if isWeekend(day) {
			return
		}
		key := day.Format(timesheet.DateLayout)
		if len(punchedDays[key]) > 0 {
			return
		}

		record := timesheet.MissingPunchRecord{
			EmployeeID: employeeID,
			Date:       key,
			Weekday:    day.Weekday().String(),
		}
		if js := justified[key]; len(js) > 0 {
			status := js[0].Status
			record.HasJustification = true
			record.JustificationStatus = &status
		}
		records = append(records, record)
	})

	return records
}

// justificationsByDay buckets justifications by date. Justification dates are
// calendar dates, so they are keyed as stored and not shifted into a timezone.
func justificationsByDay(justifications []justification.Justification) map[string][]justification.Justification {
	days := make(map[string][]justification.Justification)
	for _, j := range justifications {
		key := j.Date.Format(timesheet.DateLayout)
		days[key] = append(days[key], j)
	}
	return days
}
