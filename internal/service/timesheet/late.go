package timesheet

import (
	"math"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// FindLateArrivals flags every entrada later than the employee's scheduled start
// plus the tolerance. The tolerance only decides whether a punch is late; the
// reported minutes are counted from the scheduled start itself.
func FindLateArrivals(emp employee.Employee, punches []punch.Punch, opts Options) []timesheet.LateArrivalRecord {
	loc := opts.location()
	records := []timesheet.LateArrivalRecord{}

	for _, p := range punch.SortPunches(punches) {
		if p.Type != punch.TypeEntrada {
			continue
		}

		punchTime := p.Timestamp.In(loc)
		scheduled := emp.ScheduledStart(punchTime, loc)
		threshold := scheduled.Add(opts.LateTolerance)

		if !punchTime.After(threshold) {
			continue
		}

		records = append(records, timesheet.LateArrivalRecord{
			EmployeeID:     emp.ID,
			Date:           punchTime.Format(timesheet.DateLayout),
			PunchID:        p.ID,
			NSR:            p.NSR,
			PunchTime:      punchTime,
			ScheduledStart: scheduled,
			MinutesLate:    int(math.Floor(punchTime.Sub(scheduled).Minutes())),
		})
	}

	return records
}
