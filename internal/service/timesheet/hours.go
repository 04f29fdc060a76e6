package timesheet

import (
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// CalculateDailyHours sums the work and break intervals of a single day.
func CalculateDailyHours(punches []punch.Punch) timesheet.DailyHours {
	work, breaks := PairPunches(punches)

	var total, breakTotal float64
	for _, w := range work {
		total += w.DurationHours
	}
	for _, b := range breaks {
		breakTotal += b.DurationHours
	}

	return timesheet.DailyHours{
		TotalHours:     round2(total),
		BreakHours:     round2(breakTotal),
		WorkIntervals:  work,
		BreakIntervals: breaks,
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
