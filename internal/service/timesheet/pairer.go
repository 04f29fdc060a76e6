package timesheet

import (
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// PairPunches groups a single day's punches into work intervals (entrada -> saída)
// and break intervals (intervalo_inicio -> intervalo_fim).
//
// Each side keeps one open slot. A second entrada replaces the open one, so the
// earlier punch is dropped without producing an interval. Work intervals span the
// full entrada -> saída time and are not reduced by breaks inside them.
func PairPunches(punches []punch.Punch) ([]timesheet.WorkInterval, []timesheet.BreakInterval) {
	sorted := punch.SortPunches(punches)

	work := []timesheet.WorkInterval{}
	breaks := []timesheet.BreakInterval{}

	var currentEntrada *punch.Punch
	var currentBreakStart *punch.Punch

	for i := range sorted {
		p := sorted[i]
		switch p.Type {
		case punch.TypeEntrada:
			currentEntrada = &p

		case punch.TypeSaida:
			if currentEntrada == nil {
				continue
			}
			work = append(work, timesheet.WorkInterval{
				Start:         *currentEntrada,
				End:           p,
				DurationHours: hoursBetween(*currentEntrada, p),
			})
			currentEntrada = nil

		case punch.TypeIntervaloInicio:
			currentBreakStart = &p

		case punch.TypeIntervaloFim:
			if currentBreakStart == nil {
				continue
			}
			breaks = append(breaks, timesheet.BreakInterval{
				Start:         *currentBreakStart,
				End:           p,
				DurationHours: hoursBetween(*currentBreakStart, p),
			})
			currentBreakStart = nil
		}
	}

	return work, breaks
}

// hoursBetween returns the span from start to end in hours, never negative.
func hoursBetween(start, end punch.Punch) float64 {
	hours := end.Timestamp.Sub(start.Timestamp).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
