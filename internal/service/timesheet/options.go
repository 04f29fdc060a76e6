package timesheet

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/setting"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// Options carries the per-call configuration of the engine. It is resolved at the
// service boundary and passed explicitly so the calculations never read settings.
type Options struct {
	// Location decides which calendar day a punch belongs to.
	Location *time.Location

	// LateTolerance is added to the scheduled start before an entrada counts as late.
	LateTolerance time.Duration
}

func DefaultOptions() Options {
	return Options{
		Location:      time.UTC,
		LateTolerance: time.Duration(setting.DefaultLateToleranceMinutes) * time.Minute,
	}
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// dayKey returns the calendar day of t in loc.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timesheet.DateLayout)
}

// calendarDate drops the clock and the zone of t, keeping its date as midnight UTC.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dayStart returns the first instant of date's calendar day in loc. When the clocks
// skip midnight the day begins at the transition, not at 00:00.
func dayStart(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	for {
		ly, lm, ld := t.In(loc).Date()
		if ly == y && lm == m && ld == d {
			return t
		}
		t = t.Add(15 * time.Minute)
	}
}

// groupByDay buckets punches by their calendar day in loc, each bucket time-ordered.
func groupByDay(punches []punch.Punch, loc *time.Location) map[string][]punch.Punch {
	days := make(map[string][]punch.Punch)
	for _, p := range punch.SortPunches(punches) {
		key := dayKey(p.Timestamp, loc)
		days[key] = append(days[key], p)
	}
	return days
}

// eachDay calls fn with every calendar date from start to end inclusive. Dates are
// stepped in UTC so a day is never repeated or skipped around DST changes.
func eachDay(start, end time.Time, fn func(day time.Time)) {
	last := calendarDate(end)
	for d := calendarDate(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
