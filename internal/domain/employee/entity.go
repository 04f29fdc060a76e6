package employee

import (
	"time"
)

// Employee carries the schedule configuration the time-accounting engine needs.
type Employee struct {
	ID               string
	FullName         string
	EmployeeCode     string
	DepartmentID     *string
	ManagerID        *string
	DailyHours       float64
	WorkStartTime    time.Time // only hour, minute and second are meaningful
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)

// ScheduledStart returns the employee's scheduled start on the calendar day of date,
// evaluated in loc.
func (e Employee) ScheduledStart(date time.Time, loc *time.Location) time.Time {
	d := date.In(loc)
	return time.Date(
		d.Year(), d.Month(), d.Day(),
		e.WorkStartTime.Hour(), e.WorkStartTime.Minute(), e.WorkStartTime.Second(), 0,
		loc,
	)
}
