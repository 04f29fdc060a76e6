package timesheet

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/validator"
)

// MaxRangeDays bounds every date-range query.
const MaxRangeDays = 366

// ========================================
// DATE RANGE QUERIES
// ========================================

// DateRangeRequest selects an employee and an inclusive [StartDate, EndDate] window
// of "YYYY-MM-DD" days.
type DateRangeRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *DateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	// well-formed but reversed or oversized ranges surface as ErrInvalidDateRange
	_, _, err := ParseDateRange(r.StartDate, r.EndDate)
	return err
}

// ParseDateRange parses an inclusive range of calendar days. Both bounds are
// returned as midnight UTC of their date, whatever zone the punches are read in.
func ParseDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q", ErrInvalidDateRange, startStr)
	}
	end, err := time.Parse(DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q", ErrInvalidDateRange, endStr)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date must not be before start_date", ErrInvalidDateRange)
	}
	if days := int(end.Sub(start)/(24*time.Hour)) + 1; days > MaxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: range of %d days exceeds %d", ErrInvalidDateRange, days, MaxRangeDays)
	}
	return start, end, nil
}

// ========================================
// MONTHLY TIMESHEET
// ========================================

type MonthlyTimesheetRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM
}

func (r *MonthlyTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentTimesheetRequest struct {
	DepartmentID string `json:"department_id"`
	Month        string `json:"month"` // YYYY-MM
}

func (r *DepartmentTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseMonth returns the first and last calendar day of a "YYYY-MM" month, as
// midnight UTC dates.
func ParseMonth(month string) (time.Time, time.Time, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// ========================================
// AD-HOC PUNCH LISTS
// ========================================

type PunchInput struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Timestamp  string   `json:"timestamp"` // RFC3339
	Type       string   `json:"type"`
	Method     string   `json:"method"`
	NSR        int64    `json:"nsr"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// PunchListRequest carries a day's punches for the pure calculation endpoints.
type PunchListRequest struct {
	Punches []PunchInput `json:"punches"`
}

func (r *PunchListRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, p := range r.Punches {
		field := fmt.Sprintf("punches[%d]", i)

		if _, ok := validator.IsValidDateTime(p.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".timestamp",
				Message: "timestamp must be an RFC3339 date-time",
			})
		}

		// unknown types are reported by the pairing validation, not rejected here
		if validator.IsEmpty(p.Type) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".type",
				Message: "type is required",
			})
		}

		if p.Method != "" && !validator.IsInSlice(p.Method, punch.MethodValues) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".method",
				Message: fmt.Sprintf("method must be one of %v", punch.MethodValues),
			})
		}

		if (p.Latitude == nil) != (p.Longitude == nil) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".latitude",
				Message: "latitude and longitude must be sent together",
			})
		} else if p.Latitude != nil && (*p.Latitude < -90 || *p.Latitude > 90 || *p.Longitude < -180 || *p.Longitude > 180) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".latitude",
				Message: "latitude must be between -90 and 90 and longitude between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToPunches converts the validated inputs into punches.
func (r *PunchListRequest) ToPunches() []punch.Punch {
	punches := make([]punch.Punch, 0, len(r.Punches))
	for _, p := range r.Punches {
		ts, _ := validator.IsValidDateTime(p.Timestamp)

		var geo *punch.Geolocation
		if p.Latitude != nil && p.Longitude != nil {
			geo = &punch.Geolocation{Latitude: *p.Latitude, Longitude: *p.Longitude}
		}

		punches = append(punches, punch.Punch{
			ID:          p.ID,
			EmployeeID:  p.EmployeeID,
			Timestamp:   ts,
			Type:        punch.Type(p.Type),
			Method:      punch.Method(p.Method),
			NSR:         p.NSR,
			Geolocation: geo,
		})
	}
	return punches
}
