package timesheet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/stretchr/testify/require"
)

// mustTime parses "2006-01-02 15:04" in UTC.
func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	require.NoError(t, err)
	return ts
}

var nsrCounter int64

func newPunch(t *testing.T, typ punch.Type, at string) punch.Punch {
	t.Helper()
	nsrCounter++
	return punch.Punch{
		ID:         fmt.Sprintf("p-%d", nsrCounter),
		EmployeeID: "emp-1",
		Timestamp:  mustTime(t, at),
		Type:       typ,
		Method:     punch.MethodWeb,
		NSR:        nsrCounter,
	}
}

func newEmployee(t *testing.T) employee.Employee {
	t.Helper()
	start, err := employee.ParseWorkStart("08:00")
	require.NoError(t, err)
	return employee.Employee{
		ID:               "emp-1",
		FullName:         "Ana Souza",
		EmployeeCode:     "0001-0001",
		DailyHours:       8,
		WorkStartTime:    start,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
}

// fullDay returns a regular 08:00-17:00 day with a one hour lunch break.
func fullDay(t *testing.T, date string) []punch.Punch {
	return []punch.Punch{
		newPunch(t, punch.TypeEntrada, date+" 08:00"),
		newPunch(t, punch.TypeIntervaloInicio, date+" 12:00"),
		newPunch(t, punch.TypeIntervaloFim, date+" 13:00"),
		newPunch(t, punch.TypeSaida, date+" 17:00"),
	}
}

// ===== FAKES =====

type fakePunchRepo struct {
	mu      sync.Mutex
	punches []punch.Punch
	err     error
	calls   int
}

func (f *fakePunchRepo) ListPunches(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var result []punch.Punch
	// reverse order so callers cannot depend on store ordering
	for i := len(f.punches) - 1; i >= 0; i-- {
		p := f.punches[i]
		if p.EmployeeID == employeeID && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []employee.Employee
	for _, e := range f.employees {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []employee.Employee
	for _, e := range f.employees {
		if e.EmploymentStatus == employee.EmploymentStatusActive {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakeJustificationRepo struct {
	justifications []justification.Justification
}

func (f *fakeJustificationRepo) ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]justification.Justification, error) {
	var result []justification.Justification
	fromKey, toKey := from.Format("2006-01-02"), to.Format("2006-01-02")
	for _, j := range f.justifications {
		key := j.Date.Format("2006-01-02")
		if j.EmployeeID == employeeID && key >= fromKey && key <= toKey {
			result = append(result, j)
		}
	}
	return result, nil
}

type fakeSettings struct {
	values map[string]int
	err    error
}

func (f *fakeSettings) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return fallback, nil
}

var errStoreDown = errors.New("store unavailable")
