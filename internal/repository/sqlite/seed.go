package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/google/uuid"
)

// The engine only reads punches. These writers exist to seed local stores and tests.

// CreateEmployee inserts emp, generating an ID when empty.
func CreateEmployee(ctx context.Context, db *sql.DB, emp employee.Employee) (employee.Employee, error) {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if emp.EmploymentStatus == "" {
		emp.EmploymentStatus = employee.EmploymentStatusActive
	}

	now := nowUTC()
	_, err := db.ExecContext(ctx, `
		INSERT INTO employees (id, full_name, employee_code, department_id, manager_id,
			daily_hours, work_start_time, employment_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		emp.ID, emp.FullName, emp.EmployeeCode,
		nullableStringToValue(emp.DepartmentID), nullableStringToValue(emp.ManagerID),
		emp.DailyHours, emp.WorkStartTime.Format("15:04:05"), emp.EmploymentStatus, now, now,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return emp, nil
}

// CreatePunch inserts p, generating an ID when empty.
func CreatePunch(ctx context.Context, db *sql.DB, p punch.Punch) (punch.Punch, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	var lat, lon interface{}
	if p.Geolocation != nil {
		lat, lon = p.Geolocation.Latitude, p.Geolocation.Longitude
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO punches (id, employee_id, timestamp, type, method, nsr, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.EmployeeID, formatTimestamp(p.Timestamp), p.Type, p.Method, p.NSR, lat, lon, nowUTC(),
	)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}
	return p, nil
}

// CreateJustification inserts j, generating an ID when empty.
func CreateJustification(ctx context.Context, db *sql.DB, j justification.Justification) (justification.Justification, error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Status == "" {
		j.Status = justification.StatusPending
	}

	now := nowUTC()
	_, err := db.ExecContext(ctx, `
		INSERT INTO justifications (id, employee_id, date, status, reason, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.EmployeeID, j.Date.Format(dateLayout), j.Status, j.Reason, now, now,
	)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}
	return j, nil
}

// SetSetting upserts a settings value.
func SetSetting(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}
