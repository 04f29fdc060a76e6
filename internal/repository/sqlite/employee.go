package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	db *sql.DB
}

const employeeColumns = `id, full_name, employee_code, department_id, manager_id,
	daily_hours, work_start_time, employment_status, created_at, updated_at`

func NewEmployeeRepository(db *sql.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)

	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return emp, nil
}

// ListByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees
		WHERE department_id = ? AND employment_status = ?
		ORDER BY full_name, id`, departmentID, employee.EmploymentStatusActive)
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employees
		WHERE employment_status = ?
		ORDER BY full_name, id`, employee.EmploymentStatusActive)
}

func (r *employeeRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row scanner) (employee.Employee, error) {
	var emp employee.Employee
	var departmentID, managerID sql.NullString
	var workStart, createdAt, updatedAt string

	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.EmployeeCode, &departmentID, &managerID,
		&emp.DailyHours, &workStart, &emp.EmploymentStatus, &createdAt, &updatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.DepartmentID = nullableString(departmentID)
	emp.ManagerID = nullableString(managerID)

	if emp.WorkStartTime, err = employee.ParseWorkStart(workStart); err != nil {
		return employee.Employee{}, fmt.Errorf("employee %s: %w", emp.ID, err)
	}
	if emp.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return employee.Employee{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if emp.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return employee.Employee{}, fmt.Errorf("parsing updated_at: %w", err)
	}

	return emp, nil
}
