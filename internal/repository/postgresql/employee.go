package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

const employeeColumns = `
	id, full_name, COALESCE(employee_code, ''), department_id, manager_id,
	daily_hours::float8, to_char(work_start_time, 'HH24:MI:SS'), employment_status,
	created_at, updated_at`

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	// ids are UUIDs; anything else cannot match a row
	if err := uuid.Validate(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(e.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// ListByDepartment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE department_id = $1 AND employment_status = $2
		ORDER BY full_name, id
	`
	return e.list(ctx, query, departmentID, employee.EmploymentStatusActive)
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employment_status = $1
		ORDER BY full_name, id
	`
	return e.list(ctx, query, employee.EmploymentStatusActive)
}

func (e *employeeRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	rows, err := e.db.Query(ctx, query, args...)
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

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var workStart string
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.EmployeeCode, &emp.DepartmentID, &emp.ManagerID,
		&emp.DailyHours, &workStart, &emp.EmploymentStatus,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.WorkStartTime, err = employee.ParseWorkStart(workStart)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("employee %s: %w", emp.ID, err)
	}

	return emp, nil
}
