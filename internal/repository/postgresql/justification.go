package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/database"
	"github.com/google/uuid"
)

type justificationRepositoryImpl struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepositoryImpl{db: db}
}

// ListForRange implements justification.JustificationRepository.
func (j *justificationRepositoryImpl) ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]justification.Justification, error) {
	if err := uuid.Validate(employeeID); err != nil {
		return []justification.Justification{}, nil
	}

	// dates are compared as calendar days of the caller's location
	query := `
		SELECT id, employee_id, date, status, reason, created_at, updated_at
		FROM justifications
		WHERE employee_id = $1
		  AND date >= $2::date
		  AND date <= $3::date
		ORDER BY date, created_at, id
	`

	rows, err := j.db.Query(ctx, query, employeeID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query justifications: %w", err)
	}
	defer rows.Close()

	justifications := []justification.Justification{}
	for rows.Next() {
		var js justification.Justification
		err := rows.Scan(&js.ID, &js.EmployeeID, &js.Date, &js.Status, &js.Reason, &js.CreatedAt, &js.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		justifications = append(justifications, js)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return justifications, nil
}
