package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
)

type justificationRepositoryImpl struct {
	db *sql.DB
}

func NewJustificationRepository(db *sql.DB) justification.JustificationRepository {
	return &justificationRepositoryImpl{db: db}
}

// ListForRange implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]justification.Justification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_id, date, status, reason, created_at, updated_at
		FROM justifications
		WHERE employee_id = ? AND date >= ? AND date <= ?
		ORDER BY date, created_at, id`,
		employeeID, from.Format(dateLayout), to.Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query justifications: %w", err)
	}
	defer rows.Close()

	justifications := []justification.Justification{}
	for rows.Next() {
		var j justification.Justification
		var date, createdAt, updatedAt string

		if err := rows.Scan(&j.ID, &j.EmployeeID, &date, &j.Status, &j.Reason, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		if j.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parsing justification date: %w", err)
		}
		if j.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if j.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		justifications = append(justifications, j)
	}
	return justifications, rows.Err()
}
