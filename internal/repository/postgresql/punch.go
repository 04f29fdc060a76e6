package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/database"
	"github.com/google/uuid"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListPunches implements punch.PunchRepository.
func (p *punchRepositoryImpl) ListPunches(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	if err := uuid.Validate(employeeID); err != nil {
		return []punch.Punch{}, nil
	}

	query := `
		SELECT id, employee_id, timestamp, type, method, nsr, latitude, longitude, created_at
		FROM punches
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp, nsr, id
	`

	rows, err := p.db.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	punches := []punch.Punch{}
	for rows.Next() {
		var pu punch.Punch
		var lat, lon *float64
		err := rows.Scan(
			&pu.ID, &pu.EmployeeID, &pu.Timestamp, &pu.Type, &pu.Method, &pu.NSR,
			&lat, &lon, &pu.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		if lat != nil && lon != nil {
			pu.Geolocation = &punch.Geolocation{Latitude: *lat, Longitude: *lon}
		}
		punches = append(punches, pu)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}
