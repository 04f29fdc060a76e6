package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
)

type punchRepositoryImpl struct {
	db *sql.DB
}

func NewPunchRepository(db *sql.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListPunches implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListPunches(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_id, timestamp, type, method, nsr, latitude, longitude, created_at
		FROM punches
		WHERE employee_id = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY timestamp, nsr, id`,
		employeeID, formatTimestamp(from), formatTimestamp(to),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	punches := []punch.Punch{}
	for rows.Next() {
		var p punch.Punch
		var ts, createdAt string
		var lat, lon sql.NullFloat64

		if err := rows.Scan(&p.ID, &p.EmployeeID, &ts, &p.Type, &p.Method, &p.NSR, &lat, &lon, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		if p.Timestamp, err = parseTimestamp(ts); err != nil {
			return nil, fmt.Errorf("parsing punch timestamp: %w", err)
		}
		if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if lat.Valid && lon.Valid {
			p.Geolocation = &punch.Geolocation{Latitude: lat.Float64, Longitude: lon.Float64}
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}
