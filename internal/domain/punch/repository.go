package punch

import (
	"context"
	"time"
)

// PunchRepository is the read side of the punch store.
type PunchRepository interface {
	// ListPunches returns the employee's punches with from <= Timestamp < to.
	// Callers must not rely on the returned order.
	ListPunches(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
}
