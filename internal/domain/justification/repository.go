package justification

import (
	"context"
	"time"
)

type JustificationRepository interface {
	// ListForRange returns justifications whose date falls in [from, to], both inclusive.
	ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]Justification, error)
}
