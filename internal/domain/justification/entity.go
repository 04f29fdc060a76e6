package justification

import "time"

// Justification is an employee-submitted explanation for an absence or a missing
// punch on a given day, reviewed by a manager.
type Justification struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       time.Time `json:"date"`
	Status     Status    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)
