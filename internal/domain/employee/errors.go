package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidWorkStart = errors.New("work start time must be in HH:MM or HH:MM:SS format")
)
