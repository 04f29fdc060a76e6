package auth

import "errors"

var (
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrEmployeeClaimMissing  = errors.New("token carries no employee")
	ErrManagerAccessRequired = errors.New("manager or owner access required")
)
