package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrEmployeeClaimMissing):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, timesheet.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timesheet.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
