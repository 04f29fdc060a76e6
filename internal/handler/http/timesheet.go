package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-timekeeping/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-timekeeping/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxPunchListBody = 1 << 20

type TimesheetHandler interface {
	GetHoursWorked(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetMissingPunches(w http.ResponseWriter, r *http.Request)
	GetLateArrivals(w http.ResponseWriter, r *http.Request)
	GetOvertime(w http.ResponseWriter, r *http.Request)
	CalculateDailyHours(w http.ResponseWriter, r *http.Request)
	ValidatePunches(w http.ResponseWriter, r *http.Request)
	GetDepartmentTimesheets(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// GetHoursWorked implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetHoursWorked(w http.ResponseWriter, r *http.Request) {
	req, ok := dateRangeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.CalculateHoursWorked(r.Context(), req)
	if err != nil {
		h.fail(w, "Failed to calculate hours worked", req.EmployeeID, err)
		return
	}

	response.Success(w, result)
}

// GetMonthly implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if err := authorizeEmployee(r, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	req := timesheet.MonthlyTimesheetRequest{
		EmployeeID: employeeID,
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.timesheetService.GenerateMonthlyTimesheet(r.Context(), req)
	if err != nil {
		h.fail(w, "Failed to generate monthly timesheet", employeeID, err)
		return
	}

	response.Success(w, result)
}

// GetMissingPunches implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMissingPunches(w http.ResponseWriter, r *http.Request) {
	req, ok := dateRangeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.FindMissingPunches(r.Context(), req)
	if err != nil {
		h.fail(w, "Failed to find missing punches", req.EmployeeID, err)
		return
	}

	response.Success(w, result)
}

// GetLateArrivals implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetLateArrivals(w http.ResponseWriter, r *http.Request) {
	req, ok := dateRangeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.FindLateArrivals(r.Context(), req)
	if err != nil {
		h.fail(w, "Failed to find late arrivals", req.EmployeeID, err)
		return
	}

	response.Success(w, result)
}

// GetOvertime implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetOvertime(w http.ResponseWriter, r *http.Request) {
	req, ok := dateRangeRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.CalculateOvertime(r.Context(), req)
	if err != nil {
		h.fail(w, "Failed to calculate overtime", req.EmployeeID, err)
		return
	}

	response.Success(w, result)
}

// CalculateDailyHours implements TimesheetHandler.
func (h *timesheetHandlerImpl) CalculateDailyHours(w http.ResponseWriter, r *http.Request) {
	req, ok := punchListRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.CalculateDailyHours(r.Context(), req.ToPunches())
	if err != nil {
		h.fail(w, "Failed to calculate daily hours", "", err)
		return
	}

	response.Success(w, result)
}

// ValidatePunches implements TimesheetHandler.
func (h *timesheetHandlerImpl) ValidatePunches(w http.ResponseWriter, r *http.Request) {
	req, ok := punchListRequest(w, r)
	if !ok {
		return
	}

	result, err := h.timesheetService.ValidatePunchPairs(r.Context(), req.ToPunches())
	if err != nil {
		h.fail(w, "Failed to validate punches", "", err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentTimesheets implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetDepartmentTimesheets(w http.ResponseWriter, r *http.Request) {
	req := timesheet.DepartmentTimesheetRequest{
		DepartmentID: chi.URLParam(r, "departmentID"),
		Month:        r.URL.Query().Get("month"),
	}

	result, err := h.timesheetService.GenerateDepartmentTimesheets(r.Context(), req)
	if err != nil {
		slog.Error("Failed to generate department timesheets", "department_id", req.DepartmentID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) fail(w http.ResponseWriter, msg, employeeID string, err error) {
	slog.Error(msg, "employee_id", employeeID, "error", err)
	response.HandleError(w, err)
}

// dateRangeRequest reads the range query of an employee route after the access check.
func dateRangeRequest(w http.ResponseWriter, r *http.Request) (timesheet.DateRangeRequest, bool) {
	employeeID := chi.URLParam(r, "employeeID")
	if err := authorizeEmployee(r, employeeID); err != nil {
		response.HandleError(w, err)
		return timesheet.DateRangeRequest{}, false
	}

	q := r.URL.Query()
	return timesheet.DateRangeRequest{
		EmployeeID: employeeID,
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}, true
}

func punchListRequest(w http.ResponseWriter, r *http.Request) (timesheet.PunchListRequest, bool) {
	var req timesheet.PunchListRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxPunchListBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode punch list", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}

	return req, true
}

// authorizeEmployee lets employees read only themselves; managers and owners read anyone.
func authorizeEmployee(r *http.Request, employeeID string) error {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return auth.ErrInvalidToken
	}
	if !principal.CanAccessEmployee(employeeID) {
		return timesheet.ErrForbidden
	}
	return nil
}
