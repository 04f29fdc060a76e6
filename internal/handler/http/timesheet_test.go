package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/auth"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
)

type stubTimesheetService struct {
	lastRange      timesheet.DateRangeRequest
	lastMonthly    timesheet.MonthlyTimesheetRequest
	lastDepartment timesheet.DepartmentTimesheetRequest
	lastPunches    []punch.Punch
	err            error
}

func (s *stubTimesheetService) CalculateHoursWorked(ctx context.Context, req timesheet.DateRangeRequest) (timesheet.PeriodSummary, error) {
	s.lastRange = req
	if s.err != nil {
		return timesheet.PeriodSummary{}, s.err
	}
	if err := req.Validate(); err != nil {
		return timesheet.PeriodSummary{}, err
	}
	return timesheet.PeriodSummary{TotalHours: 18, TotalDays: 2, ExpectedHours: 16, Balance: 2}, nil
}

func (s *stubTimesheetService) CalculateDailyHours(ctx context.Context, punches []punch.Punch) (timesheet.DailyHours, error) {
	s.lastPunches = punches
	return timesheet.DailyHours{TotalHours: 9}, nil
}

func (s *stubTimesheetService) ValidatePunchPairs(ctx context.Context, punches []punch.Punch) (timesheet.Validation, error) {
	s.lastPunches = punches
	return timesheet.Validation{Valid: true, Errors: []timesheet.Issue{}, Warnings: []timesheet.Issue{}}, nil
}

func (s *stubTimesheetService) GenerateMonthlyTimesheet(ctx context.Context, req timesheet.MonthlyTimesheetRequest) (timesheet.MonthlyTimesheet, error) {
	s.lastMonthly = req
	return timesheet.MonthlyTimesheet{Month: req.Month}, s.err
}

func (s *stubTimesheetService) GenerateDepartmentTimesheets(ctx context.Context, req timesheet.DepartmentTimesheetRequest) ([]timesheet.MonthlyTimesheet, error) {
	s.lastDepartment = req
	return []timesheet.MonthlyTimesheet{{Month: req.Month}}, s.err
}

func (s *stubTimesheetService) FindMissingPunches(ctx context.Context, req timesheet.DateRangeRequest) ([]timesheet.MissingPunchRecord, error) {
	s.lastRange = req
	return []timesheet.MissingPunchRecord{}, s.err
}

func (s *stubTimesheetService) FindLateArrivals(ctx context.Context, req timesheet.DateRangeRequest) ([]timesheet.LateArrivalRecord, error) {
	s.lastRange = req
	return []timesheet.LateArrivalRecord{{EmployeeID: req.EmployeeID, MinutesLate: 15}}, s.err
}

func (s *stubTimesheetService) CalculateOvertime(ctx context.Context, req timesheet.DateRangeRequest) (timesheet.OvertimeReport, error) {
	s.lastRange = req
	return timesheet.OvertimeReport{DailyOvertime: []timesheet.DailyOvertime{}}, s.err
}

type routerFixture struct {
	svc     *stubTimesheetService
	jwt     jwt.Service
	handler http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	svc := &stubTimesheetService{}
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	return &routerFixture{
		svc:     svc,
		jwt:     jwtSvc,
		handler: NewRouter(RouterConfig{Env: "test", Version: "test"}, jwtSvc, NewTimesheetHandler(svc)),
	}
}

func (f *routerFixture) do(t *testing.T, method, path, employeeID string, role auth.Role, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if role != "" {
		token, _, err := f.jwt.GenerateAccessToken(employeeID, role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTimesheetRoutes_RequireToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/timesheets/emp-1/hours?start_date=2024-03-01&end_date=2024-03-31", "", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTimesheetRoutes_RejectForeignSecret(t *testing.T) {
	f := newRouterFixture(t)
	token, _, err := jwt.NewJWTService("another-secret", "1h").GenerateAccessToken("emp-1", auth.RoleEmployee)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/timesheets/emp-1/overtime", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetHoursWorked(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/timesheets/emp-1/hours?start_date=2024-03-01&end_date=2024-03-31", "emp-1", auth.RoleEmployee, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, timesheet.DateRangeRequest{EmployeeID: "emp-1", StartDate: "2024-03-01", EndDate: "2024-03-31"}, f.svc.lastRange)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 2.0, data["balance"])
}

func TestGetHoursWorked_ValidationError(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/timesheets/emp-1/hours?start_date=2024-03-31", "emp-1", auth.RoleEmployee, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetHoursWorked_InvalidRange(t *testing.T) {
	f := newRouterFixture(t)

	for _, query := range []string{
		"start_date=2024-03-31&end_date=2024-03-01",
		"start_date=2023-01-01&end_date=2024-01-02",
	} {
		rec := f.do(t, http.MethodGet, "/api/v1/timesheets/emp-1/hours?"+query, "emp-1", auth.RoleEmployee, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestEmployeeAccess(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		role       auth.Role
		wantStatus int
	}{
		{"employee reads self", "emp-1", auth.RoleEmployee, http.StatusOK},
		{"employee reads colleague", "emp-2", auth.RoleEmployee, http.StatusForbidden},
		{"manager reads anyone", "emp-9", auth.RoleManager, http.StatusOK},
		{"owner reads anyone", "", auth.RoleOwner, http.StatusOK},
		{"employee without employee claim", "", auth.RoleEmployee, http.StatusUnauthorized},
	}

	paths := []string{
		"/api/v1/timesheets/emp-1/monthly?month=2024-03",
		"/api/v1/timesheets/emp-1/missing-punches?start_date=2024-03-01&end_date=2024-03-31",
		"/api/v1/timesheets/emp-1/late-arrivals?start_date=2024-03-01&end_date=2024-03-31",
		"/api/v1/timesheets/emp-1/overtime?start_date=2024-03-01&end_date=2024-03-31",
	}

	for _, tt := range tests {
		for _, path := range paths {
			t.Run(fmt.Sprintf("%s %s", tt.name, path), func(t *testing.T) {
				f := newRouterFixture(t)

				rec := f.do(t, http.MethodGet, path, tt.caller, tt.role, nil)

				assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			})
		}
	}
}

func TestGetMonthly_PassesMonth(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/timesheets/emp-1/monthly?month=2024-02", "emp-1", auth.RoleEmployee, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, timesheet.MonthlyTimesheetRequest{EmployeeID: "emp-1", Month: "2024-02"}, f.svc.lastMonthly)
}

func TestGetMonthly_EmployeeNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.svc.err = fmt.Errorf("failed to get employee: %w", employee.ErrEmployeeNotFound)

	rec := f.do(t, http.MethodGet, "/api/v1/timesheets/emp-404/monthly?month=2024-02", "emp-1", auth.RoleManager, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLateArrivals_StoreFailure(t *testing.T) {
	f := newRouterFixture(t)
	f.svc.err = fmt.Errorf("failed to list punches: %w", context.DeadlineExceeded)

	rec := f.do(t, http.MethodGet, "/api/v1/timesheets/emp-1/late-arrivals?start_date=2024-03-01&end_date=2024-03-31", "emp-1", auth.RoleEmployee, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestDepartmentTimesheets_ManagerOnly(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/departments/ops/timesheets?month=2024-03", "emp-1", auth.RoleEmployee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/departments/ops/timesheets?month=2024-03", "emp-9", auth.RoleManager, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, timesheet.DepartmentTimesheetRequest{DepartmentID: "ops", Month: "2024-03"}, f.svc.lastDepartment)
}

func TestCalculateDailyHours(t *testing.T) {
	f := newRouterFixture(t)
	body := []byte(`{"punches":[
		{"id":"p-1","employee_id":"emp-1","timestamp":"2024-03-04T08:00:00-03:00","type":"entrada","method":"web","nsr":1},
		{"id":"p-2","employee_id":"emp-1","timestamp":"2024-03-04T17:00:00-03:00","type":"saida","method":"web","nsr":2}
	]}`)

	rec := f.do(t, http.MethodPost, "/api/v1/timesheets/daily-hours", "emp-1", auth.RoleEmployee, body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, f.svc.lastPunches, 2)
	assert.Equal(t, punch.TypeSaida, f.svc.lastPunches[1].Type)
	assert.Equal(t, int64(2), f.svc.lastPunches[1].NSR)
}

func TestValidatePunches_BadBody(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/timesheets/validate", "emp-1", auth.RoleEmployee, []byte(`{"punches": [`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/timesheets/validate", "emp-1", auth.RoleEmployee,
		[]byte(`{"punches":[{"timestamp":"yesterday","type":"entrada"}]}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, f.svc.lastPunches)
}

func TestHeartbeat(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/", "", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
