package timesheet

import (
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailyRecords_IncludesEmptyDays(t *testing.T) {
	emp := newEmployee(t)
	start := mustTime(t, "2024-03-04 00:00")
	end := mustTime(t, "2024-03-06 00:00")

	records := BuildDailyRecords(emp, fullDay(t, "2024-03-05"), nil, start, end, nil)

	require.Len(t, records, 3)

	empty := records[0]
	assert.Equal(t, "2024-03-04", empty.Date)
	assert.Equal(t, "Monday", empty.Weekday)
	assert.Empty(t, empty.Punches)
	assert.NotNil(t, empty.Punches)
	assert.Equal(t, 0.0, empty.TotalHours)
	assert.Equal(t, 0.0, empty.ExpectedHours)
	assert.Equal(t, 0.0, empty.BalanceHours)
	assert.True(t, empty.Validation.Valid)

	worked := records[1]
	assert.Equal(t, "2024-03-05", worked.Date)
	assert.Len(t, worked.Punches, 4)
	assert.Equal(t, 9.0, worked.TotalHours)
	assert.Equal(t, 1.0, worked.BreakHours)
	assert.Equal(t, 8.0, worked.ExpectedHours)
	assert.Equal(t, 1.0, worked.BalanceHours)
}

func TestBuildDailyRecords_AttachesJustifications(t *testing.T) {
	emp := newEmployee(t)
	day := mustTime(t, "2024-03-04 00:00")

	records := BuildDailyRecords(emp, nil, []justification.Justification{
		{ID: "j-1", EmployeeID: "emp-1", Date: day, Status: justification.StatusApproved},
	}, day, day, nil)

	require.Len(t, records, 1)
	require.Len(t, records[0].Justifications, 1)
	assert.Equal(t, "j-1", records[0].Justifications[0].ID)
}

func TestBuildDailyRecords_UnfinishedDayHasNoExpectedHours(t *testing.T) {
	emp := newEmployee(t)
	day := mustTime(t, "2024-03-04 00:00")

	records := BuildDailyRecords(emp, []punch.Punch{
		newPunch(t, punch.TypeEntrada, "2024-03-04 08:00"),
	}, nil, day, day, nil)

	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].TotalHours)
	assert.Equal(t, 0.0, records[0].ExpectedHours)
	assert.True(t, records[0].Validation.Valid)
	assert.Len(t, records[0].Validation.Warnings, 1)
}

func TestSummarize_BalanceLaw(t *testing.T) {
	emp := newEmployee(t)
	start := mustTime(t, "2024-03-04 00:00")
	end := mustTime(t, "2024-03-06 00:00")

	punches := append(fullDay(t, "2024-03-04"), fullDay(t, "2024-03-06")...)
	records := BuildDailyRecords(emp, punches, nil, start, end, nil)
	period := timesheet.Period{Start: "2024-03-04", End: "2024-03-06"}

	summary := Summarize(emp, records, period)

	assert.Equal(t, period, summary.Period)
	assert.Equal(t, 18.0, summary.TotalHours)
	assert.Equal(t, 2, summary.TotalDays, "empty days are not counted")
	assert.Equal(t, 9.0, summary.AverageHoursPerDay)
	assert.Equal(t, 16.0, summary.ExpectedHours)
	assert.Equal(t, 2.0, summary.Balance)
	assert.Equal(t, summary.TotalHours-summary.ExpectedHours, summary.Balance)
}

func TestSummarize_NoWork(t *testing.T) {
	emp := newEmployee(t)
	day := mustTime(t, "2024-03-04 00:00")

	summary := Summarize(emp, BuildDailyRecords(emp, nil, nil, day, day, nil), timesheet.Period{})

	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0.0, summary.AverageHoursPerDay)
	assert.Equal(t, 0.0, summary.Balance)
}

func TestCalculateOvertime(t *testing.T) {
	emp := newEmployee(t)
	start := mustTime(t, "2024-03-04 00:00")
	end := mustTime(t, "2024-03-06 00:00")

	punches := fullDay(t, "2024-03-04")
	punches = append(punches,
		newPunch(t, punch.TypeEntrada, "2024-03-05 08:00"),
		newPunch(t, punch.TypeSaida, "2024-03-05 14:00"),
		newPunch(t, punch.TypeEntrada, "2024-03-06 08:00"),
		newPunch(t, punch.TypeSaida, "2024-03-06 18:30"),
	)
	records := BuildDailyRecords(emp, punches, nil, start, end, nil)

	report := CalculateOvertime(emp, records)

	require.Len(t, report.DailyOvertime, 2, "short days are not listed")
	assert.Equal(t, "2024-03-04", report.DailyOvertime[0].Date)
	assert.Equal(t, 1.0, report.DailyOvertime[0].OvertimeHours)
	assert.Equal(t, "2024-03-06", report.DailyOvertime[1].Date)
	assert.Equal(t, 10.5, report.DailyOvertime[1].TotalHours)
	assert.Equal(t, 8.0, report.DailyOvertime[1].ExpectedHours)
	assert.Equal(t, 2.5, report.DailyOvertime[1].OvertimeHours)
	assert.Equal(t, 3.5, report.TotalOvertime)
}

func TestCalculateOvertime_None(t *testing.T) {
	report := CalculateOvertime(newEmployee(t), nil)

	assert.Equal(t, 0.0, report.TotalOvertime)
	assert.NotNil(t, report.DailyOvertime)
	assert.Empty(t, report.DailyOvertime)
}
