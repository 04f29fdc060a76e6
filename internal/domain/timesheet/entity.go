package timesheet

import (
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
)

// Everything in this file is derived from punches on demand and never persisted.

const DateLayout = "2006-01-02"

type WorkInterval struct {
	Start         punch.Punch `json:"start"`
	End           punch.Punch `json:"end"`
	DurationHours float64     `json:"duration_hours"`
}

type BreakInterval struct {
	Start         punch.Punch `json:"start"`
	End           punch.Punch `json:"end"`
	DurationHours float64     `json:"duration_hours"`
}

// IssueCode identifies a pairing anomaly found while walking a day's punches.
type IssueCode string

const (
	// errors
	IssueSaidaWithoutEntrada       IssueCode = "saida_without_entrada"
	IssueIntervaloFimWithoutInicio IssueCode = "intervalo_fim_without_inicio"
	IssueUnknownPunchType          IssueCode = "unknown_punch_type"

	// warnings
	IssueEntradaWithoutSaida IssueCode = "entrada_without_saida"
	IssueDayNotFinalized     IssueCode = "day_not_finalized"
)

type Issue struct {
	Code      IssueCode `json:"code"`
	Message   string    `json:"message"`
	PunchID   string    `json:"punch_id,omitempty"`
	NSR       int64     `json:"nsr,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Validation is the outcome of checking a day's punch sequence. Warnings never
// block downstream calculation.
type Validation struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

type DailyHours struct {
	TotalHours     float64         `json:"total_hours"`
	BreakHours     float64         `json:"break_hours"`
	WorkIntervals  []WorkInterval  `json:"work_intervals"`
	BreakIntervals []BreakInterval `json:"break_intervals"`
}

type DailyRecord struct {
	Date           string                        `json:"date"`
	EmployeeID     string                        `json:"employee_id"`
	Weekday        string                        `json:"weekday"`
	Punches        []punch.Punch                 `json:"punches"`
	WorkIntervals  []WorkInterval                `json:"work_intervals"`
	BreakIntervals []BreakInterval               `json:"break_intervals"`
	TotalHours     float64                       `json:"total_hours"`
	BreakHours     float64                       `json:"break_hours"`
	ExpectedHours  float64                       `json:"expected_hours"`
	BalanceHours   float64                       `json:"balance_hours"`
	Validation     Validation                    `json:"validation"`
	Justifications []justification.Justification `json:"justifications"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PeriodSummary struct {
	Period             Period  `json:"period"`
	TotalHours         float64 `json:"total_hours"`
	TotalDays          int     `json:"total_days"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
	ExpectedHours      float64 `json:"expected_hours"`
	Balance            float64 `json:"balance"`
}

type LateArrivalRecord struct {
	EmployeeID     string    `json:"employee_id"`
	Date           string    `json:"date"`
	PunchID        string    `json:"punch_id"`
	NSR            int64     `json:"nsr"`
	PunchTime      time.Time `json:"punch_time"`
	ScheduledStart time.Time `json:"scheduled_start"`
	MinutesLate    int       `json:"minutes_late"`
}

type MissingPunchRecord struct {
	EmployeeID          string                `json:"employee_id"`
	Date                string                `json:"date"`
	Weekday             string                `json:"weekday"`
	HasJustification    bool                  `json:"has_justification"`
	JustificationStatus *justification.Status `json:"justification_status,omitempty"`
}

type DailyOvertime struct {
	Date          string  `json:"date"`
	TotalHours    float64 `json:"total_hours"`
	ExpectedHours float64 `json:"expected_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type OvertimeReport struct {
	TotalOvertime float64         `json:"total_overtime"`
	DailyOvertime []DailyOvertime `json:"daily_overtime"`
}

type NSRRange struct {
	First int64 `json:"first"`
	Last  int64 `json:"last"`
}

// EmployeeSnapshot freezes the employee configuration a timesheet was computed with.
type EmployeeSnapshot struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	EmployeeCode  string  `json:"employee_code,omitempty"`
	DepartmentID  *string `json:"department_id,omitempty"`
	ManagerID     *string `json:"manager_id,omitempty"`
	DailyHours    float64 `json:"daily_hours"`
	WorkStartTime string  `json:"work_start_time"`
}

type MonthlyTimesheet struct {
	Employee       EmployeeSnapshot     `json:"employee"`
	Month          string               `json:"month"`
	Period         Period               `json:"period"`
	DailyRecords   []DailyRecord        `json:"daily_records"`
	Summary        PeriodSummary        `json:"summary"`
	Overtime       OvertimeReport       `json:"overtime"`
	LateArrivals   []LateArrivalRecord  `json:"late_arrivals"`
	MissingPunches []MissingPunchRecord `json:"missing_punches"`
	NSRRange       *NSRRange            `json:"nsr_range"`
	GeneratedAt    time.Time            `json:"generated_at"`
}
