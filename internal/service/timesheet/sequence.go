package timesheet

import (
	"fmt"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/timesheet"
)

// ValidatePunchPairs walks a single day's punches in time order and reports pairing
// anomalies. A single cursor tracks which punch type is expected next; it starts at
// entrada and the day may end in any state.
func ValidatePunchPairs(punches []punch.Punch) timesheet.Validation {
	sorted := punch.SortPunches(punches)

	result := timesheet.Validation{
		Errors:   []timesheet.Issue{},
		Warnings: []timesheet.Issue{},
	}

	expected := punch.TypeEntrada
	for _, p := range sorted {
		if !p.Type.IsValid() {
			result.Errors = append(result.Errors, newIssue(p, timesheet.IssueUnknownPunchType, fmt.Sprintf("unknown punch type %q", p.Type)))
			continue
		}

		switch p.Type {
		case punch.TypeEntrada:
			// A new entrada always takes precedence over whatever was open.
			if expected != punch.TypeEntrada {
				result.Warnings = append(result.Warnings, newIssue(p, timesheet.IssueEntradaWithoutSaida, "entrada without prior saída"))
			}
			expected = punch.TypeSaida

		case punch.TypeSaida:
			if expected != punch.TypeSaida {
				result.Errors = append(result.Errors, newIssue(p, timesheet.IssueSaidaWithoutEntrada, "saída without matching entrada"))
			}
			expected = punch.TypeEntrada

		case punch.TypeIntervaloInicio:
			expected = punch.TypeIntervaloFim

		case punch.TypeIntervaloFim:
			if expected != punch.TypeIntervaloFim {
				result.Errors = append(result.Errors, newIssue(p, timesheet.IssueIntervaloFimWithoutInicio, "fim de intervalo without início"))
			}
			expected = punch.TypeSaida
		}
	}

	if n := len(sorted); n > 0 && sorted[n-1].Type == punch.TypeEntrada {
		result.Warnings = append(result.Warnings, newIssue(sorted[n-1], timesheet.IssueDayNotFinalized, "day not finalized - missing saída"))
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func newIssue(p punch.Punch, code timesheet.IssueCode, message string) timesheet.Issue {
	return timesheet.Issue{
		Code:      code,
		Message:   message,
		PunchID:   p.ID,
		NSR:       p.NSR,
		Timestamp: p.Timestamp,
	}
}
