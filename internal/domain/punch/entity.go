package punch

import (
	"sort"
	"time"
)

// Punch is a single clock event. Punches are produced by the capture subsystem and
// are never modified afterwards.
type Punch struct {
	ID          string       `json:"id"`
	EmployeeID  string       `json:"employee_id"`
	Timestamp   time.Time    `json:"timestamp"`
	Type        Type         `json:"type"`
	Method      Method       `json:"method"`
	NSR         int64        `json:"nsr"` // sequential record number stamped at capture time
	Geolocation *Geolocation `json:"geolocation,omitempty"`
	CreatedAt   time.Time    `json:"-"`
}

type Type string

const (
	TypeEntrada         Type = "entrada"          // clock-in
	TypeSaida           Type = "saida"            // clock-out
	TypeIntervaloInicio Type = "intervalo_inicio" // break start
	TypeIntervaloFim    Type = "intervalo_fim"    // break end
)

// IsValid reports whether t is one of the four punch types the pairing rules know.
func (t Type) IsValid() bool {
	switch t {
	case TypeEntrada, TypeSaida, TypeIntervaloInicio, TypeIntervaloFim:
		return true
	}
	return false
}

type Method string

const (
	MethodWeb       Method = "web"
	MethodMobile    Method = "mobile"
	MethodBiometric Method = "biometric"
	MethodFacial    Method = "facial"
	MethodManual    Method = "manual"
)

var MethodValues = []string{
	string(MethodWeb),
	string(MethodMobile),
	string(MethodBiometric),
	string(MethodFacial),
	string(MethodManual),
}

type Geolocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SortPunches returns a copy of punches ordered by timestamp. Ties are broken by
// NSR and then by ID so the order never depends on how the store returned rows.
func SortPunches(punches []Punch) []Punch {
	sorted := make([]Punch, len(punches))
	copy(sorted, punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if a.NSR != b.NSR {
			return a.NSR < b.NSR
		}
		return a.ID < b.ID
	})
	return sorted
}
