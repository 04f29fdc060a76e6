package timesheet

import (
	"testing"

	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairPunches_FullDay(t *testing.T) {
	day := fullDay(t, "2024-03-04")

	work, breaks := PairPunches(day)

	require.Len(t, work, 1)
	assert.Equal(t, day[0].ID, work[0].Start.ID)
	assert.Equal(t, day[3].ID, work[0].End.ID)
	assert.Equal(t, 9.0, work[0].DurationHours, "work interval is gross, not net of the break")

	require.Len(t, breaks, 1)
	assert.Equal(t, day[1].ID, breaks[0].Start.ID)
	assert.Equal(t, day[2].ID, breaks[0].End.ID)
	assert.Equal(t, 1.0, breaks[0].DurationHours)
}

func TestPairPunches_LastEntradaWins(t *testing.T) {
	late := newPunch(t, punch.TypeEntrada, "2024-03-04 09:00")
	saida := newPunch(t, punch.TypeSaida, "2024-03-04 17:00")

	work, _ := PairPunches([]punch.Punch{
		newPunch(t, punch.TypeEntrada, "2024-03-04 08:00"),
		late,
		saida,
	})

	require.Len(t, work, 1)
	assert.Equal(t, late.ID, work[0].Start.ID)
	assert.Equal(t, saida.ID, work[0].End.ID)
	assert.Equal(t, 8.0, work[0].DurationHours)
}

func TestPairPunches_DanglingPunchesProduceNothing(t *testing.T) {
	work, breaks := PairPunches([]punch.Punch{
		newPunch(t, punch.TypeSaida, "2024-03-04 07:00"),
		newPunch(t, punch.TypeIntervaloFim, "2024-03-04 07:30"),
		newPunch(t, punch.TypeEntrada, "2024-03-04 08:00"),
		newPunch(t, punch.TypeIntervaloInicio, "2024-03-04 12:00"),
	})

	assert.Empty(t, work)
	assert.Empty(t, breaks)
	assert.NotNil(t, work)
	assert.NotNil(t, breaks)
}

func TestPairPunches_SplitShift(t *testing.T) {
	work, _ := PairPunches([]punch.Punch{
		newPunch(t, punch.TypeEntrada, "2024-03-04 08:00"),
		newPunch(t, punch.TypeSaida, "2024-03-04 12:00"),
		newPunch(t, punch.TypeEntrada, "2024-03-04 13:30"),
		newPunch(t, punch.TypeSaida, "2024-03-04 18:00"),
	})

	require.Len(t, work, 2)
	assert.Equal(t, 4.0, work[0].DurationHours)
	assert.Equal(t, 4.5, work[1].DurationHours)
}

func TestPairPunches_SameInstantUsesNSR(t *testing.T) {
	entrada := newPunch(t, punch.TypeEntrada, "2024-03-04 08:00")
	saida := newPunch(t, punch.TypeSaida, "2024-03-04 08:00")
	saida.NSR = entrada.NSR + 1

	work, _ := PairPunches([]punch.Punch{saida, entrada})

	require.Len(t, work, 1)
	assert.Equal(t, 0.0, work[0].DurationHours)
}
