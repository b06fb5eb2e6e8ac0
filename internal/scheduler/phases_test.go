package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdanilov/tender/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSynthesize_FortyFiveDays(t *testing.T) {
	phases := Synthesize(domain.ScheduleSettings{
		StartDate: date(2024, time.January, 1),
		TotalDays: 45,
	})

	require.Len(t, phases, 5)

	names := []string{"Design", "Procurement", "Installation", "Commissioning", "Handover"}
	days := []int{4, 13, 18, 4, 6}
	for i, p := range phases {
		assert.Equal(t, names[i], p.Name, "phase %d name", i)
		assert.Equal(t, days[i], p.Days, "phase %d days", i)
	}

	assert.Equal(t, 45, TotalDays(phases))
	assert.Equal(t, date(2024, time.February, 15), phases[4].End)
}

func TestSynthesize_PhasesAreContiguous(t *testing.T) {
	phases := Synthesize(domain.ScheduleSettings{
		StartDate: date(2024, time.March, 10),
		TotalDays: 60,
	})

	assert.Equal(t, date(2024, time.March, 10), phases[0].Start)
	for i := 1; i < len(phases); i++ {
		assert.Equal(t, phases[i-1].End, phases[i].Start,
			"phase %d must start when phase %d ends", i, i-1)
	}
	for _, p := range phases {
		assert.Equal(t, p.Start.AddDate(0, 0, p.Days), p.End, "%s end date", p.Name)
	}
}

// TestSynthesize_TenDays_MinimumsOvershoot pins the clamping behavior
// for short projects: the four raised minimums (2+3+5+2=12) exceed the
// requested 10 days, Handover clamps to 1, and the phase sum is 13.
func TestSynthesize_TenDays_MinimumsOvershoot(t *testing.T) {
	phases := Synthesize(domain.ScheduleSettings{
		StartDate: date(2024, time.January, 1),
		TotalDays: 10,
	})

	days := []int{2, 3, 5, 2, 1}
	for i, p := range phases {
		assert.Equal(t, days[i], p.Days, "phase %s", p.Name)
	}
	assert.Equal(t, 13, TotalDays(phases))
}

func TestSynthesize_OneDay(t *testing.T) {
	phases := Synthesize(domain.ScheduleSettings{
		StartDate: date(2024, time.June, 1),
		TotalDays: 1,
	})

	require.Len(t, phases, 5)
	assert.Equal(t, []int{2, 3, 5, 2, 1}, []int{
		phases[0].Days, phases[1].Days, phases[2].Days, phases[3].Days, phases[4].Days,
	})
}

func TestSynthesize_NonPositiveTotalCoercedToOne(t *testing.T) {
	a := Synthesize(domain.ScheduleSettings{StartDate: date(2024, time.June, 1), TotalDays: 0})
	b := Synthesize(domain.ScheduleSettings{StartDate: date(2024, time.June, 1), TotalDays: 1})

	require.Len(t, a, 5)
	for i := range a {
		assert.Equal(t, b[i].Days, a[i].Days)
	}
}
