package scheduler

import (
	"math"
	"time"

	"github.com/avdanilov/tender/internal/domain"
)

// Phase is one of the five fixed sequential project stages. Phases are
// contiguous: each one starts on the previous phase's end date.
type Phase struct {
	Name  string    `json:"name"`
	Days  int       `json:"days"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// phaseSpec gives a ratio phase its nominal share of the total duration
// and the minimum it is raised to after flooring.
type phaseSpec struct {
	name    string
	ratio   float64
	minDays int
}

var ratioPhases = []phaseSpec{
	{name: "Design", ratio: 0.10, minDays: 2},
	{name: "Procurement", ratio: 0.30, minDays: 3},
	{name: "Installation", ratio: 0.40, minDays: 5},
	{name: "Commissioning", ratio: 0.10, minDays: 2},
}

// PhaseHandover is the name of the residual fifth phase.
const PhaseHandover = "Handover"

// Synthesize partitions the total duration into the five fixed phases.
// The four ratio phases are floored and then raised to their minimums;
// Handover absorbs the remainder, clamped to at least one day. When the
// four minimums together reach the requested total, the clamp wins and
// the phase sum overshoots the total; an exact partition needs a
// duration of at least thirteen days.
// Calendar-day arithmetic only, no business-day awareness.
func Synthesize(s domain.ScheduleSettings) []Phase {
	total := s.TotalDays
	if total < 1 {
		total = 1
	}

	phases := make([]Phase, 0, len(ratioPhases)+1)
	cursor := s.StartDate
	used := 0

	for _, spec := range ratioPhases {
		days := int(math.Floor(spec.ratio * float64(total)))
		if days < spec.minDays {
			days = spec.minDays
		}
		used += days

		phases = append(phases, Phase{
			Name:  spec.name,
			Days:  days,
			Start: cursor,
			End:   cursor.AddDate(0, 0, days),
		})
		cursor = phases[len(phases)-1].End
	}

	handover := total - used
	if handover < 1 {
		handover = 1
	}
	phases = append(phases, Phase{
		Name:  PhaseHandover,
		Days:  handover,
		Start: cursor,
		End:   cursor.AddDate(0, 0, handover),
	})

	return phases
}

// TotalDays sums the day counts of the given phases.
func TotalDays(phases []Phase) int {
	sum := 0
	for _, p := range phases {
		sum += p.Days
	}
	return sum
}
