package domain

import (
	"strconv"
	"time"
)

// DefaultTotalDays is used when a duration cannot be parsed at all.
const DefaultTotalDays = 30

// ScheduleSettings drives schedule synthesis and is independent of the
// line item set.
type ScheduleSettings struct {
	StartDate time.Time `json:"startDate"`
	TotalDays int       `json:"totalDays"`
}

// ParseTotalDays coerces a free-form duration string to a usable whole
// day count. Malformed input falls back to DefaultTotalDays and values
// below one are raised to one, so downstream engines stay total
// functions that never fail on well-typed input.
func ParseTotalDays(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultTotalDays
	}
	if n < 1 {
		return 1
	}
	return n
}
