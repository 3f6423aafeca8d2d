package leave

import (
	"time"
)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateLeaveDays returns the day cost of a leave span. A half-day
// request costs 0.5 regardless of the formula below; full-day requests
// count calendar days inclusively, so a single-day request costs 1.
func CalculateLeaveDays(start, end time.Time, isHalfDay bool) float64 {
	if isHalfDay {
		return 0.5
	}
	days := dateOnly(end).Sub(dateOnly(start)).Hours()/24 + 1
	return days
}

// Overlaps reports whether two closed date intervals share at least one
// calendar day. Touching endpoints count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !dateOnly(aStart).After(dateOnly(bEnd)) && !dateOnly(bStart).After(dateOnly(aEnd))
}
