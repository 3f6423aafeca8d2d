package attendance

import (
	"time"
)

// TimeEntry is one attendance row per employee per calendar date.
// An entry with a clock-in but no clock-out is an incomplete punch and
// must not contribute to hour totals.
type TimeEntry struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	ClockIn           *time.Time
	ClockOut          *time.Time
	TotalHours        *float64
	OvertimeHours     *float64
	IsLate            bool
	IsEarlyLeave      bool
	LateMinutes       *int
	EarlyLeaveMinutes *int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// DayStatus classifies a single calendar day for an employee.
type DayStatus string

const (
	DayStatusPresent       DayStatus = "present"
	DayStatusAbsent        DayStatus = "absent"
	DayStatusLate          DayStatus = "late"
	DayStatusEarlyLeave    DayStatus = "early_leave"
	DayStatusLateEarly     DayStatus = "late_early_leave"
	DayStatusIncomplete    DayStatus = "incomplete"
	DayStatusNotApplicable DayStatus = "not_applicable"
)
