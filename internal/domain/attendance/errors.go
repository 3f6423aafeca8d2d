package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrEntryExists       = errors.New("a time entry already exists for this date")
)
