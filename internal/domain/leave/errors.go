package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrOverlappingLeave     = errors.New("leave request overlaps an existing request")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrHalfDayRange         = errors.New("half-day leave must start and end on the same date")
	ErrAlreadyProcessed     = errors.New("leave request has already been processed")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrNotRequestOwner      = errors.New("leave request belongs to another employee")
)
