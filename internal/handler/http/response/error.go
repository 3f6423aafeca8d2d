package response

import (
	"errors"
	"net/http"

	"github.com/pulsehr/pulse-backend-go/internal/domain/announcement"
	"github.com/pulsehr/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehr/pulse-backend-go/internal/domain/auth"
	"github.com/pulsehr/pulse-backend-go/internal/domain/document"
	"github.com/pulsehr/pulse-backend-go/internal/domain/employee"
	"github.com/pulsehr/pulse-backend-go/internal/domain/holiday"
	"github.com/pulsehr/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehr/pulse-backend-go/internal/domain/payroll"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountDeactivated):
		Forbidden(w, "Account is deactivated")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeDeactivated):
		Forbidden(w, "Employee is deactivated")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No clock-in found for today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrEntryExists):
		Conflict(w, "A time entry already exists for this date")
	case errors.Is(err, attendance.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps an existing request")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrHalfDayRange):
		BadRequest(w, "Half-day leave must start and end on the same date", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollSettingsNotFound):
		NotFound(w, "Payroll settings not configured")
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrSalaryRecordExists):
		Conflict(w, "Salary record already exists for this period")
	case errors.Is(err, payroll.ErrSalaryRecordFinal):
		Conflict(w, "Salary record is finalized")

	// Master data errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Document errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Policy document not found")
	case errors.Is(err, document.ErrInvalidFileType):
		BadRequest(w, "Invalid file type", nil)
	case errors.Is(err, document.ErrFileTooLarge):
		BadRequest(w, "File size must not exceed 20MB", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
