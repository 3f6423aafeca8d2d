package attendance

import (
	"github.com/pulsehr/pulse-backend-go/internal/pkg/validator"
)

// ========================================
// TIME ENTRY DTOs
// ========================================

type TimeEntryResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name,omitempty"`
	Date              string   `json:"date"`
	ClockIn           *string  `json:"clock_in,omitempty"`
	ClockOut          *string  `json:"clock_out,omitempty"`
	TotalHours        *float64 `json:"total_hours,omitempty"`
	OvertimeHours     *float64 `json:"overtime_hours,omitempty"`
	IsLate            bool     `json:"is_late"`
	IsEarlyLeave      bool     `json:"is_early_leave"`
	LateMinutes       *int     `json:"late_minutes,omitempty"`
	EarlyLeaveMinutes *int     `json:"early_leave_minutes,omitempty"`
}

type TimeEntryFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *TimeEntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListTimeEntriesResponse struct {
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
	Entries    []TimeEntryResponse `json:"entries"`
}

// UpdateTimeEntryRequest lets admins fix wrong clock times.
type UpdateTimeEntryRequest struct {
	ID       string  `json:"-"`
	ClockIn  *string `json:"clock_in,omitempty"`  // RFC3339
	ClockOut *string `json:"clock_out,omitempty"` // RFC3339
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ClockIn != nil && *r.ClockIn != "" {
		if _, valid := validator.IsValidDateTime(*r.ClockIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.ClockOut != nil && *r.ClockOut != "" {
		if _, valid := validator.IsValidDateTime(*r.ClockOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// MONTHLY LOG / ANALYTICS DTOs
// ========================================

type MonthlyRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DailyLogEntry is the per-day feed for tables and heatmaps.
type DailyLogEntry struct {
	Date              string    `json:"date"`
	Status            DayStatus `json:"status"`
	ClockIn           *string   `json:"clock_in,omitempty"`
	ClockOut          *string   `json:"clock_out,omitempty"`
	TotalHours        float64   `json:"total_hours"`
	OvertimeHours     float64   `json:"overtime_hours"`
	LateByMinutes     int       `json:"late_by_minutes"`
	EarlyByMinutes    int       `json:"early_by_minutes"`
	IsHoliday         bool      `json:"is_holiday"`
	HolidayName       *string   `json:"holiday_name,omitempty"`
}

// AttendanceAnalytics is the monthly KPI aggregate for one employee.
type AttendanceAnalytics struct {
	EmployeeID         string          `json:"employee_id"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	PresentDays        int             `json:"present_days"`
	AbsentDays         int             `json:"absent_days"`
	LateArrivals       int             `json:"late_arrivals"`
	EarlyLeaves        int             `json:"early_leaves"`
	IncompletePunches  int             `json:"incomplete_punches"`
	NotApplicableDays  int             `json:"not_applicable_days"`
	TotalHoursWorked   float64         `json:"total_hours_worked"`
	AverageHoursPerDay float64         `json:"average_hours_per_day"`
	Days               []DailyLogEntry `json:"days"`
}
