package employee

import (
	"github.com/pulsehr/pulse-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	Position            *string `json:"position,omitempty"`
	PhoneNumber         *string `json:"phone_number,omitempty"`
	StandardShiftStart  string  `json:"standard_shift_start"`
	StandardShiftEnd    string  `json:"standard_shift_end"`
	StandardHoursPerDay float64 `json:"standard_hours_per_day"`
	JoinDate            string  `json:"join_date"` // YYYY-MM-DD
	IsAdmin             bool    `json:"is_admin"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsValidTimeOfDay(r.StandardShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_shift_start",
			Message: "standard_shift_start must be in HH:MM format",
		})
	}

	if !validator.IsValidTimeOfDay(r.StandardShiftEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_shift_end",
			Message: "standard_shift_end must be in HH:MM format",
		})
	}

	if r.StandardHoursPerDay <= 0 || r.StandardHoursPerDay > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_hours_per_day",
			Message: "standard_hours_per_day must be between 0 and 24",
		})
	}

	if _, valid := validator.IsValidDate(r.JoinDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID                  string   `json:"-"`
	FullName            *string  `json:"full_name,omitempty"`
	Position            *string  `json:"position,omitempty"`
	PhoneNumber         *string  `json:"phone_number,omitempty"`
	StandardShiftStart  *string  `json:"standard_shift_start,omitempty"`
	StandardShiftEnd    *string  `json:"standard_shift_end,omitempty"`
	StandardHoursPerDay *float64 `json:"standard_hours_per_day,omitempty"`
	IsAdmin             *bool    `json:"is_admin,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.StandardShiftStart != nil && !validator.IsValidTimeOfDay(*r.StandardShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_shift_start",
			Message: "standard_shift_start must be in HH:MM format",
		})
	}

	if r.StandardShiftEnd != nil && !validator.IsValidTimeOfDay(*r.StandardShiftEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_shift_end",
			Message: "standard_shift_end must be in HH:MM format",
		})
	}

	if r.StandardHoursPerDay != nil && (*r.StandardHoursPerDay <= 0 || *r.StandardHoursPerDay > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_hours_per_day",
			Message: "standard_hours_per_day must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                  string  `json:"id"`
	FullName            string  `json:"full_name"`
	Email               string  `json:"email"`
	Position            *string `json:"position,omitempty"`
	PhoneNumber         *string `json:"phone_number,omitempty"`
	AvatarURL           *string `json:"avatar_url,omitempty"`
	StandardShiftStart  string  `json:"standard_shift_start"`
	StandardShiftEnd    string  `json:"standard_shift_end"`
	StandardHoursPerDay float64 `json:"standard_hours_per_day"`
	JoinDate            string  `json:"join_date"`
	IsAdmin             bool    `json:"is_admin"`
	IsActive            bool    `json:"is_active"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type EmployeeFilter struct {
	Search   *string `json:"search,omitempty"` // matches name or email
	IsActive *bool   `json:"is_active,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
