package payroll

import (
	"github.com/pulsehr/pulse-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// SETTINGS DTOs
// ========================================

type UpdatePayrollSettingsRequest struct {
	HourlyRate                  *decimal.Decimal `json:"hourly_rate,omitempty"`
	OvertimeMultiplier          *decimal.Decimal `json:"overtime_multiplier,omitempty"`
	StandardWorkingDaysPerMonth *int             `json:"standard_working_days_per_month,omitempty"`
	DeductionType               *string          `json:"deduction_type,omitempty"`
	DailyDeductionRate          *decimal.Decimal `json:"daily_deduction_rate,omitempty"`
	Currency                    *string          `json:"currency,omitempty"`
}

func (r *UpdatePayrollSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyRate != nil && !r.HourlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be greater than 0",
		})
	}

	if r.OvertimeMultiplier != nil && r.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_multiplier",
			Message: "overtime_multiplier must be at least 1",
		})
	}

	if r.StandardWorkingDaysPerMonth != nil && (*r.StandardWorkingDaysPerMonth < 1 || *r.StandardWorkingDaysPerMonth > 31) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_working_days_per_month",
			Message: "standard_working_days_per_month must be between 1 and 31",
		})
	}

	if r.DeductionType != nil {
		validTypes := []string{"hourly", "daily"}
		if !validator.IsInSlice(*r.DeductionType, validTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "deduction_type",
				Message: "deduction_type must be one of: hourly, daily",
			})
		}
	}

	if r.DailyDeductionRate != nil && r.DailyDeductionRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_deduction_rate",
			Message: "daily_deduction_rate must not be negative",
		})
	}

	if r.Currency != nil && validator.IsEmpty(*r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateSettings checks a full settings record against the same rules
// enforced at the edit boundary.
func ValidateSettings(s PayrollSettings) error {
	var errs validator.ValidationErrors

	if !s.HourlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be greater than 0",
		})
	}

	if s.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_multiplier",
			Message: "overtime_multiplier must be at least 1",
		})
	}

	if s.StandardWorkingDaysPerMonth < 1 || s.StandardWorkingDaysPerMonth > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_working_days_per_month",
			Message: "standard_working_days_per_month must be between 1 and 31",
		})
	}

	if s.DeductionType != DeductionTypeHourly && s.DeductionType != DeductionTypeDaily {
		errs = append(errs, validator.ValidationError{
			Field:   "deduction_type",
			Message: "deduction_type must be one of: hourly, daily",
		})
	}

	if s.DeductionType == DeductionTypeDaily && s.DailyDeductionRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_deduction_rate",
			Message: "daily_deduction_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollSettingsResponse struct {
	ID                          string          `json:"id"`
	HourlyRate                  decimal.Decimal `json:"hourly_rate"`
	OvertimeMultiplier          decimal.Decimal `json:"overtime_multiplier"`
	StandardWorkingDaysPerMonth int             `json:"standard_working_days_per_month"`
	DeductionType               string          `json:"deduction_type"`
	DailyDeductionRate          decimal.Decimal `json:"daily_deduction_rate"`
	Currency                    string          `json:"currency"`
}

// ========================================
// SALARY DTOs
// ========================================

// EmployeeSalaryCalculation is the live pay breakdown for one employee
// and one period. It is a read-only projection; nothing is written.
type EmployeeSalaryCalculation struct {
	EmployeeID       string          `json:"employee_id"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalHoursWorked float64         `json:"total_hours_worked"`
	OvertimeHours    float64         `json:"overtime_hours"`
	UnpaidLeaveDays  float64         `json:"unpaid_leave_days"`
	UnpaidLeaveHours float64         `json:"unpaid_leave_hours"`
	BasePay          decimal.Decimal `json:"base_pay"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	Deduction        decimal.Decimal `json:"deduction"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	Currency         string          `json:"currency"`
}

type PeriodRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *PeriodRequest) Validate() error {
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

type GenerateRecordsRequest struct {
	Month         int  `json:"month"`
	Year          int  `json:"year"`
	IsProvisional bool `json:"is_provisional"`
}

func (r *GenerateRecordsRequest) Validate() error {
	var errs validator.ValidationErrors

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

type SalaryRecordResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalHoursWorked float64         `json:"total_hours_worked"`
	OvertimeHours    float64         `json:"overtime_hours"`
	UnpaidLeaveDays  float64         `json:"unpaid_leave_days"`
	BasePay          decimal.Decimal `json:"base_pay"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	Allowances       decimal.Decimal `json:"allowances"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	Deduction        decimal.Decimal `json:"deduction"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	Currency         string          `json:"currency"`
	IsProvisional    bool            `json:"is_provisional"`
	CreatedAt        string          `json:"created_at"`
}

type SalaryRecordFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *SalaryRecordFilter) Validate() error {
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

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListSalaryRecordsResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Records    []SalaryRecordResponse `json:"records"`
}
