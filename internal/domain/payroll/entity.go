package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionType enum
type DeductionType string

const (
	DeductionTypeHourly DeductionType = "hourly"
	DeductionTypeDaily  DeductionType = "daily"
)

// PayrollSettings - the single active company payroll configuration.
// Exactly one settings row exists; updates overwrite it in place.
type PayrollSettings struct {
	ID                          string
	HourlyRate                  decimal.Decimal
	OvertimeMultiplier          decimal.Decimal
	StandardWorkingDaysPerMonth int
	DeductionType               DeductionType
	DailyDeductionRate          decimal.Decimal
	Currency                    string
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// SalaryRecord - a frozen pay snapshot per (employee, month, year).
// Once a period closes the record is an immutable ledger entry; the
// current period's row is provisional and may be regenerated.
type SalaryRecord struct {
	ID               string
	EmployeeID       string
	Month            int
	Year             int
	TotalHoursWorked float64
	OvertimeHours    float64
	UnpaidLeaveDays  float64
	BasePay          decimal.Decimal
	OvertimePay      decimal.Decimal
	Allowances       decimal.Decimal
	GrossSalary      decimal.Decimal
	Deduction        decimal.Decimal
	OtherDeductions  decimal.Decimal
	NetSalary        decimal.Decimal
	Currency         string
	IsProvisional    bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}
