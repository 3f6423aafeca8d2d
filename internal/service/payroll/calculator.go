package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/pulsehr/pulse-backend-go/internal/domain/payroll"
)

// CalculationInput is the attendance-derived raw material for one
// employee's pay over one period.
type CalculationInput struct {
	TotalHoursWorked float64
	OvertimeHours    float64
	UnpaidLeaveDays  float64
	HoursPerDay      float64
}

// SalaryBreakdown is the money side of a pay calculation. All amounts
// are rounded to 2 decimal places.
type SalaryBreakdown struct {
	BasePay          decimal.Decimal
	OvertimePay      decimal.Decimal
	GrossSalary      decimal.Decimal
	Deduction        decimal.Decimal
	NetSalary        decimal.Decimal
	UnpaidLeaveHours float64
}

// CalculateSalary applies the company payroll settings to one period's
// attendance totals. Base pay covers every worked hour at the plain
// hourly rate; overtime hours earn the multiplied rate on top. The
// unpaid-leave deduction follows the configured deduction type: hourly
// converts unpaid days to hours at the employee's standard day length,
// daily charges the flat daily rate.
func CalculateSalary(settings payroll.PayrollSettings, input CalculationInput) SalaryBreakdown {
	basePay := settings.HourlyRate.
		Mul(decimal.NewFromFloat(input.TotalHoursWorked)).
		Round(2)

	overtimePay := settings.HourlyRate.
		Mul(settings.OvertimeMultiplier).
		Mul(decimal.NewFromFloat(input.OvertimeHours)).
		Round(2)

	grossSalary := basePay.Add(overtimePay)

	unpaidLeaveHours := input.UnpaidLeaveDays * input.HoursPerDay

	var deduction decimal.Decimal
	switch settings.DeductionType {
	case payroll.DeductionTypeDaily:
		deduction = settings.DailyDeductionRate.
			Mul(decimal.NewFromFloat(input.UnpaidLeaveDays)).
			Round(2)
	default:
		deduction = settings.HourlyRate.
			Mul(decimal.NewFromFloat(unpaidLeaveHours)).
			Round(2)
	}

	return SalaryBreakdown{
		BasePay:          basePay,
		OvertimePay:      overtimePay,
		GrossSalary:      grossSalary,
		Deduction:        deduction,
		NetSalary:        grossSalary.Sub(deduction),
		UnpaidLeaveHours: unpaidLeaveHours,
	}
}
