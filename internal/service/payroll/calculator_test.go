package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pulsehr/pulse-backend-go/internal/domain/payroll"
)

func settingsWith(deductionType payroll.DeductionType) payroll.PayrollSettings {
	return payroll.PayrollSettings{
		HourlyRate:                  decimal.NewFromInt(20),
		OvertimeMultiplier:          decimal.NewFromFloat(1.5),
		StandardWorkingDaysPerMonth: 22,
		DeductionType:               deductionType,
		DailyDeductionRate:          decimal.NewFromInt(100),
		Currency:                    "USD",
	}
}

func TestCalculateSalaryHourlyDeduction(t *testing.T) {
	got := CalculateSalary(settingsWith(payroll.DeductionTypeHourly), CalculationInput{
		TotalHoursWorked: 80,
		OvertimeHours:    3,
		UnpaidLeaveDays:  0.5,
		HoursPerDay:      8,
	})

	assert.True(t, got.BasePay.Equal(decimal.NewFromInt(1600)), "base pay = %s", got.BasePay)
	assert.True(t, got.OvertimePay.Equal(decimal.NewFromInt(90)), "overtime pay = %s", got.OvertimePay)
	assert.True(t, got.GrossSalary.Equal(decimal.NewFromInt(1690)), "gross = %s", got.GrossSalary)
	assert.Equal(t, 4.0, got.UnpaidLeaveHours)
	assert.True(t, got.Deduction.Equal(decimal.NewFromInt(80)), "deduction = %s", got.Deduction)
	assert.True(t, got.NetSalary.Equal(decimal.NewFromInt(1610)), "net = %s", got.NetSalary)
}

func TestCalculateSalaryDailyDeduction(t *testing.T) {
	got := CalculateSalary(settingsWith(payroll.DeductionTypeDaily), CalculationInput{
		TotalHoursWorked: 80,
		OvertimeHours:    3,
		UnpaidLeaveDays:  0.5,
		HoursPerDay:      8,
	})

	assert.True(t, got.Deduction.Equal(decimal.NewFromInt(50)), "deduction = %s", got.Deduction)
	assert.True(t, got.NetSalary.Equal(decimal.NewFromInt(1640)), "net = %s", got.NetSalary)
}

func TestCalculateSalaryNoUnpaidLeave(t *testing.T) {
	got := CalculateSalary(settingsWith(payroll.DeductionTypeHourly), CalculationInput{
		TotalHoursWorked: 160,
		OvertimeHours:    0,
		HoursPerDay:      8,
	})

	assert.True(t, got.Deduction.IsZero(), "deduction = %s", got.Deduction)
	assert.True(t, got.NetSalary.Equal(got.GrossSalary))
	assert.True(t, got.GrossSalary.Equal(decimal.NewFromInt(3200)), "gross = %s", got.GrossSalary)
}

func TestCalculateSalaryZeroHoursIsZeroPay(t *testing.T) {
	got := CalculateSalary(settingsWith(payroll.DeductionTypeHourly), CalculationInput{HoursPerDay: 8})

	assert.True(t, got.BasePay.IsZero())
	assert.True(t, got.OvertimePay.IsZero())
	assert.True(t, got.NetSalary.IsZero())
}

func TestCalculateSalaryRoundsFractionalHours(t *testing.T) {
	settings := settingsWith(payroll.DeductionTypeHourly)
	settings.HourlyRate = decimal.NewFromFloat(17.33)

	got := CalculateSalary(settings, CalculationInput{
		TotalHoursWorked: 7.92,
		HoursPerDay:      8,
	})

	// 7.92 * 17.33 = 137.2536 rounds to 137.25.
	assert.True(t, got.BasePay.Equal(decimal.NewFromFloat(137.25)), "base pay = %s", got.BasePay)
	assert.True(t, got.NetSalary.Equal(decimal.NewFromFloat(137.25)), "net = %s", got.NetSalary)
}

func TestCalculateSalaryOvertimeUsesMultiplier(t *testing.T) {
	settings := settingsWith(payroll.DeductionTypeHourly)
	settings.OvertimeMultiplier = decimal.NewFromInt(2)

	got := CalculateSalary(settings, CalculationInput{
		TotalHoursWorked: 10,
		OvertimeHours:    2,
		HoursPerDay:      8,
	})

	assert.True(t, got.OvertimePay.Equal(decimal.NewFromInt(80)), "overtime pay = %s", got.OvertimePay)
	assert.True(t, got.GrossSalary.Equal(decimal.NewFromInt(280)), "gross = %s", got.GrossSalary)
}
