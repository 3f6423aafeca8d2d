package payroll

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pulsehr/pulse-backend-go/internal/pkg/validator"
)

func validSettings() PayrollSettings {
	return PayrollSettings{
		HourlyRate:                  decimal.NewFromInt(20),
		OvertimeMultiplier:          decimal.NewFromFloat(1.5),
		StandardWorkingDaysPerMonth: 22,
		DeductionType:               DeductionTypeHourly,
		DailyDeductionRate:          decimal.NewFromInt(100),
		Currency:                    "USD",
	}
}

func TestValidateSettings(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*PayrollSettings)
		badField string
	}{
		{"valid", func(s *PayrollSettings) {}, ""},
		{"zero hourly rate", func(s *PayrollSettings) {
			s.HourlyRate = decimal.Zero
		}, "hourly_rate"},
		{"negative hourly rate", func(s *PayrollSettings) {
			s.HourlyRate = decimal.NewFromInt(-5)
		}, "hourly_rate"},
		{"multiplier below one", func(s *PayrollSettings) {
			s.OvertimeMultiplier = decimal.NewFromFloat(0.9)
		}, "overtime_multiplier"},
		{"multiplier exactly one is fine", func(s *PayrollSettings) {
			s.OvertimeMultiplier = decimal.NewFromInt(1)
		}, ""},
		{"zero working days", func(s *PayrollSettings) {
			s.StandardWorkingDaysPerMonth = 0
		}, "standard_working_days_per_month"},
		{"32 working days", func(s *PayrollSettings) {
			s.StandardWorkingDaysPerMonth = 32
		}, "standard_working_days_per_month"},
		{"unknown deduction type", func(s *PayrollSettings) {
			s.DeductionType = "weekly"
		}, "deduction_type"},
		{"negative daily rate with daily deduction", func(s *PayrollSettings) {
			s.DeductionType = DeductionTypeDaily
			s.DailyDeductionRate = decimal.NewFromInt(-1)
		}, "daily_deduction_rate"},
		{"negative daily rate ignored for hourly deduction", func(s *PayrollSettings) {
			s.DailyDeductionRate = decimal.NewFromInt(-1)
		}, ""},
	}

	for _, c := range cases {
		s := validSettings()
		c.mutate(&s)
		err := ValidateSettings(s)

		if c.badField == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", c.name, err)
			}
			continue
		}

		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			t.Errorf("%s: expected validation errors, got %v", c.name, err)
			continue
		}
		if _, found := errs.ToMap()[c.badField]; !found {
			t.Errorf("%s: expected error on %q, got %v", c.name, c.badField, errs.ToMap())
		}
	}
}
