package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollSettingsNotFound = errors.New("payroll settings not found")
	ErrSalaryRecordNotFound    = errors.New("salary record not found")
	ErrSalaryRecordExists      = errors.New("salary record already exists for this period")
	ErrSalaryRecordFinal       = errors.New("salary record is finalized and cannot be regenerated")
)
