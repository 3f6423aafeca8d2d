package payroll

import (
	"context"
)

type PayrollService interface {
	GetSettings(ctx context.Context) (PayrollSettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdatePayrollSettingsRequest) (PayrollSettingsResponse, error)
	CalculateSalary(ctx context.Context, req PeriodRequest) (EmployeeSalaryCalculation, error)
	GenerateRecords(ctx context.Context, req GenerateRecordsRequest) ([]SalaryRecordResponse, error)
	ListRecords(ctx context.Context, filter SalaryRecordFilter) (ListSalaryRecordsResponse, error)
	GetMySalary(ctx context.Context, month, year int) (EmployeeSalaryCalculation, error)
}
