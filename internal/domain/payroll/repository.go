package payroll

import (
	"context"
)

type PayrollRepository interface {
	GetSettings(ctx context.Context) (PayrollSettings, error)
	UpsertSettings(ctx context.Context, settings PayrollSettings) (PayrollSettings, error)

	CreateSalaryRecord(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	GetSalaryRecordByPeriod(ctx context.Context, employeeID string, month, year int) (SalaryRecord, error)
	ReplaceProvisionalRecord(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	ListSalaryRecords(ctx context.Context, filter SalaryRecordFilter) ([]SalaryRecord, int64, error)
}
