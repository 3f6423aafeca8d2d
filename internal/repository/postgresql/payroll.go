package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/payroll"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

const salaryRecordColumns = `
	s.id, s.employee_id, s.month, s.year,
	s.total_hours_worked, s.overtime_hours, s.unpaid_leave_days,
	s.base_pay, s.overtime_pay, s.allowances, s.gross_salary,
	s.deduction, s.other_deductions, s.net_salary,
	s.currency, s.is_provisional, s.created_at, s.updated_at
`

func scanSalaryRecord(row pgx.Row) (payroll.SalaryRecord, error) {
	var record payroll.SalaryRecord
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Month, &record.Year,
		&record.TotalHoursWorked, &record.OvertimeHours, &record.UnpaidLeaveDays,
		&record.BasePay, &record.OvertimePay, &record.Allowances, &record.GrossSalary,
		&record.Deduction, &record.OtherDeductions, &record.NetSalary,
		&record.Currency, &record.IsProvisional, &record.CreatedAt, &record.UpdatedAt,
	)
	return record, err
}

// GetSettings implements payroll.PayrollRepository. A single settings
// row is kept for the whole company.
func (p *payrollRepository) GetSettings(ctx context.Context) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, hourly_rate, overtime_multiplier, standard_working_days_per_month,
			   deduction_type, daily_deduction_rate, currency, created_at, updated_at
		FROM payroll_settings
		ORDER BY created_at ASC
		LIMIT 1
	`

	var settings payroll.PayrollSettings
	err := q.QueryRow(ctx, query).Scan(
		&settings.ID, &settings.HourlyRate, &settings.OvertimeMultiplier, &settings.StandardWorkingDaysPerMonth,
		&settings.DeductionType, &settings.DailyDeductionRate, &settings.Currency,
		&settings.CreatedAt, &settings.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollSettings{}, err
	}

	return settings, nil
}

// UpsertSettings implements payroll.PayrollRepository.
func (p *payrollRepository) UpsertSettings(ctx context.Context, settings payroll.PayrollSettings) (payroll.PayrollSettings, error) {
	q := GetQuerier(ctx, p.db)

	if settings.ID == "" {
		query := `
			INSERT INTO payroll_settings (
				hourly_rate, overtime_multiplier, standard_working_days_per_month,
				deduction_type, daily_deduction_rate, currency
			) VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`
		err := q.QueryRow(ctx, query,
			settings.HourlyRate,
			settings.OvertimeMultiplier,
			settings.StandardWorkingDaysPerMonth,
			settings.DeductionType,
			settings.DailyDeductionRate,
			settings.Currency,
		).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
		if err != nil {
			return payroll.PayrollSettings{}, fmt.Errorf("failed to create payroll settings: %w", err)
		}
		return settings, nil
	}

	query := `
		UPDATE payroll_settings
		SET hourly_rate = $1, overtime_multiplier = $2, standard_working_days_per_month = $3,
			deduction_type = $4, daily_deduction_rate = $5, currency = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`
	err := q.QueryRow(ctx, query,
		settings.HourlyRate,
		settings.OvertimeMultiplier,
		settings.StandardWorkingDaysPerMonth,
		settings.DeductionType,
		settings.DailyDeductionRate,
		settings.Currency,
		settings.ID,
	).Scan(&settings.UpdatedAt)
	if err != nil {
		return payroll.PayrollSettings{}, fmt.Errorf("failed to update payroll settings: %w", err)
	}

	return settings, nil
}

// CreateSalaryRecord implements payroll.PayrollRepository.
func (p *payrollRepository) CreateSalaryRecord(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO salary_records (
			employee_id, month, year,
			total_hours_worked, overtime_hours, unpaid_leave_days,
			base_pay, overtime_pay, allowances, gross_salary,
			deduction, other_deductions, net_salary,
			currency, is_provisional
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Month, record.Year,
		record.TotalHoursWorked, record.OvertimeHours, record.UnpaidLeaveDays,
		record.BasePay, record.OvertimePay, record.Allowances, record.GrossSalary,
		record.Deduction, record.OtherDeductions, record.NetSalary,
		record.Currency, record.IsProvisional,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordExists
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return record, nil
}

// GetSalaryRecordByPeriod implements payroll.PayrollRepository.
func (p *payrollRepository) GetSalaryRecordByPeriod(ctx context.Context, employeeID string, month, year int) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + salaryRecordColumns + `
		FROM salary_records s
		WHERE s.employee_id = $1 AND s.month = $2 AND s.year = $3
	`

	record, err := scanSalaryRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return record, nil
}

// ReplaceProvisionalRecord implements payroll.PayrollRepository. The
// upsert only overwrites a provisional row; when a finalized row holds
// the period the conflict update matches nothing and the caller gets
// ErrSalaryRecordFinal.
func (p *payrollRepository) ReplaceProvisionalRecord(ctx context.Context, record payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO salary_records (
			employee_id, month, year,
			total_hours_worked, overtime_hours, unpaid_leave_days,
			base_pay, overtime_pay, allowances, gross_salary,
			deduction, other_deductions, net_salary,
			currency, is_provisional
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			total_hours_worked = EXCLUDED.total_hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			unpaid_leave_days = EXCLUDED.unpaid_leave_days,
			base_pay = EXCLUDED.base_pay,
			overtime_pay = EXCLUDED.overtime_pay,
			allowances = EXCLUDED.allowances,
			gross_salary = EXCLUDED.gross_salary,
			deduction = EXCLUDED.deduction,
			other_deductions = EXCLUDED.other_deductions,
			net_salary = EXCLUDED.net_salary,
			currency = EXCLUDED.currency,
			is_provisional = EXCLUDED.is_provisional,
			updated_at = NOW()
		WHERE salary_records.is_provisional = TRUE
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Month, record.Year,
		record.TotalHoursWorked, record.OvertimeHours, record.UnpaidLeaveDays,
		record.BasePay, record.OvertimePay, record.Allowances, record.GrossSalary,
		record.Deduction, record.OtherDeductions, record.NetSalary,
		record.Currency, record.IsProvisional,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryRecord{}, payroll.ErrSalaryRecordFinal
		}
		return payroll.SalaryRecord{}, fmt.Errorf("failed to replace salary record: %w", err)
	}

	return record, nil
}

// ListSalaryRecords implements payroll.PayrollRepository.
func (p *payrollRepository) ListSalaryRecords(ctx context.Context, filter payroll.SalaryRecordFilter) ([]payroll.SalaryRecord, int64, error) {
	q := GetQuerier(ctx, p.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("s.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("s.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM salary_records s` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	query := `
		SELECT ` + salaryRecordColumns + `, e.full_name
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id` + whereClause +
		fmt.Sprintf(" ORDER BY s.year DESC, s.month DESC, e.full_name ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []payroll.SalaryRecord
	for rows.Next() {
		var record payroll.SalaryRecord
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Month, &record.Year,
			&record.TotalHoursWorked, &record.OvertimeHours, &record.UnpaidLeaveDays,
			&record.BasePay, &record.OvertimePay, &record.Allowances, &record.GrossSalary,
			&record.Deduction, &record.OtherDeductions, &record.NetSalary,
			&record.Currency, &record.IsProvisional, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate salary records: %w", err)
	}

	return records, totalCount, nil
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}
