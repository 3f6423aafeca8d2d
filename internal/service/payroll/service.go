package payroll

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehr/pulse-backend-go/internal/domain/employee"
	"github.com/pulsehr/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehr/pulse-backend-go/internal/domain/payroll"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	employee.EmployeeRepository
	attendance.TimeEntryRepository
	leave.LeaveRequestRepository
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

func toSettingsResponse(settings payroll.PayrollSettings) payroll.PayrollSettingsResponse {
	return payroll.PayrollSettingsResponse{
		ID:                          settings.ID,
		HourlyRate:                  settings.HourlyRate,
		OvertimeMultiplier:          settings.OvertimeMultiplier,
		StandardWorkingDaysPerMonth: settings.StandardWorkingDaysPerMonth,
		DeductionType:               string(settings.DeductionType),
		DailyDeductionRate:          settings.DailyDeductionRate,
		Currency:                    settings.Currency,
	}
}

func toSalaryRecordResponse(record payroll.SalaryRecord) payroll.SalaryRecordResponse {
	resp := payroll.SalaryRecordResponse{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		Month:            record.Month,
		Year:             record.Year,
		TotalHoursWorked: record.TotalHoursWorked,
		OvertimeHours:    record.OvertimeHours,
		UnpaidLeaveDays:  record.UnpaidLeaveDays,
		BasePay:          record.BasePay,
		OvertimePay:      record.OvertimePay,
		Allowances:       record.Allowances,
		GrossSalary:      record.GrossSalary,
		Deduction:        record.Deduction,
		OtherDeductions:  record.OtherDeductions,
		NetSalary:        record.NetSalary,
		Currency:         record.Currency,
		IsProvisional:    record.IsProvisional,
		CreatedAt:        record.CreatedAt.Format(time.RFC3339),
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	return resp
}

// GetSettings implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.PayrollSettingsResponse, error) {
	settings, err := p.PayrollRepository.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollSettingsResponse{}, payroll.ErrPayrollSettingsNotFound
		}
		return payroll.PayrollSettingsResponse{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return toSettingsResponse(settings), nil
}

// UpdateSettings implements payroll.PayrollService. Partial updates are
// merged over the current settings and the merged result is validated
// as a whole before it is written.
func (p *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdatePayrollSettingsRequest) (payroll.PayrollSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	settings, err := p.PayrollRepository.GetSettings(ctx)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return payroll.PayrollSettingsResponse{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	if req.HourlyRate != nil {
		settings.HourlyRate = *req.HourlyRate
	}
	if req.OvertimeMultiplier != nil {
		settings.OvertimeMultiplier = *req.OvertimeMultiplier
	}
	if req.StandardWorkingDaysPerMonth != nil {
		settings.StandardWorkingDaysPerMonth = *req.StandardWorkingDaysPerMonth
	}
	if req.DeductionType != nil {
		settings.DeductionType = payroll.DeductionType(*req.DeductionType)
	}
	if req.DailyDeductionRate != nil {
		settings.DailyDeductionRate = *req.DailyDeductionRate
	}
	if req.Currency != nil {
		settings.Currency = *req.Currency
	}

	if err := payroll.ValidateSettings(settings); err != nil {
		return payroll.PayrollSettingsResponse{}, err
	}

	updated, err := p.PayrollRepository.UpsertSettings(ctx, settings)
	if err != nil {
		return payroll.PayrollSettingsResponse{}, fmt.Errorf("failed to update payroll settings: %w", err)
	}

	return toSettingsResponse(updated), nil
}

// computePeriod gathers one employee's worked hours and unpaid leave for
// a period and runs the pay calculation. Incomplete punches carry no
// stored totals, so they contribute nothing here.
func (p *PayrollServiceImpl) computePeriod(ctx context.Context, settings payroll.PayrollSettings, emp employee.Employee, month, year int) (payroll.EmployeeSalaryCalculation, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	entries, err := p.TimeEntryRepository.ListByEmployeeBetween(ctx, emp.ID, first, last)
	if err != nil {
		return payroll.EmployeeSalaryCalculation{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	var totalHours, overtimeHours float64
	for _, entry := range entries {
		if entry.TotalHours != nil {
			totalHours += *entry.TotalHours
		}
		if entry.OvertimeHours != nil {
			overtimeHours += *entry.OvertimeHours
		}
	}
	totalHours = math.Round(totalHours*100) / 100
	overtimeHours = math.Round(overtimeHours*100) / 100

	unpaidLeaves, err := p.LeaveRequestRepository.GetApprovedOverlapping(ctx, emp.ID, leave.LeaveTypeUnpaid, first, last)
	if err != nil {
		return payroll.EmployeeSalaryCalculation{}, fmt.Errorf("failed to list unpaid leave: %w", err)
	}

	var unpaidLeaveDays float64
	for _, l := range unpaidLeaves {
		unpaidLeaveDays += l.TotalDays
	}

	breakdown := CalculateSalary(settings, CalculationInput{
		TotalHoursWorked: totalHours,
		OvertimeHours:    overtimeHours,
		UnpaidLeaveDays:  unpaidLeaveDays,
		HoursPerDay:      emp.StandardHoursPerDay,
	})

	return payroll.EmployeeSalaryCalculation{
		EmployeeID:       emp.ID,
		Month:            month,
		Year:             year,
		TotalHoursWorked: totalHours,
		OvertimeHours:    overtimeHours,
		UnpaidLeaveDays:  unpaidLeaveDays,
		UnpaidLeaveHours: breakdown.UnpaidLeaveHours,
		BasePay:          breakdown.BasePay,
		OvertimePay:      breakdown.OvertimePay,
		GrossSalary:      breakdown.GrossSalary,
		Deduction:        breakdown.Deduction,
		NetSalary:        breakdown.NetSalary,
		Currency:         settings.Currency,
	}, nil
}

// CalculateSalary implements payroll.PayrollService.
func (p *PayrollServiceImpl) CalculateSalary(ctx context.Context, req payroll.PeriodRequest) (payroll.EmployeeSalaryCalculation, error) {
	if err := req.Validate(); err != nil {
		return payroll.EmployeeSalaryCalculation{}, err
	}

	settings, err := p.PayrollRepository.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.EmployeeSalaryCalculation{}, payroll.ErrPayrollSettingsNotFound
		}
		return payroll.EmployeeSalaryCalculation{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.EmployeeSalaryCalculation{}, err
	}

	return p.computePeriod(ctx, settings, emp, req.Month, req.Year)
}

// GenerateRecords implements payroll.PayrollService. It snapshots the
// period for every active employee. Provisional rows for the period are
// overwritten; a finalized row freezes the period for that employee and
// is skipped.
func (p *PayrollServiceImpl) GenerateRecords(ctx context.Context, req payroll.GenerateRecordsRequest) ([]payroll.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	settings, err := p.PayrollRepository.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayrollSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	employees, err := p.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	responses := make([]payroll.SalaryRecordResponse, 0, len(employees))
	for _, emp := range employees {
		calc, err := p.computePeriod(ctx, settings, emp, req.Month, req.Year)
		if err != nil {
			return nil, err
		}

		record := payroll.SalaryRecord{
			EmployeeID:       emp.ID,
			Month:            req.Month,
			Year:             req.Year,
			TotalHoursWorked: calc.TotalHoursWorked,
			OvertimeHours:    calc.OvertimeHours,
			UnpaidLeaveDays:  calc.UnpaidLeaveDays,
			BasePay:          calc.BasePay,
			OvertimePay:      calc.OvertimePay,
			GrossSalary:      calc.GrossSalary,
			Deduction:        calc.Deduction,
			NetSalary:        calc.NetSalary,
			Currency:         calc.Currency,
			IsProvisional:    req.IsProvisional,
		}

		saved, err := p.PayrollRepository.ReplaceProvisionalRecord(ctx, record)
		if err != nil {
			if errors.Is(err, payroll.ErrSalaryRecordFinal) {
				continue
			}
			return nil, fmt.Errorf("failed to save salary record: %w", err)
		}

		responses = append(responses, toSalaryRecordResponse(saved))
	}

	return responses, nil
}

// ListRecords implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.SalaryRecordFilter) (payroll.ListSalaryRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListSalaryRecordsResponse{}, err
	}

	records, totalCount, err := p.PayrollRepository.ListSalaryRecords(ctx, filter)
	if err != nil {
		return payroll.ListSalaryRecordsResponse{}, fmt.Errorf("failed to list salary records: %w", err)
	}

	responses := make([]payroll.SalaryRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toSalaryRecordResponse(record))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))

	return payroll.ListSalaryRecordsResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// GetMySalary implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetMySalary(ctx context.Context, month, year int) (payroll.EmployeeSalaryCalculation, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return payroll.EmployeeSalaryCalculation{}, err
	}

	return p.CalculateSalary(ctx, payroll.PeriodRequest{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
	})
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	timeEntryRepo attendance.TimeEntryRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                     db,
		PayrollRepository:      payrollRepo,
		EmployeeRepository:     employeeRepo,
		TimeEntryRepository:    timeEntryRepo,
		LeaveRequestRepository: leaveRequestRepo,
	}
}
