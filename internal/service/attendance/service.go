package attendance

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
	"github.com/pulsehr/pulse-backend-go/internal/domain/holiday"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.TimeEntryRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
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

func timePtrToClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func toTimeEntryResponse(entry attendance.TimeEntry) attendance.TimeEntryResponse {
	resp := attendance.TimeEntryResponse{
		ID:                entry.ID,
		EmployeeID:        entry.EmployeeID,
		Date:              entry.Date.Format("2006-01-02"),
		ClockIn:           timePtrToClock(entry.ClockIn),
		ClockOut:          timePtrToClock(entry.ClockOut),
		TotalHours:        entry.TotalHours,
		OvertimeHours:     entry.OvertimeHours,
		IsLate:            entry.IsLate,
		IsEarlyLeave:      entry.IsEarlyLeave,
		LateMinutes:       entry.LateMinutes,
		EarlyLeaveMinutes: entry.EarlyLeaveMinutes,
	}
	if entry.EmployeeName != nil {
		resp.EmployeeName = *entry.EmployeeName
	}
	return resp
}

// applyShift recomputes every derived field on an entry from its clock
// times. Totals stay unset while the punch is incomplete.
func applyShift(entry *attendance.TimeEntry, shift Shift) {
	entry.IsLate = false
	entry.IsEarlyLeave = false
	entry.LateMinutes = nil
	entry.EarlyLeaveMinutes = nil
	entry.TotalHours = nil
	entry.OvertimeHours = nil

	if entry.ClockIn != nil {
		if lateBy := minutesOfDay(*entry.ClockIn) - shift.StartMinutes; lateBy > 0 {
			entry.IsLate = true
			entry.LateMinutes = &lateBy
		}
	}

	if entry.ClockOut == nil || entry.ClockIn == nil {
		return
	}

	if earlyBy := shift.EndMinutes - minutesOfDay(*entry.ClockOut); earlyBy > 0 {
		entry.IsEarlyLeave = true
		entry.EarlyLeaveMinutes = &earlyBy
	}

	total := round2(entry.ClockOut.Sub(*entry.ClockIn).Hours())
	overtime := round2(math.Max(0, total-shift.HoursPerDay))
	entry.TotalHours = &total
	entry.OvertimeHours = &overtime
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.TimeEntryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}
	if !emp.IsActive {
		return attendance.TimeEntryResponse{}, employee.ErrEmployeeDeactivated
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := a.TimeEntryRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.TimeEntryResponse{}, attendance.ErrAlreadyClockedIn
	}

	entry := attendance.TimeEntry{
		EmployeeID: employeeID,
		Date:       today,
		ClockIn:    &now,
	}
	applyShift(&entry, ShiftFromEmployee(emp))

	created, err := a.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return toTimeEntryResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.TimeEntryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	entry, err := a.TimeEntryRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if entry == nil || entry.ClockIn == nil {
		return attendance.TimeEntryResponse{}, attendance.ErrNotClockedIn
	}
	if entry.ClockOut != nil {
		return attendance.TimeEntryResponse{}, attendance.ErrAlreadyClockedOut
	}

	entry.ClockOut = &now
	applyShift(entry, ShiftFromEmployee(emp))

	if err := a.TimeEntryRepository.Update(ctx, *entry); err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	return toTimeEntryResponse(*entry), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.TimeEntryFilter) (attendance.ListTimeEntriesResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListTimeEntriesResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return a.ListTimeEntries(ctx, filter)
}

// ListTimeEntries implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListTimeEntries(ctx context.Context, filter attendance.TimeEntryFilter) (attendance.ListTimeEntriesResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListTimeEntriesResponse{}, err
	}

	entries, totalCount, err := a.TimeEntryRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListTimeEntriesResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]attendance.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimeEntryResponse(entry))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))

	return attendance.ListTimeEntriesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Entries:    responses,
	}, nil
}

// UpdateTimeEntry implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateTimeEntry(ctx context.Context, req attendance.UpdateTimeEntryRequest) (attendance.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TimeEntryResponse{}, err
	}

	entry, err := a.TimeEntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeEntryResponse{}, attendance.ErrTimeEntryNotFound
		}
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	if req.ClockIn != nil && *req.ClockIn != "" {
		clockIn, _ := time.Parse(time.RFC3339, *req.ClockIn)
		clockIn = clockIn.UTC()
		entry.ClockIn = &clockIn
	}
	if req.ClockOut != nil && *req.ClockOut != "" {
		clockOut, _ := time.Parse(time.RFC3339, *req.ClockOut)
		clockOut = clockOut.UTC()
		entry.ClockOut = &clockOut
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, entry.EmployeeID)
	if err != nil {
		return attendance.TimeEntryResponse{}, err
	}
	applyShift(&entry, ShiftFromEmployee(emp))

	if err := a.TimeEntryRepository.Update(ctx, entry); err != nil {
		return attendance.TimeEntryResponse{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	return toTimeEntryResponse(entry), nil
}

// DeleteTimeEntry implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteTimeEntry(ctx context.Context, id string) error {
	if err := a.TimeEntryRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrTimeEntryNotFound
		}
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

// MonthlyLog implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyLog(ctx context.Context, req attendance.MonthlyRequest) ([]attendance.DailyLogEntry, error) {
	analytics, err := a.MonthlyAnalytics(ctx, req)
	if err != nil {
		return nil, err
	}
	return analytics.Days, nil
}

// MonthlyAnalytics implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyAnalytics(ctx context.Context, req attendance.MonthlyRequest) (attendance.AttendanceAnalytics, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceAnalytics{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceAnalytics{}, err
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	entries, err := a.TimeEntryRepository.ListByEmployeeBetween(ctx, req.EmployeeID, first, last)
	if err != nil {
		return attendance.AttendanceAnalytics{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	holidays, err := a.HolidayRepository.ListForYear(ctx, req.Year)
	if err != nil {
		return attendance.AttendanceAnalytics{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	log := BuildMonthlyLog(req.Month, req.Year, entries, ShiftFromEmployee(emp), emp.JoinDate, time.Now().UTC(), holidays)

	return Summarize(req.EmployeeID, req.Month, req.Year, log), nil
}

func NewAttendanceService(
	db *database.DB,
	timeEntryRepo attendance.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                  db,
		TimeEntryRepository: timeEntryRepo,
		EmployeeRepository:  employeeRepo,
		HolidayRepository:   holidayRepo,
	}
}
