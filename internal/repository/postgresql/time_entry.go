package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/attendance"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

const timeEntryColumns = `
	t.id, t.employee_id, t.date, t.clock_in, t.clock_out,
	t.total_hours, t.overtime_hours, t.is_late, t.is_early_leave,
	t.late_minutes, t.early_leave_minutes, t.created_at, t.updated_at
`

func scanTimeEntry(row pgx.Row) (attendance.TimeEntry, error) {
	var entry attendance.TimeEntry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
		&entry.TotalHours, &entry.OvertimeHours, &entry.IsLate, &entry.IsEarlyLeave,
		&entry.LateMinutes, &entry.EarlyLeaveMinutes, &entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

// Create implements attendance.TimeEntryRepository.
func (t *timeEntryRepository) Create(ctx context.Context, entry attendance.TimeEntry) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		INSERT INTO time_entries (
			employee_id, date, clock_in, clock_out, total_hours, overtime_hours,
			is_late, is_early_leave, late_minutes, early_leave_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.ClockIn,
		entry.ClockOut,
		entry.TotalHours,
		entry.OvertimeHours,
		entry.IsLate,
		entry.IsEarlyLeave,
		entry.LateMinutes,
		entry.EarlyLeaveMinutes,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.TimeEntry{}, attendance.ErrEntryExists
		}
		return attendance.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// Update implements attendance.TimeEntryRepository.
func (t *timeEntryRepository) Update(ctx context.Context, entry attendance.TimeEntry) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE time_entries
		SET clock_in = $1, clock_out = $2, total_hours = $3, overtime_hours = $4,
			is_late = $5, is_early_leave = $6, late_minutes = $7, early_leave_minutes = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		entry.ClockIn,
		entry.ClockOut,
		entry.TotalHours,
		entry.OvertimeHours,
		entry.IsLate,
		entry.IsEarlyLeave,
		entry.LateMinutes,
		entry.EarlyLeaveMinutes,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrTimeEntryNotFound
	}

	return nil
}

// GetByID implements attendance.TimeEntryRepository.
func (t *timeEntryRepository) GetByID(ctx context.Context, id string) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries t WHERE t.id = $1`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		return attendance.TimeEntry{}, err
	}

	return entry, nil
}

// GetByEmployeeAndDate implements attendance.TimeEntryRepository.
// Returns nil without error when no entry exists for the date.
func (t *timeEntryRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `SELECT ` + timeEntryColumns + ` FROM time_entries t WHERE t.employee_id = $1 AND t.date = $2 LIMIT 1`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}

	return &entry, nil
}

// GetOpenEntry implements attendance.TimeEntryRepository.
func (t *timeEntryRepository) GetOpenEntry(ctx context.Context, employeeID string) (attendance.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.employee_id = $1
		  AND t.clock_in IS NOT NULL
		  AND t.clock_out IS NULL
		ORDER BY t.clock_in DESC
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.TimeEntry{}, attendance.ErrNotClockedIn
		}
		return attendance.TimeEntry{}, fmt.Errorf("failed to get open time entry: %w", err)
	}

	return entry, nil
}

// ListByEmployeeBetween implements attendance.TimeEntryRepository.
func (t *timeEntryRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.TimeEntry, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries t
		WHERE t.employee_id = $1
		  AND t.date BETWEEN $2 AND $3
		ORDER BY t.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	return entries, nil
}

// List implements attendance.TimeEntryRepository.
func (t *timeEntryRepository) List(ctx context.Context, filter attendance.TimeEntryFilter) ([]attendance.TimeEntry, int64, error) {
	q := GetQuerier(ctx, t.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("t.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("t.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("t.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM time_entries t` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	query := `
		SELECT ` + timeEntryColumns + `, e.full_name
		FROM time_entries t
		JOIN employees e ON e.id = t.employee_id` + whereClause +
		fmt.Sprintf(" ORDER BY t.date DESC, e.full_name ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.TimeEntry
	for rows.Next() {
		var entry attendance.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.ClockIn, &entry.ClockOut,
			&entry.TotalHours, &entry.OvertimeHours, &entry.IsLate, &entry.IsEarlyLeave,
			&entry.LateMinutes, &entry.EarlyLeaveMinutes, &entry.CreatedAt, &entry.UpdatedAt,
			&entry.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	return entries, totalCount, nil
}

// Delete implements attendance.TimeEntryRepository.
func (t *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, t.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func NewTimeEntryRepository(db *database.DB) attendance.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}
