package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

const leaveBalanceColumns = `
	id, employee_id, leave_type, year, total_days, used_days,
	total_days - used_days AS remaining_days, created_at, updated_at
`

func scanLeaveBalance(row pgx.Row) (leave.LeaveBalance, error) {
	var balance leave.LeaveBalance
	err := row.Scan(
		&balance.ID, &balance.EmployeeID, &balance.LeaveType, &balance.Year,
		&balance.TotalDays, &balance.UsedDays, &balance.RemainingDays,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	return balance, err
}

// GetByEmployeeTypeYear implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) GetByEmployeeTypeYear(ctx context.Context, employeeID string, leaveType leave.LeaveType, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type = $2 AND year = $3
	`

	balance, err := scanLeaveBalance(q.QueryRow(ctx, query, employeeID, leaveType, year))
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// GetByEmployeeYear implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveBalanceColumns + `
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
		ORDER BY leave_type ASC
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		balance, err := scanLeaveBalance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, balance)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave balances: %w", err)
	}

	return balances, nil
}

// Upsert implements leave.LeaveBalanceRepository. Re-upserting a quota
// keeps used_days intact.
func (l *leaveBalanceRepository) Upsert(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_balances (employee_id, leave_type, year, total_days, used_days)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, leave_type, year)
		DO UPDATE SET total_days = EXCLUDED.total_days, updated_at = NOW()
		RETURNING id, used_days, total_days - used_days, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID,
		balance.LeaveType,
		balance.Year,
		balance.TotalDays,
		balance.UsedDays,
	).Scan(&balance.ID, &balance.UsedDays, &balance.RemainingDays, &balance.CreatedAt, &balance.UpdatedAt)

	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to upsert leave balance: %w", err)
	}

	return balance, nil
}

// AddUsedDays implements leave.LeaveBalanceRepository.
func (l *leaveBalanceRepository) AddUsedDays(ctx context.Context, employeeID string, leaveType leave.LeaveType, year int, days float64) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_balances
		SET used_days = used_days + $1, updated_at = NOW()
		WHERE employee_id = $2 AND leave_type = $3 AND year = $4
	`

	tag, err := q.Exec(ctx, query, days, employeeID, leaveType, year)
	if err != nil {
		return fmt.Errorf("failed to add used days: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}
