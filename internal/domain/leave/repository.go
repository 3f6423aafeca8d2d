package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetApprovedOverlapping(ctx context.Context, employeeID string, leaveType LeaveType, start, end time.Time) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, req LeaveRequest) error
}

type LeaveBalanceRepository interface {
	GetByEmployeeTypeYear(ctx context.Context, employeeID string, leaveType LeaveType, year int) (LeaveBalance, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	Upsert(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	AddUsedDays(ctx context.Context, employeeID string, leaveType LeaveType, year int, days float64) error
}
