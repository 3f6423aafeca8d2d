package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveType       LeaveType
	StartDate       time.Time
	EndDate         time.Time
	IsHalfDay       bool
	TotalDays       float64
	Reason          *string
	Status          LeaveRequestStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}

// LeaveBalance tracks per-year quota per leave type. The payroll and
// attendance cores only read RemainingDays.
type LeaveBalance struct {
	ID            string
	EmployeeID    string
	LeaveType     LeaveType
	Year          int
	TotalDays     float64
	UsedDays      float64
	RemainingDays float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
