package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/pulse-backend-go/internal/domain/leave"
	"github.com/pulsehr/pulse-backend-go/internal/pkg/database"
	"github.com/pulsehr/pulse-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	leave.LeaveBalanceRepository
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

func toLeaveRequestResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:              req.ID,
		EmployeeID:      req.EmployeeID,
		LeaveType:       string(req.LeaveType),
		StartDate:       req.StartDate.Format("2006-01-02"),
		EndDate:         req.EndDate.Format("2006-01-02"),
		IsHalfDay:       req.IsHalfDay,
		TotalDays:       req.TotalDays,
		Reason:          req.Reason,
		Status:          string(req.Status),
		ApprovedBy:      req.ApprovedBy,
		RejectionReason: req.RejectionReason,
		CreatedAt:       req.CreatedAt.Format(time.RFC3339),
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	if req.ApprovedAt != nil {
		approvedAt := req.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}

// SubmitRequest implements leave.LeaveService. The request is rejected
// up front when it overlaps any of the employee's pending or approved
// requests, or when a paid/sick quota cannot cover it. Unpaid leave
// needs no balance; its cost lands in payroll instead.
func (l *LeaveServiceImpl) SubmitRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	leaveType := leave.LeaveType(req.LeaveType)
	totalDays := CalculateLeaveDays(startDate, endDate, req.IsHalfDay)

	active, err := l.LeaveRequestRepository.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to list active leave requests: %w", err)
	}
	for _, existing := range active {
		if Overlaps(startDate, endDate, existing.StartDate, existing.EndDate) {
			return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
		}
	}

	if leaveType != leave.LeaveTypeUnpaid {
		balance, err := l.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, employeeID, leaveType, startDate.Year())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return leave.LeaveRequestResponse{}, leave.ErrBalanceNotFound
			}
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave balance: %w", err)
		}
		if totalDays > balance.RemainingDays {
			return leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		IsHalfDay:  req.IsHalfDay,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toLeaveRequestResponse(created), nil
}

// ApproveRequest implements leave.LeaveService. Approval burns the
// paid/sick quota for the year the leave starts in.
func (l *LeaveServiceImpl) ApproveRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	approverID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = leave.LeaveRequestStatusApproved
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now

	// Balance deduction and status change commit together.
	err = postgresql.WithTransaction(ctx, l.db, func(ctx context.Context) error {
		if request.LeaveType != leave.LeaveTypeUnpaid {
			balance, err := l.LeaveBalanceRepository.GetByEmployeeTypeYear(ctx, request.EmployeeID, request.LeaveType, request.StartDate.Year())
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return leave.ErrBalanceNotFound
				}
				return fmt.Errorf("failed to get leave balance: %w", err)
			}
			if request.TotalDays > balance.RemainingDays {
				return leave.ErrInsufficientBalance
			}

			if err := l.LeaveBalanceRepository.AddUsedDays(ctx, request.EmployeeID, request.LeaveType, request.StartDate.Year(), request.TotalDays); err != nil {
				return fmt.Errorf("failed to deduct leave balance: %w", err)
			}
		}

		if err := l.LeaveRequestRepository.UpdateStatus(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(request), nil
}

// RejectRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectRequest(ctx context.Context, req leave.RejectLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	request.Status = leave.LeaveRequestStatusRejected
	request.RejectionReason = &req.Reason

	if err := l.LeaveRequestRepository.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return toLeaveRequestResponse(request), nil
}

// CancelRequest implements leave.LeaveService. Only the requester can
// cancel, and only while the request is still pending.
func (l *LeaveServiceImpl) CancelRequest(ctx context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.EmployeeID != employeeID {
		return leave.LeaveRequestResponse{}, leave.ErrNotRequestOwner
	}

	if request.Status != leave.LeaveRequestStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrAlreadyProcessed
	}

	request.Status = leave.LeaveRequestStatusCancelled

	if err := l.LeaveRequestRepository.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return toLeaveRequestResponse(request), nil
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	requests, totalCount, err := l.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toLeaveRequestResponse(request))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))

	return leave.ListLeaveRequestsResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Requests:   responses,
	}, nil
}

// GetMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.ListLeaveRequestsResponse{}, err
	}

	filter.EmployeeID = &employeeID
	return l.ListRequests(ctx, filter)
}

// GetMyBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyBalances(ctx context.Context, year int) ([]leave.LeaveBalanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if year == 0 {
		year = time.Now().UTC().Year()
	}

	balances, err := l.LeaveBalanceRepository.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, balance := range balances {
		responses = append(responses, leave.LeaveBalanceResponse{
			LeaveType:     string(balance.LeaveType),
			Year:          balance.Year,
			TotalDays:     balance.TotalDays,
			UsedDays:      balance.UsedDays,
			RemainingDays: balance.RemainingDays,
		})
	}

	return responses, nil
}

func NewLeaveService(
	db *database.DB,
	leaveRequestRepo leave.LeaveRequestRepository,
	leaveBalanceRepo leave.LeaveBalanceRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRequestRepo,
		LeaveBalanceRepository: leaveBalanceRepo,
	}
}
