package leave

import (
	"context"
)

type LeaveService interface {
	SubmitRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, req RejectLeaveRequestRequest) (LeaveRequestResponse, error)
	CancelRequest(ctx context.Context, requestID string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)
	GetMyRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestsResponse, error)
	GetMyBalances(ctx context.Context, year int) ([]LeaveBalanceResponse, error)
}
