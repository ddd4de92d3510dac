package leave

import (
	"context"
)

type LeaveService interface {
	// Types
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	UpdateLeaveType(ctx context.Context, req UpdateLeaveTypeRequest) error
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)
	DeleteLeaveType(ctx context.Context, id string) error

	// Requests
	CreateRequest(ctx context.Context, requesterID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ListMyRequests(ctx context.Context, requesterID string) ([]LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter ListFilter) ([]LeaveRequestResponse, error)
	ListPendingForReviewer(ctx context.Context, reviewerID string) ([]LeaveRequestResponse, error)
	GetRequest(ctx context.Context, viewerID, requestID string) (LeaveRequestResponse, error)
	Approve(ctx context.Context, reviewerID, requestID string) error
	Reject(ctx context.Context, reviewerID, requestID string) error

	// Calendar
	Calendar(ctx context.Context, viewerID string, year int, month int) ([]CalendarEntry, error)
}
