package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, req UpdateLeaveTypeRequest) error
	Delete(ctx context.Context, id string) error
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	ListPendingByStage(ctx context.Context, stage Stage) ([]LeaveRequest, error)
	// ListApprovedOverlapping returns approved requests whose date range
	// intersects [start, end], with requester join fields populated.
	ListApprovedOverlapping(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)

	// AdvanceStage moves a pending request from expectedStage to next and
	// records the per-stage approval flag. It applies nothing and reports
	// false when the request is no longer pending at expectedStage.
	AdvanceStage(ctx context.Context, id string, expectedStage, next Stage) (bool, error)
	// Complete terminates a pending request at expectedStage with the given
	// status and stage=completed, with the same compare-and-set guard.
	Complete(ctx context.Context, id string, expectedStage Stage, status Status) (bool, error)
}
