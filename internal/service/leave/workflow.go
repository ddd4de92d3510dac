package leave

import (
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
)

// InitialStage places a new request at the first stage above the requester's
// own level: an employee starts at manager review, a manager's own request
// at dfd, a dfd's at hrd. HRD requests also start at hrd, so HRD effectively
// self-approves in one step.
func InitialStage(requester employee.Role) leave.Stage {
	switch requester {
	case employee.RoleManager:
		return leave.StageDFD
	case employee.RoleDFD, employee.RoleHRD:
		return leave.StageHRD
	default:
		return leave.StageManager
	}
}

// NextStage returns the stage a request advances to when approved at the
// given stage. Both manager and dfd approvals route directly to hrd; the
// source system never chains manager review into dfd review.
func NextStage(current leave.Stage) leave.Stage {
	switch current {
	case leave.StageManager, leave.StageDFD:
		return leave.StageHRD
	case leave.StageHRD:
		return leave.StageCompleted
	default:
		return leave.StageCompleted
	}
}

// StageForRole maps an approver role to the stage it reviews. Non-approver
// roles review nothing and get an empty stage.
func StageForRole(role employee.Role) (leave.Stage, bool) {
	switch role {
	case employee.RoleManager:
		return leave.StageManager, true
	case employee.RoleDFD:
		return leave.StageDFD, true
	case employee.RoleHRD:
		return leave.StageHRD, true
	default:
		return "", false
	}
}

// CanReview reports whether the reviewer's role matches the stage the
// request is currently waiting on. Only pending requests are reviewable.
func CanReview(reviewer employee.Role, req *leave.LeaveRequest) bool {
	if req.Status != leave.StatusPending {
		return false
	}
	stage, ok := StageForRole(reviewer)
	if !ok {
		return false
	}
	return req.Stage == stage
}

// IsFinalApproval reports whether approving at this stage terminates the
// workflow with status approved (and triggers the balance deduction).
func IsFinalApproval(stage leave.Stage) bool {
	return stage == leave.StageHRD
}

// DeductionDays is the balance deduction applied on final approval: the
// working-day count of the range when the leave type deducts quota, zero
// otherwise.
func DeductionDays(req *leave.LeaveRequest, leaveType leave.LeaveType, holidays HolidaySet) int {
	if !leaveType.IsQuotaDeduction {
		return 0
	}
	return WorkingDays(req.StartDate, req.EndDate, holidays)
}
