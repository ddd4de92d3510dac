package leave

import (
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
)

// VisibleTo decides whether the viewer may see an approved request on the
// shared calendar.
//
//   - hrd sees everything
//   - everyone sees their own requests
//   - manager sees direct reports (requester's manager_id == viewer)
//   - dfd sees direct reports OR anyone in the same department; the
//     department fallback stands in for walking the manager chain, which
//     this system deliberately avoids
//   - employee sees only their own
func VisibleTo(viewer *employee.Employee, req *leave.LeaveRequest) bool {
	if viewer.Role == employee.RoleHRD {
		return true
	}
	if req.EmployeeID == viewer.ID {
		return true
	}

	switch viewer.Role {
	case employee.RoleManager:
		return req.EmployeeManagerID != nil && *req.EmployeeManagerID == viewer.ID
	case employee.RoleDFD:
		if req.EmployeeManagerID != nil && *req.EmployeeManagerID == viewer.ID {
			return true
		}
		return req.Department != nil && *req.Department == viewer.Department
	default:
		return false
	}
}
