package leave

import (
	"testing"

	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func TestVisibleTo(t *testing.T) {
	hrd := &employee.Employee{ID: "hrd-1", Role: employee.RoleHRD, Department: "HR"}
	manager := &employee.Employee{ID: "mgr-1", Role: employee.RoleManager, Department: "Engineering"}
	dfd := &employee.Employee{ID: "dfd-1", Role: employee.RoleDFD, Department: "Engineering"}
	worker := &employee.Employee{ID: "emp-1", Role: employee.RoleEmployee, Department: "Engineering"}

	reportOfManager := &leave.LeaveRequest{
		EmployeeID:        "emp-2",
		Department:        strPtr("Engineering"),
		EmployeeManagerID: strPtr("mgr-1"),
	}
	otherTeam := &leave.LeaveRequest{
		EmployeeID:        "emp-3",
		Department:        strPtr("Finance"),
		EmployeeManagerID: strPtr("mgr-9"),
	}
	sameDepartment := &leave.LeaveRequest{
		EmployeeID:        "emp-4",
		Department:        strPtr("Engineering"),
		EmployeeManagerID: strPtr("mgr-9"),
	}
	own := &leave.LeaveRequest{
		EmployeeID: "emp-1",
		Department: strPtr("Engineering"),
	}

	t.Run("hrd sees everything", func(t *testing.T) {
		assert.True(t, VisibleTo(hrd, reportOfManager))
		assert.True(t, VisibleTo(hrd, otherTeam))
	})

	t.Run("everyone sees their own request", func(t *testing.T) {
		assert.True(t, VisibleTo(worker, own))
	})

	t.Run("manager sees direct reports only", func(t *testing.T) {
		assert.True(t, VisibleTo(manager, reportOfManager))
		assert.False(t, VisibleTo(manager, otherTeam))
		assert.False(t, VisibleTo(manager, sameDepartment))
	})

	t.Run("dfd sees direct reports and same department", func(t *testing.T) {
		ownReport := &leave.LeaveRequest{
			EmployeeID:        "emp-5",
			Department:        strPtr("Finance"),
			EmployeeManagerID: strPtr("dfd-1"),
		}
		assert.True(t, VisibleTo(dfd, ownReport))
		assert.True(t, VisibleTo(dfd, sameDepartment))
		assert.False(t, VisibleTo(dfd, otherTeam))
	})

	t.Run("employee sees nothing beyond their own", func(t *testing.T) {
		assert.False(t, VisibleTo(worker, sameDepartment))
		assert.False(t, VisibleTo(worker, otherTeam))
	})

	t.Run("missing join fields fail closed", func(t *testing.T) {
		bare := &leave.LeaveRequest{EmployeeID: "emp-6"}
		assert.False(t, VisibleTo(manager, bare))
		assert.False(t, VisibleTo(dfd, bare))
		assert.True(t, VisibleTo(hrd, bare))
	})
}
