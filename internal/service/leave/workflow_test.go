package leave

import (
	"testing"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func TestInitialStage(t *testing.T) {
	tests := []struct {
		role employee.Role
		want leave.Stage
	}{
		{employee.RoleEmployee, leave.StageManager},
		{employee.RoleManager, leave.StageDFD},
		{employee.RoleDFD, leave.StageHRD},
		{employee.RoleHRD, leave.StageHRD},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InitialStage(tt.role), "role=%s", tt.role)
	}
}

func TestNextStage(t *testing.T) {
	assert.Equal(t, leave.StageHRD, NextStage(leave.StageManager))
	assert.Equal(t, leave.StageHRD, NextStage(leave.StageDFD))
	assert.Equal(t, leave.StageCompleted, NextStage(leave.StageHRD))
}

func TestStageForRole(t *testing.T) {
	stage, ok := StageForRole(employee.RoleManager)
	assert.True(t, ok)
	assert.Equal(t, leave.StageManager, stage)

	stage, ok = StageForRole(employee.RoleDFD)
	assert.True(t, ok)
	assert.Equal(t, leave.StageDFD, stage)

	stage, ok = StageForRole(employee.RoleHRD)
	assert.True(t, ok)
	assert.Equal(t, leave.StageHRD, stage)

	_, ok = StageForRole(employee.RoleEmployee)
	assert.False(t, ok)
}

func TestCanReview(t *testing.T) {
	pendingAtManager := &leave.LeaveRequest{Status: leave.StatusPending, Stage: leave.StageManager}
	pendingAtHRD := &leave.LeaveRequest{Status: leave.StatusPending, Stage: leave.StageHRD}
	approved := &leave.LeaveRequest{Status: leave.StatusApproved, Stage: leave.StageCompleted}

	assert.True(t, CanReview(employee.RoleManager, pendingAtManager))
	assert.False(t, CanReview(employee.RoleDFD, pendingAtManager))
	assert.False(t, CanReview(employee.RoleHRD, pendingAtManager))
	assert.True(t, CanReview(employee.RoleHRD, pendingAtHRD))
	assert.False(t, CanReview(employee.RoleEmployee, pendingAtManager))
	assert.False(t, CanReview(employee.RoleHRD, approved))
}

func TestIsFinalApproval(t *testing.T) {
	assert.False(t, IsFinalApproval(leave.StageManager))
	assert.False(t, IsFinalApproval(leave.StageDFD))
	assert.True(t, IsFinalApproval(leave.StageHRD))
}

func TestDeductionDays(t *testing.T) {
	req := &leave.LeaveRequest{
		StartDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
	}

	t.Run("deducting type counts working days", func(t *testing.T) {
		lt := leave.LeaveType{IsQuotaDeduction: true}
		assert.Equal(t, 3, DeductionDays(req, lt, NewHolidaySet(nil)))
	})

	t.Run("non deducting type costs nothing", func(t *testing.T) {
		lt := leave.LeaveType{IsQuotaDeduction: false}
		assert.Equal(t, 0, DeductionDays(req, lt, NewHolidaySet(nil)))
	})

	t.Run("holidays reduce the deduction", func(t *testing.T) {
		lt := leave.LeaveType{IsQuotaDeduction: true}
		holidays := NewHolidaySet([]time.Time{time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)})
		assert.Equal(t, 2, DeductionDays(req, lt, holidays))
	})
}
