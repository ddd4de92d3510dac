package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the closed set of approval roles. The scope filter and the approval
// workflow switch on it exhaustively; never compare raw strings elsewhere.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleDFD      Role = "dfd"
	RoleHRD      Role = "hrd"
)

func ValidRoles() []Role {
	return []Role{RoleEmployee, RoleManager, RoleDFD, RoleHRD}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleDFD, RoleHRD:
		return true
	}
	return false
}

// IsApprover reports whether the role reviews leave requests at some stage.
func (r Role) IsApprover() bool {
	return r == RoleManager || r == RoleDFD || r == RoleHRD
}

type EmploymentStatus string

const (
	StatusActive   EmploymentStatus = "active"
	StatusResigned EmploymentStatus = "resigned"
)

// Employee is the profile record. ManagerID is a weak reference into the same
// table forming a parent-pointer tree; the tree is assumed well formed and is
// not validated for cycles.
type Employee struct {
	ID           string
	Email        string
	PasswordHash *string
	FullName     string
	Department   string
	Role         Role
	ManagerID    *string
	JoinDate     *time.Time
	LeaveBalance int // signed: negative balance is leave debt
	Status       EmploymentStatus
	BaseSalary   *decimal.Decimal
	Phone        *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	ManagerName *string
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
