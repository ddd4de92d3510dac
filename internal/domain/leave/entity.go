package leave

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Stage is the approver role a pending request is currently waiting on.
// Stages only ever move forward through the fixed order
// manager -> dfd -> hrd -> completed; rejection jumps straight to completed.
type Stage string

const (
	StageManager   Stage = "manager"
	StageDFD       Stage = "dfd"
	StageHRD       Stage = "hrd"
	StageCompleted Stage = "completed"
)

// LeaveType is static reference data. IsQuotaDeduction controls whether final
// approval deducts working days from the requester's balance.
type LeaveType struct {
	ID                 string
	Name               string
	Code               string
	IsQuotaDeduction   bool
	RequiresAttachment bool
	BadgeColor         *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LeaveRequest is the workflow record. Status and Stage are only mutated by
// the approval workflow; requests are never deleted.
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	AttachmentURL *string

	Status            Status
	Stage             Stage
	ApprovedByManager bool
	ApprovedByDFD     bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined requester fields, populated by list/detail queries.
	EmployeeName      *string
	Department        *string
	EmployeeManagerID *string
	LeaveTypeName     *string
	LeaveTypeCode     *string
	IsQuotaDeduction  *bool
}

// IsTerminal reports whether the request has reached a final status.
func (r *LeaveRequest) IsTerminal() bool {
	return r.Status != StatusPending
}
