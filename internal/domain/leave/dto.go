package leave

import (
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name               string  `json:"name"`
	Code               string  `json:"code"`
	IsQuotaDeduction   bool    `json:"is_quota_deduction"`
	RequiresAttachment bool    `json:"requires_attachment"`
	BadgeColor         *string `json:"badge_color,omitempty"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if len(r.Code) > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must not exceed 10 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveTypeRequest struct {
	ID                 string
	Name               *string `json:"name,omitempty"`
	Code               *string `json:"code,omitempty"`
	IsQuotaDeduction   *bool   `json:"is_quota_deduction,omitempty"`
	RequiresAttachment *bool   `json:"requires_attachment,omitempty"`
	BadgeColor         *string `json:"badge_color,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Code != nil && validator.IsEmpty(*r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateLeaveRequestRequest struct {
	LeaveTypeID   string  `json:"leave_type_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id must be a valid id",
		})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the HRD request listing.
type ListFilter struct {
	Status     string
	Department string
	Search     string
}

type LeaveRequestResponse struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employee_id"`
	EmployeeName      string     `json:"employee_name,omitempty"`
	Department        string     `json:"department,omitempty"`
	LeaveTypeID       string     `json:"leave_type_id"`
	LeaveTypeName     string     `json:"leave_type_name,omitempty"`
	LeaveTypeCode     string     `json:"leave_type_code,omitempty"`
	BadgeColor        *string    `json:"badge_color,omitempty"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	WorkingDays       int        `json:"working_days"`
	Reason            string     `json:"reason"`
	AttachmentURL     *string    `json:"attachment_url,omitempty"`
	Status            string     `json:"status"`
	Stage             string     `json:"stage"`
	ApprovedByManager bool       `json:"approved_by_manager"`
	ApprovedByDFD     bool       `json:"approved_by_dfd"`
	CreatedAt         time.Time  `json:"created_at"`
	Conflicts         []Conflict `json:"conflicts,omitempty"`
}

// Conflict is an already-approved overlapping request in the same department,
// shown to the reviewing approver. Advisory only; it never blocks approval.
type Conflict struct {
	RequestID    string    `json:"request_id"`
	EmployeeName string    `json:"employee_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// CalendarEntry is one approved leave shown on the shared calendar, already
// filtered by the viewer's visibility scope.
type CalendarEntry struct {
	RequestID    string    `json:"request_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Department   string    `json:"department"`
	LeaveType    string    `json:"leave_type"`
	BadgeColor   *string   `json:"badge_color,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}
