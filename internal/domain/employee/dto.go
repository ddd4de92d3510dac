package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FullName     string  `json:"full_name"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	ManagerID    *string `json:"manager_id,omitempty"`
	JoinDate     string  `json:"join_date"`
	LeaveBalance int     `json:"leave_balance"`
	BaseSalary   *string `json:"base_salary,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsValidPassword(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if !Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, manager, dfd, hrd",
		})
	}
	if r.JoinDate != "" {
		if _, ok := validator.IsValidDate(r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a patch: nil fields are left untouched.
type UpdateEmployeeRequest struct {
	ID           string
	FullName     *string `json:"full_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	Role         *string `json:"role,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	JoinDate     *string `json:"join_date,omitempty"`
	LeaveBalance *int    `json:"leave_balance,omitempty"`
	BaseSalary   *string `json:"base_salary,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}
	if r.Role != nil && !Role(*r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, manager, dfd, hrd",
		})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "join_date",
				Message: "join_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusResigned) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or resigned",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Search     string
	Department string
	Status     string
}

type EmployeeResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Department   string     `json:"department"`
	Role         string     `json:"role"`
	ManagerID    *string    `json:"manager_id,omitempty"`
	ManagerName  *string    `json:"manager_name,omitempty"`
	JoinDate     *time.Time `json:"join_date,omitempty"`
	LeaveBalance int        `json:"leave_balance"`
	AnnualQuota  int        `json:"annual_quota"`
	Status       string     `json:"status"`
	BaseSalary   *string    `json:"base_salary,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
