package response

import (
	"errors"
	"net/http"

	"github.com/sinarkarya/leave-backend-go/internal/domain/auth"
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
	"github.com/sinarkarya/leave-backend-go/internal/domain/master/department"
	"github.com/sinarkarya/leave-backend-go/internal/domain/master/holiday"
	"github.com/sinarkarya/leave-backend-go/internal/domain/payroll"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountResigned):
		Forbidden(w, "Account is no longer active")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google login is not configured", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrUnknownDepartment):
		BadRequest(w, "Department does not exist", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrStageMismatch):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotCurrentApprover):
		Forbidden(w, "Not the current approver for this request")
	case errors.Is(err, leave.ErrAttachmentRequired):
		BadRequest(w, "This leave type requires an attachment", nil)

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department already exists")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDateExists):
		Conflict(w, "Holiday already registered for that date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrNothingToCash):
		BadRequest(w, "Employee has no leave balance to encash", nil)
	case errors.Is(err, payroll.ErrResetNotConfirmed):
		BadRequest(w, "Annual reset requires explicit confirmation", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
