package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sinarkarya/leave-backend-go/internal/domain/audit"
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
	"github.com/sinarkarya/leave-backend-go/internal/domain/master/holiday"
	"github.com/sinarkarya/leave-backend-go/internal/domain/notification"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/database"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
	"github.com/sinarkarya/leave-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db                  *database.DB
	leaveTypeRepo       leave.LeaveTypeRepository
	leaveRequestRepo    leave.LeaveRequestRepository
	employeeRepo        employee.EmployeeRepository
	holidayRepo         holiday.HolidayRepository
	auditService        audit.Service
	notificationService notification.Service
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepo leave.LeaveTypeRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	auditService audit.Service,
	notificationService notification.Service,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                  db,
		leaveTypeRepo:       leaveTypeRepo,
		leaveRequestRepo:    leaveRequestRepo,
		employeeRepo:        employeeRepo,
		holidayRepo:         holidayRepo,
		auditService:        auditService,
		notificationService: notificationService,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	leaveType := leave.LeaveType{
		Name:               req.Name,
		Code:               req.Code,
		IsQuotaDeduction:   req.IsQuotaDeduction,
		RequiresAttachment: req.RequiresAttachment,
		BadgeColor:         req.BadgeColor,
	}
	created, err := l.leaveTypeRepo.Create(ctx, leaveType)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

// UpdateLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, req leave.UpdateLeaveTypeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return l.leaveTypeRepo.Update(ctx, req)
}

// ListLeaveTypes implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return l.leaveTypeRepo.List(ctx)
}

// DeleteLeaveType implements leave.LeaveService.
func (l *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	return l.leaveTypeRepo.Delete(ctx, id)
}

// CreateRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateRequest(ctx context.Context, requesterID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	requester, err := l.employeeRepo.GetByID(ctx, requesterID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get requester: %w", err)
	}

	leaveType, err := l.leaveTypeRepo.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	if leaveType.RequiresAttachment && (req.AttachmentURL == nil || *req.AttachmentURL == "") {
		return leave.LeaveRequestResponse{}, leave.ErrAttachmentRequired
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	request := leave.LeaveRequest{
		EmployeeID:    requester.ID,
		LeaveTypeID:   leaveType.ID,
		StartDate:     start,
		EndDate:       end,
		Reason:        req.Reason,
		AttachmentURL: req.AttachmentURL,
		Status:        leave.StatusPending,
		Stage:         InitialStage(requester.Role),
	}

	created, err := l.leaveRequestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	l.auditService.Record(ctx, requester.ID, string(requester.Role), audit.ActionSubmit,
		fmt.Sprintf("%s submitted a leave request (%s to %s)", requester.FullName, req.StartDate, req.EndDate))

	holidays, err := l.holidaySet(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.EmployeeName = &requester.FullName
	created.Department = &requester.Department
	created.LeaveTypeName = &leaveType.Name
	created.LeaveTypeCode = &leaveType.Code
	return l.toResponse(&created, holidays), nil
}

// ListMyRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMyRequests(ctx context.Context, requesterID string) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.leaveRequestRepo.ListByEmployee(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return l.toResponses(ctx, requests)
}

// ListRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := l.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return l.toResponses(ctx, requests)
}

// ListPendingForReviewer implements leave.LeaveService. The task list for an
// approver is every pending request waiting at the stage their role reviews.
func (l *LeaveServiceImpl) ListPendingForReviewer(ctx context.Context, reviewerID string) ([]leave.LeaveRequestResponse, error) {
	reviewer, err := l.employeeRepo.GetByID(ctx, reviewerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get reviewer: %w", err)
	}

	stage, ok := StageForRole(reviewer.Role)
	if !ok {
		return nil, leave.ErrNotCurrentApprover
	}

	requests, err := l.leaveRequestRepo.ListPendingByStage(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return l.toResponses(ctx, requests)
}

// GetRequest implements leave.LeaveService. Approvers reviewing a pending
// request also get the advisory conflict list.
func (l *LeaveServiceImpl) GetRequest(ctx context.Context, viewerID, requestID string) (leave.LeaveRequestResponse, error) {
	viewer, err := l.employeeRepo.GetByID(ctx, viewerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get viewer: %w", err)
	}

	request, err := l.leaveRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if !viewer.Role.IsApprover() && request.EmployeeID != viewer.ID {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}

	holidays, err := l.holidaySet(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	resp := l.toResponse(&request, holidays)

	if viewer.Role.IsApprover() && request.Status == leave.StatusPending {
		approved, err := l.leaveRequestRepo.ListApprovedOverlapping(ctx, request.StartDate, request.EndDate)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to check conflicts: %w", err)
		}
		for _, c := range FindConflicts(&request, approved) {
			name := ""
			if c.EmployeeName != nil {
				name = *c.EmployeeName
			}
			resp.Conflicts = append(resp.Conflicts, leave.Conflict{
				RequestID:    c.ID,
				EmployeeName: name,
				StartDate:    c.StartDate,
				EndDate:      c.EndDate,
			})
		}
	}

	return resp, nil
}

// Approve implements leave.LeaveService. The reviewer's role must match the
// request's current stage; the repository applies the stage change with a
// compare-and-set so a stale read can never re-apply a transition.
func (l *LeaveServiceImpl) Approve(ctx context.Context, reviewerID, requestID string) error {
	reviewer, request, err := l.loadReview(ctx, reviewerID, requestID)
	if err != nil {
		return err
	}

	stage := request.Stage

	if !IsFinalApproval(stage) {
		applied, err := l.leaveRequestRepo.AdvanceStage(ctx, request.ID, stage, NextStage(stage))
		if err != nil {
			return fmt.Errorf("failed to advance stage: %w", err)
		}
		if !applied {
			return leave.ErrStageMismatch
		}

		l.recordDecision(ctx, reviewer, request, audit.ActionApprove, "approved")
		l.notificationService.Notify(ctx, notification.CreateNotificationRequest{
			RecipientID: request.EmployeeID,
			Type:        notification.TypeLeaveAdvanced,
			Title:       "Request moved forward",
			Message:     fmt.Sprintf("Your leave request was approved by the %s and now awaits HRD review.", reviewer.Role),
		})
		return nil
	}

	// Final HRD approval: terminate the workflow and deduct the balance in
	// one transaction. Deduction happens exactly once because the
	// compare-and-set fails for any later retry.
	leaveType, err := l.leaveTypeRepo.GetByID(ctx, request.LeaveTypeID)
	if err != nil {
		return fmt.Errorf("failed to get leave type: %w", err)
	}
	holidays, err := l.holidaySet(ctx)
	if err != nil {
		return err
	}
	deduction := DeductionDays(&request, leaveType, holidays)

	err = postgresql.WithTransaction(ctx, l.db, func(txCtx context.Context) error {
		applied, err := l.leaveRequestRepo.Complete(txCtx, request.ID, leave.StageHRD, leave.StatusApproved)
		if err != nil {
			return fmt.Errorf("failed to approve request: %w", err)
		}
		if !applied {
			return leave.ErrStageMismatch
		}
		if deduction != 0 {
			if err := l.employeeRepo.AdjustLeaveBalance(txCtx, request.EmployeeID, -deduction); err != nil {
				return fmt.Errorf("failed to deduct leave balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	l.recordDecision(ctx, reviewer, request, audit.ActionApprove, "approved")
	l.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: request.EmployeeID,
		Type:        notification.TypeLeaveApproved,
		Title:       "Leave request approved",
		Message:     fmt.Sprintf("Your leave request was approved. %d day(s) deducted from your balance.", deduction),
	})
	return nil
}

// Reject implements leave.LeaveService. Rejection short-circuits the chain
// from any pending stage.
func (l *LeaveServiceImpl) Reject(ctx context.Context, reviewerID, requestID string) error {
	reviewer, request, err := l.loadReview(ctx, reviewerID, requestID)
	if err != nil {
		return err
	}

	applied, err := l.leaveRequestRepo.Complete(ctx, request.ID, request.Stage, leave.StatusRejected)
	if err != nil {
		return fmt.Errorf("failed to reject request: %w", err)
	}
	if !applied {
		return leave.ErrStageMismatch
	}

	l.recordDecision(ctx, reviewer, request, audit.ActionReject, "rejected")
	l.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: request.EmployeeID,
		Type:        notification.TypeLeaveRejected,
		Title:       "Leave request rejected",
		Message:     "Sorry, your leave request was rejected.",
	})
	return nil
}

// Calendar implements leave.LeaveService.
func (l *LeaveServiceImpl) Calendar(ctx context.Context, viewerID string, year int, month int) ([]leave.CalendarEntry, error) {
	viewer, err := l.employeeRepo.GetByID(ctx, viewerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get viewer: %w", err)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	approved, err := l.leaveRequestRepo.ListApprovedOverlapping(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave: %w", err)
	}

	entries := []leave.CalendarEntry{}
	for i := range approved {
		req := &approved[i]
		if !VisibleTo(&viewer, req) {
			continue
		}
		entry := leave.CalendarEntry{
			RequestID:  req.ID,
			EmployeeID: req.EmployeeID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
		}
		if req.EmployeeName != nil {
			entry.EmployeeName = *req.EmployeeName
		}
		if req.Department != nil {
			entry.Department = *req.Department
		}
		if req.LeaveTypeName != nil {
			entry.LeaveType = *req.LeaveTypeName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// loadReview fetches reviewer and request and checks that the request is
// still pending at the reviewer's stage.
func (l *LeaveServiceImpl) loadReview(ctx context.Context, reviewerID, requestID string) (employee.Employee, leave.LeaveRequest, error) {
	reviewer, err := l.employeeRepo.GetByID(ctx, reviewerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, leave.LeaveRequest{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, leave.LeaveRequest{}, fmt.Errorf("failed to get reviewer: %w", err)
	}

	request, err := l.leaveRequestRepo.GetByID(ctx, requestID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return employee.Employee{}, leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.IsTerminal() {
		return employee.Employee{}, leave.LeaveRequest{}, leave.ErrStageMismatch
	}
	if !CanReview(reviewer.Role, &request) {
		return employee.Employee{}, leave.LeaveRequest{}, leave.ErrNotCurrentApprover
	}
	return reviewer, request, nil
}

// recordDecision writes the audit entry for an approval decision. Best
// effort: the transition has already committed.
func (l *LeaveServiceImpl) recordDecision(ctx context.Context, reviewer employee.Employee, request leave.LeaveRequest, action, verb string) {
	name := request.EmployeeID
	if request.EmployeeName != nil {
		name = *request.EmployeeName
	}
	l.auditService.Record(ctx, reviewer.ID, string(reviewer.Role), action,
		fmt.Sprintf("%s %s leave for %s", reviewer.Role, verb, name))
}

func (l *LeaveServiceImpl) holidaySet(ctx context.Context) (HolidaySet, error) {
	dates, err := l.holidayRepo.ListDates(ctx)
	if err != nil {
		slog.Error("failed to load holidays", "error", err)
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	return NewHolidaySet(dates), nil
}

func (l *LeaveServiceImpl) toResponses(ctx context.Context, requests []leave.LeaveRequest) ([]leave.LeaveRequestResponse, error) {
	holidays, err := l.holidaySet(ctx)
	if err != nil {
		return nil, err
	}
	responses := []leave.LeaveRequestResponse{}
	for i := range requests {
		responses = append(responses, l.toResponse(&requests[i], holidays))
	}
	return responses, nil
}

func (l *LeaveServiceImpl) toResponse(req *leave.LeaveRequest, holidays HolidaySet) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:                req.ID,
		EmployeeID:        req.EmployeeID,
		LeaveTypeID:       req.LeaveTypeID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		WorkingDays:       WorkingDays(req.StartDate, req.EndDate, holidays),
		Reason:            req.Reason,
		AttachmentURL:     req.AttachmentURL,
		Status:            string(req.Status),
		Stage:             string(req.Stage),
		ApprovedByManager: req.ApprovedByManager,
		ApprovedByDFD:     req.ApprovedByDFD,
		CreatedAt:         req.CreatedAt,
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	if req.Department != nil {
		resp.Department = *req.Department
	}
	if req.LeaveTypeName != nil {
		resp.LeaveTypeName = *req.LeaveTypeName
	}
	if req.LeaveTypeCode != nil {
		resp.LeaveTypeCode = *req.LeaveTypeCode
	}
	return resp
}
