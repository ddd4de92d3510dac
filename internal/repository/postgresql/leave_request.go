package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type_id,
	lr.start_date, lr.end_date, lr.reason, lr.attachment_url,
	lr.status, lr.stage, lr.approved_by_manager, lr.approved_by_dfd,
	lr.created_at, lr.updated_at,
	e.full_name AS employee_name,
	e.department AS department,
	e.manager_id AS employee_manager_id,
	lt.name AS leave_type_name,
	lt.code AS leave_type_code,
	lt.is_quota_deduction AS is_quota_deduction
`

const leaveRequestJoins = `
	FROM leave_requests lr
	INNER JOIN employees e ON lr.employee_id = e.id
	INNER JOIN leave_types lt ON lr.leave_type_id = lt.id
`

func scanLeaveRequest(row interface {
	Scan(dest ...any) error
}) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID,
		&req.StartDate, &req.EndDate, &req.Reason, &req.AttachmentURL,
		&req.Status, &req.Stage, &req.ApprovedByManager, &req.ApprovedByDFD,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
		&req.Department,
		&req.EmployeeManagerID,
		&req.LeaveTypeName,
		&req.LeaveTypeCode,
		&req.IsQuotaDeduction,
	)
	return req, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type_id,
			start_date, end_date, reason, attachment_url,
			status, stage, approved_by_manager, approved_by_dfd,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			$7, $8, false, false,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.Reason, request.AttachmentURL,
		request.Status, request.Stage,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + leaveRequestJoins + " WHERE lr.id = $1"
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Department != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.department = $%d", argIdx))
		args = append(args, filter.Department)
		argIdx++
	}
	if filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("e.full_name ILIKE $%d", argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	query := "SELECT " + leaveRequestColumns + leaveRequestJoins
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ListPendingByStage implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPendingByStage(ctx context.Context, stage leave.Stage) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.status = $1 AND lr.stage = $2
		ORDER BY lr.created_at ASC
	`
	rows, err := q.Query(ctx, query, leave.StatusPending, stage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ListApprovedOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + leaveRequestJoins + `
		WHERE lr.status = $1
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date ASC
	`
	rows, err := q.Query(ctx, query, leave.StatusApproved, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// AdvanceStage implements leave.LeaveRequestRepository. The WHERE clause on
// status and stage makes the update a compare-and-set: a request already
// moved or terminated matches zero rows.
func (r *leaveRequestRepositoryImpl) AdvanceStage(ctx context.Context, id string, expectedStage, next leave.Stage) (bool, error) {
	q := GetQuerier(ctx, r.db)

	flagColumn := ""
	switch expectedStage {
	case leave.StageManager:
		flagColumn = "approved_by_manager = true,"
	case leave.StageDFD:
		flagColumn = "approved_by_dfd = true,"
	}

	query := fmt.Sprintf(`
		UPDATE leave_requests
		SET %s stage = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3 AND stage = $4
	`, flagColumn)

	tag, err := q.Exec(ctx, query, next, id, leave.StatusPending, expectedStage)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Complete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Complete(ctx context.Context, id string, expectedStage leave.Stage, status leave.Status) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, stage = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4 AND stage = $5
	`
	tag, err := q.Exec(ctx, query, status, leave.StageCompleted, id, leave.StatusPending, expectedStage)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
