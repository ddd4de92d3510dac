package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sinarkarya/leave-backend-go/internal/domain/audit"
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/notification"
	"github.com/sinarkarya/leave-backend-go/internal/domain/payroll"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/database"
	"github.com/sinarkarya/leave-backend-go/internal/repository/postgresql"
	leaveservice "github.com/sinarkarya/leave-backend-go/internal/service/leave"
)

type PayrollServiceImpl struct {
	db                  *database.DB
	employeeRepo        employee.EmployeeRepository
	payrollRepo         payroll.PayrollRepository
	auditService        audit.Service
	notificationService notification.Service
}

func NewPayrollService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
	auditService audit.Service,
	notificationService notification.Service,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                  db,
		employeeRepo:        employeeRepo,
		payrollRepo:         payrollRepo,
		auditService:        auditService,
		notificationService: notificationService,
	}
}

// ListEligible implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListEligible(ctx context.Context) ([]payroll.EligibleEmployee, error) {
	employees, err := p.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	now := time.Now()
	eligible := []payroll.EligibleEmployee{}
	for i := range employees {
		emp := &employees[i]
		if emp.LeaveBalance <= 0 {
			continue
		}

		salary := decimal.Zero
		if emp.BaseSalary != nil {
			salary = *emp.BaseSalary
		}
		amount := EncashmentAmount(salary, emp.LeaveBalance)

		eligible = append(eligible, payroll.EligibleEmployee{
			EmployeeID:       emp.ID,
			FullName:         emp.FullName,
			Department:       emp.Department,
			JoinDate:         emp.JoinDate,
			AnnualQuota:      leaveservice.AnnualQuota(emp.JoinDate, now),
			LeaveBalance:     emp.LeaveBalance,
			EncashmentAmount: amount.StringFixed(0),
			ZeroBaseSalary:   salary.Sign() <= 0,
		})
	}
	return eligible, nil
}

// History implements payroll.PayrollService.
func (p *PayrollServiceImpl) History(ctx context.Context) ([]payroll.HistoryEntry, error) {
	records, err := p.payrollRepo.ListEncashments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list encashments: %w", err)
	}

	entries := []payroll.HistoryEntry{}
	for _, rec := range records {
		entry := payroll.HistoryEntry{
			ID:               rec.ID,
			EmployeeID:       rec.EmployeeID,
			Period:           rec.Period,
			DaysEncashed:     rec.DaysEncashed,
			EncashmentAmount: rec.EncashmentAmount.StringFixed(0),
			CreatedAt:        rec.CreatedAt,
		}
		if rec.EmployeeName != nil {
			entry.EmployeeName = *rec.EmployeeName
		}
		if rec.Department != nil {
			entry.Department = *rec.Department
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CashOut implements payroll.PayrollService. Ledger row and balance zeroing
// commit together; a crash between the two cannot happen.
func (p *PayrollServiceImpl) CashOut(ctx context.Context, actorID, employeeID string) (payroll.CashOutResponse, error) {
	emp, err := p.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.CashOutResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.CashOutResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if emp.LeaveBalance <= 0 {
		return payroll.CashOutResponse{}, payroll.ErrNothingToCash
	}

	salary := decimal.Zero
	if emp.BaseSalary != nil {
		salary = *emp.BaseSalary
	}
	amount := EncashmentAmount(salary, emp.LeaveBalance)
	period := CurrentPeriod(time.Now())

	record := payroll.EncashmentRecord{
		EmployeeID:       emp.ID,
		Period:           period,
		BaseSalary:       salary,
		DaysEncashed:     emp.LeaveBalance,
		EncashmentAmount: amount,
		NetAmount:        amount,
		Status:           payroll.RecordStatusPaid,
	}

	err = postgresql.WithTransaction(ctx, p.db, func(txCtx context.Context) error {
		if _, err := p.payrollRepo.Upsert(txCtx, record); err != nil {
			return fmt.Errorf("failed to write encashment record: %w", err)
		}
		if err := p.employeeRepo.SetLeaveBalance(txCtx, emp.ID, 0); err != nil {
			return fmt.Errorf("failed to zero leave balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.CashOutResponse{}, err
	}

	p.auditService.Record(ctx, actorID, string(employee.RoleHRD), audit.ActionEncash,
		fmt.Sprintf("encashed %d day(s) for %s", record.DaysEncashed, emp.FullName))
	p.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: emp.ID,
		Type:        notification.TypeEncashmentPaid,
		Title:       "Leave balance encashed",
		Message:     fmt.Sprintf("%d day(s) of your leave balance were paid out.", record.DaysEncashed),
	})

	return payroll.CashOutResponse{
		EmployeeID:       emp.ID,
		Period:           period,
		DaysEncashed:     record.DaysEncashed,
		EncashmentAmount: amount.StringFixed(0),
		ZeroBaseSalary:   salary.Sign() <= 0,
	}, nil
}

// AnnualReset implements payroll.PayrollService. Overwrites every active
// employee's balance with the tenure-based quota; any unused remainder is
// gone, which is why the request must carry an explicit confirmation.
func (p *PayrollServiceImpl) AnnualReset(ctx context.Context, actorID string, req payroll.AnnualResetRequest) (payroll.AnnualResetResponse, error) {
	if !req.Confirm {
		return payroll.AnnualResetResponse{}, payroll.ErrResetNotConfirmed
	}

	employees, err := p.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.AnnualResetResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	now := time.Now()
	count := 0
	err = postgresql.WithTransaction(ctx, p.db, func(txCtx context.Context) error {
		for i := range employees {
			emp := &employees[i]
			quota := leaveservice.AnnualQuota(emp.JoinDate, now)
			if err := p.employeeRepo.SetLeaveBalance(txCtx, emp.ID, quota); err != nil {
				return fmt.Errorf("failed to reset balance for %s: %w", emp.ID, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return payroll.AnnualResetResponse{}, err
	}

	p.auditService.Record(ctx, actorID, string(employee.RoleHRD), audit.ActionReset,
		fmt.Sprintf("annual balance reset applied to %d employee(s)", count))
	for i := range employees {
		p.notificationService.Notify(ctx, notification.CreateNotificationRequest{
			RecipientID: employees[i].ID,
			Type:        notification.TypeBalanceReset,
			Title:       "Annual leave balance reset",
			Message:     "Your leave balance was reset to this year's quota.",
		})
	}

	return payroll.AnnualResetResponse{EmployeesReset: count}, nil
}
