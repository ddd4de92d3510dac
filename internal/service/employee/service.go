package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sinarkarya/leave-backend-go/internal/domain/audit"
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/domain/master/department"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
	leaveservice "github.com/sinarkarya/leave-backend-go/internal/service/leave"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	auditService   audit.Service
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	auditService audit.Service,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		auditService:   auditService,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if err != pgx.ErrNoRows {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	if err := s.checkDepartment(ctx, req.Department); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	emp := employee.Employee{
		Email:        req.Email,
		PasswordHash: &hashStr,
		FullName:     req.FullName,
		Department:   req.Department,
		Role:         employee.Role(req.Role),
		ManagerID:    req.ManagerID,
		LeaveBalance: req.LeaveBalance,
		Status:       employee.StatusActive,
		Phone:        req.Phone,
	}
	if req.JoinDate != "" {
		joinDate, _ := validator.IsValidDate(req.JoinDate)
		emp.JoinDate = &joinDate
	}
	if req.BaseSalary != nil {
		salary, _ := decimal.NewFromString(*req.BaseSalary)
		emp.BaseSalary = &salary
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.auditService.Record(ctx, created.ID, string(created.Role), audit.ActionCreateUser,
		fmt.Sprintf("employee profile created for %s", created.FullName))

	return toResponse(&created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.Department != nil {
		if err := s.checkDepartment(ctx, *req.Department); err != nil {
			return err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return err
	}

	s.auditService.Record(ctx, req.ID, "", audit.ActionUpdateUser,
		fmt.Sprintf("employee profile %s updated", req.ID))
	return nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return toResponse(&emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := []employee.EmployeeResponse{}
	for i := range employees {
		responses = append(responses, toResponse(&employees[i]))
	}
	return responses, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.auditService.Record(ctx, id, "", audit.ActionDeleteUser,
		fmt.Sprintf("employee profile %s deleted", id))
	return nil
}

func (s *EmployeeServiceImpl) checkDepartment(ctx context.Context, name string) error {
	if _, err := s.departmentRepo.GetByName(ctx, name); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrUnknownDepartment
		}
		return fmt.Errorf("failed to check department: %w", err)
	}
	return nil
}

func toResponse(emp *employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		Email:        emp.Email,
		FullName:     emp.FullName,
		Department:   emp.Department,
		Role:         string(emp.Role),
		ManagerID:    emp.ManagerID,
		ManagerName:  emp.ManagerName,
		JoinDate:     emp.JoinDate,
		LeaveBalance: emp.LeaveBalance,
		AnnualQuota:  leaveservice.AnnualQuota(emp.JoinDate, time.Now()),
		Status:       string(emp.Status),
		Phone:        emp.Phone,
		AvatarURL:    emp.AvatarURL,
		CreatedAt:    emp.CreatedAt,
	}
	if emp.BaseSalary != nil {
		salary := emp.BaseSalary.StringFixed(0)
		resp.BaseSalary = &salary
	}
	return resp
}
