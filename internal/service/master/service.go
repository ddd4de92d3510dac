package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sinarkarya/leave-backend-go/internal/domain/master/department"
	"github.com/sinarkarya/leave-backend-go/internal/domain/master/holiday"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	ListDepartments(ctx context.Context) ([]department.Department, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	// Holiday operations
	CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error)
	ListHolidays(ctx context.Context) ([]holiday.Holiday, error)
	DeleteHoliday(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	holidayRepo    holiday.HolidayRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	holidayRepo holiday.HolidayRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		holidayRepo:    holidayRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	entity := department.Department{
		Name: req.Name,
		Code: req.Code,
	}

	created, err := s.departmentRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if departments == nil {
		departments = []department.Department{}
	}
	return departments, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.departmentRepo.Update(ctx, req)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.ErrNameExists
		}
		return err
	}
	return nil
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== HOLIDAY OPERATIONS ====================

func (s *masterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	entity := holiday.Holiday{
		Date:        date,
		Description: req.Description,
	}

	created, err := s.holidayRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrDateExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

func (s *masterServiceImpl) ListHolidays(ctx context.Context) ([]holiday.Holiday, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}
	return holidays, nil
}

func (s *masterServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
