package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
	// AdjustLeaveBalance adds delta (may be negative) to the stored balance.
	AdjustLeaveBalance(ctx context.Context, id string, delta int) error
	// SetLeaveBalance overwrites the stored balance.
	SetLeaveBalance(ctx context.Context, id string, balance int) error
	Delete(ctx context.Context, id string) error
}
