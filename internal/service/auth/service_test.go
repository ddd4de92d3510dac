package auth

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sinarkarya/leave-backend-go/internal/domain/auth"
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	byID    map[string]employee.Employee
	byEmail map[string]employee.Employee
	hashes  map[string]string
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{
		byID:    make(map[string]employee.Employee),
		byEmail: make(map[string]employee.Employee),
		hashes:  make(map[string]string),
	}
	for _, e := range emps {
		r.byID[e.ID] = e
		r.byEmail[e.Email] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, ok := r.byEmail[email]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	r.hashes[id] = hash
	return nil
}

func (r *fakeEmployeeRepo) AdjustLeaveBalance(ctx context.Context, id string, delta int) error {
	return nil
}

func (r *fakeEmployeeRepo) SetLeaveBalance(ctx context.Context, id string, balance int) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func testEmployee(t *testing.T, password string) employee.Employee {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashed)
	return employee.Employee{
		ID:           "emp-1",
		Email:        "budi@sinarkarya.co.id",
		PasswordHash: &hash,
		FullName:     "Budi Santoso",
		Department:   "Engineering",
		Role:         employee.RoleEmployee,
		Status:       employee.StatusActive,
	}
}

func newTestService(repo employee.EmployeeRepository) auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee(t, "password123")
	svc := newTestService(newFakeEmployeeRepo(emp))

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, emp.ID, resp.EmployeeID)
		assert.Equal(t, "employee", resp.Role)
		assert.Equal(t, emp.Department, resp.Department)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Email: "nobody@sinarkarya.co.id", Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("no password set", func(t *testing.T) {
		googleOnly := emp
		googleOnly.ID = "emp-2"
		googleOnly.Email = "sso@sinarkarya.co.id"
		googleOnly.PasswordHash = nil
		svc := newTestService(newFakeEmployeeRepo(googleOnly))

		_, err := svc.Login(ctx, auth.LoginRequest{Email: googleOnly.Email, Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("resigned account", func(t *testing.T) {
		resigned := emp
		resigned.Status = employee.StatusResigned
		svc := newTestService(newFakeEmployeeRepo(resigned))

		_, err := svc.Login(ctx, auth.LoginRequest{Email: resigned.Email, Password: "password123"})
		assert.ErrorIs(t, err, auth.ErrAccountResigned)
	})
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee(t, "password123")
	svc := newTestService(newFakeEmployeeRepo(emp))

	t.Run("known email", func(t *testing.T) {
		resp, err := svc.LoginWithGoogle(ctx, emp.Email)
		require.NoError(t, err)
		assert.Equal(t, emp.ID, resp.EmployeeID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.LoginWithGoogle(ctx, "outsider@example.com")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee(t, "password123")
	repo := newFakeEmployeeRepo(emp)
	svc := newTestService(repo)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: emp.Email, Password: "password123"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Refresh(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("access token rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, login.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("resigned account", func(t *testing.T) {
		resigned := repo.byID[emp.ID]
		resigned.Status = employee.StatusResigned
		repo.byID[emp.ID] = resigned
		defer func() { repo.byID[emp.ID] = emp }()

		_, err := svc.Refresh(ctx, login.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrAccountResigned)
	})

	t.Run("revoked after logout", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, login.RefreshToken))
		_, err := svc.Refresh(ctx, login.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee(t, "password123")
	repo := newFakeEmployeeRepo(emp)
	svc := newTestService(repo)

	t.Run("success", func(t *testing.T) {
		err := svc.ChangePassword(ctx, emp.ID, auth.ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "password456",
		})
		require.NoError(t, err)

		stored, ok := repo.hashes[emp.ID]
		require.True(t, ok)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("password456")))
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, emp.ID, auth.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "password456",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown employee", func(t *testing.T) {
		err := svc.ChangePassword(ctx, "ghost", auth.ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "password456",
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}
