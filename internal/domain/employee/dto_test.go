package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
)

func validCreateEmployee() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Email:      "siti@sinarkarya.co.id",
		Password:   "rahasia1",
		FullName:   "Siti Rahma",
		Department: "Finance",
		Role:       "employee",
		JoinDate:   "2020-03-16",
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateEmployee()
		assert.NoError(t, req.Validate())
	})

	salary := "7500000"
	badSalary := "7,5jt"
	t.Run("valid with salary", func(t *testing.T) {
		req := validCreateEmployee()
		req.BaseSalary = &salary
		assert.NoError(t, req.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*CreateEmployeeRequest)
		field  string
	}{
		{"bad email", func(r *CreateEmployeeRequest) { r.Email = "siti@" }, "email"},
		{"short password", func(r *CreateEmployeeRequest) { r.Password = "12345" }, "password"},
		{"missing name", func(r *CreateEmployeeRequest) { r.FullName = "" }, "full_name"},
		{"missing department", func(r *CreateEmployeeRequest) { r.Department = "" }, "department"},
		{"unknown role", func(r *CreateEmployeeRequest) { r.Role = "admin" }, "role"},
		{"bad join date", func(r *CreateEmployeeRequest) { r.JoinDate = "16/03/2020" }, "join_date"},
		{"bad salary", func(r *CreateEmployeeRequest) { r.BaseSalary = &badSalary }, "base_salary"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateEmployee()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestRoleIsApprover(t *testing.T) {
	assert.False(t, RoleEmployee.IsApprover())
	assert.True(t, RoleManager.IsApprover())
	assert.True(t, RoleDFD.IsApprover())
	assert.True(t, RoleHRD.IsApprover())
	assert.False(t, Role("admin").IsApprover())
}
