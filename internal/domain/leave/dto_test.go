package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinarkarya/leave-backend-go/internal/pkg/validator"
)

const testLeaveTypeID = "01890a5d-ac96-774b-bcce-b302099a8057"

func validCreateRequest() CreateLeaveRequestRequest {
	return CreateLeaveRequestRequest{
		LeaveTypeID: testLeaveTypeID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-05",
		Reason:      "Family matter",
	}
}

func TestCreateLeaveRequestRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*CreateLeaveRequestRequest)
		field  string
	}{
		{"missing leave type", func(r *CreateLeaveRequestRequest) { r.LeaveTypeID = "" }, "leave_type_id"},
		{"malformed leave type id", func(r *CreateLeaveRequestRequest) { r.LeaveTypeID = "abc" }, "leave_type_id"},
		{"bad start date", func(r *CreateLeaveRequestRequest) { r.StartDate = "03-06-2024" }, "start_date"},
		{"bad end date", func(r *CreateLeaveRequestRequest) { r.EndDate = "2024-13-40" }, "end_date"},
		{"end before start", func(r *CreateLeaveRequestRequest) { r.StartDate = "2024-06-10" }, "end_date"},
		{"missing reason", func(r *CreateLeaveRequestRequest) { r.Reason = "  " }, "reason"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestCreateLeaveTypeRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateLeaveTypeRequest{Name: "Annual Leave", Code: "AL", IsQuotaDeduction: true}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name and code", func(t *testing.T) {
		req := CreateLeaveTypeRequest{}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		m := verrs.ToMap()
		assert.Contains(t, m, "name")
		assert.Contains(t, m, "code")
	})

	t.Run("code too long", func(t *testing.T) {
		req := CreateLeaveTypeRequest{Name: "Annual Leave", Code: "ANNUALLEAVE"}
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "code")
	})
}

func TestUpdateLeaveTypeRequestValidate(t *testing.T) {
	name := "Sick Leave"
	empty := ""

	t.Run("patch with id only", func(t *testing.T) {
		req := UpdateLeaveTypeRequest{ID: testLeaveTypeID}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		req := UpdateLeaveTypeRequest{Name: &name}
		assert.Error(t, req.Validate())
	})

	t.Run("blank name", func(t *testing.T) {
		req := UpdateLeaveTypeRequest{ID: testLeaveTypeID, Name: &empty}
		assert.Error(t, req.Validate())
	})
}
