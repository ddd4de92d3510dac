package leave

import (
	"testing"
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func approvedRequest(id, dept string, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         id,
		Status:     leave.StatusApproved,
		Department: strPtr(dept),
		StartDate:  start,
		EndDate:    end,
	}
}

func TestFindConflicts(t *testing.T) {
	candidate := &leave.LeaveRequest{
		ID:         "req-1",
		Department: strPtr("Engineering"),
		StartDate:  date(2024, time.March, 11),
		EndDate:    date(2024, time.March, 15),
	}

	t.Run("same department overlap is a conflict", func(t *testing.T) {
		approved := []leave.LeaveRequest{
			approvedRequest("req-2", "Engineering", date(2024, time.March, 13), date(2024, time.March, 18)),
		}
		conflicts := FindConflicts(candidate, approved)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, "req-2", conflicts[0].ID)
	})

	t.Run("other department is not a conflict", func(t *testing.T) {
		approved := []leave.LeaveRequest{
			approvedRequest("req-2", "Finance", date(2024, time.March, 13), date(2024, time.March, 18)),
		}
		assert.Empty(t, FindConflicts(candidate, approved))
	})

	t.Run("disjoint range is not a conflict", func(t *testing.T) {
		approved := []leave.LeaveRequest{
			approvedRequest("req-2", "Engineering", date(2024, time.March, 18), date(2024, time.March, 20)),
		}
		assert.Empty(t, FindConflicts(candidate, approved))
	})

	t.Run("shared boundary day is a conflict", func(t *testing.T) {
		approved := []leave.LeaveRequest{
			approvedRequest("req-2", "Engineering", date(2024, time.March, 15), date(2024, time.March, 20)),
		}
		assert.Len(t, FindConflicts(candidate, approved), 1)
	})

	t.Run("candidate itself is skipped", func(t *testing.T) {
		approved := []leave.LeaveRequest{
			approvedRequest("req-1", "Engineering", candidate.StartDate, candidate.EndDate),
		}
		assert.Empty(t, FindConflicts(candidate, approved))
	})

	t.Run("non approved rows are skipped", func(t *testing.T) {
		pending := approvedRequest("req-2", "Engineering", date(2024, time.March, 13), date(2024, time.March, 18))
		pending.Status = leave.StatusPending
		assert.Empty(t, FindConflicts(candidate, []leave.LeaveRequest{pending}))
	})

	t.Run("candidate without department finds nothing", func(t *testing.T) {
		noDept := &leave.LeaveRequest{
			ID:        "req-1",
			StartDate: candidate.StartDate,
			EndDate:   candidate.EndDate,
		}
		approved := []leave.LeaveRequest{
			approvedRequest("req-2", "Engineering", candidate.StartDate, candidate.EndDate),
		}
		assert.Empty(t, FindConflicts(noDept, approved))
	})
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		aStart, aEnd   time.Time
		bStart, bEnd   time.Time
		want           bool
	}{
		{"identical", date(2024, 3, 11), date(2024, 3, 15), date(2024, 3, 11), date(2024, 3, 15), true},
		{"contained", date(2024, 3, 11), date(2024, 3, 15), date(2024, 3, 12), date(2024, 3, 13), true},
		{"touching end to start", date(2024, 3, 11), date(2024, 3, 15), date(2024, 3, 15), date(2024, 3, 20), true},
		{"adjacent but disjoint", date(2024, 3, 11), date(2024, 3, 15), date(2024, 3, 16), date(2024, 3, 20), false},
		{"fully before", date(2024, 3, 1), date(2024, 3, 5), date(2024, 3, 11), date(2024, 3, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}
