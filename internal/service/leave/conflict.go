package leave

import (
	"time"

	"github.com/sinarkarya/leave-backend-go/internal/domain/leave"
)

// FindConflicts returns every approved request, other than the candidate
// itself, from the candidate's department whose date range overlaps the
// candidate's. Purely advisory: the reviewer sees conflicts but may still
// approve.
func FindConflicts(candidate *leave.LeaveRequest, approved []leave.LeaveRequest) []leave.LeaveRequest {
	if candidate.Department == nil {
		return nil
	}

	var conflicts []leave.LeaveRequest
	for _, other := range approved {
		if other.ID == candidate.ID {
			continue
		}
		if other.Status != leave.StatusApproved {
			continue
		}
		if other.Department == nil || *other.Department != *candidate.Department {
			continue
		}
		if rangesOverlap(candidate.StartDate, candidate.EndDate, other.StartDate, other.EndDate) {
			conflicts = append(conflicts, other)
		}
	}
	return conflicts
}

// rangesOverlap uses the inclusive test: two ranges overlap when
// a.start <= b.end && b.start <= a.end.
func rangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = truncateToDate(aStart), truncateToDate(aEnd)
	bStart, bEnd = truncateToDate(bStart), truncateToDate(bEnd)
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
