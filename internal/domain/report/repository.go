package report

import (
	"context"
	"time"
)

type Repository interface {
	StatusCounts(ctx context.Context, from, to time.Time) ([]StatusCount, error)
	LeaveTypeUsage(ctx context.Context, from, to time.Time) ([]LeaveTypeUsage, error)
}
