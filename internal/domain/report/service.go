package report

import (
	"context"
	"time"
)

type Service interface {
	LeaveSummary(ctx context.Context, from, to time.Time) (LeaveSummaryResponse, error)
}
