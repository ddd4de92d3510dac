package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	// ListDates returns just the calendar dates, the shape the working-day
	// counter consumes.
	ListDates(ctx context.Context) ([]time.Time, error)
	Delete(ctx context.Context, id string) error
}
