package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrDateExists      = errors.New("holiday already registered for that date")
)
