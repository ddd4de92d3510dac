package payroll

import "errors"

var (
	ErrRecordNotFound = errors.New("payroll record not found")
	// ErrNothingToCash blocks cash-out of a zero or negative balance.
	ErrNothingToCash = errors.New("employee has no leave balance to cash out")
	// ErrResetNotConfirmed blocks the destructive annual reset unless the
	// caller explicitly confirmed it.
	ErrResetNotConfirmed = errors.New("annual reset must be explicitly confirmed")
)
