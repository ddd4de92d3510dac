package payroll

import "context"

type PayrollService interface {
	ListEligible(ctx context.Context) ([]EligibleEmployee, error)
	History(ctx context.Context) ([]HistoryEntry, error)
	// CashOut appends the encashment ledger row and zeroes the employee's
	// balance inside one transaction; a retry after failure can never
	// double-pay.
	CashOut(ctx context.Context, actorID, employeeID string) (CashOutResponse, error)
	// AnnualReset overwrites every active employee's balance with the
	// tenure-based quota. Destructive; requires req.Confirm.
	AnnualReset(ctx context.Context, actorID string, req AnnualResetRequest) (AnnualResetResponse, error)
}
