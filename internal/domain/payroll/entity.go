package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordStatus string

const (
	RecordStatusPaid RecordStatus = "paid"
)

// EncashmentRecord is one append-only ledger row created when an employee's
// remaining leave balance is cashed out. Period is the first day of the month
// the payout belongs to; (employee, period) is unique.
type EncashmentRecord struct {
	ID               string
	EmployeeID       string
	Period           time.Time
	BaseSalary       decimal.Decimal
	DaysEncashed     int
	EncashmentAmount decimal.Decimal
	NetAmount        decimal.Decimal
	Status           RecordStatus
	CreatedAt        time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}
