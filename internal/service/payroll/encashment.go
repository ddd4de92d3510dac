package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// workingDaysPerMonth is the payroll divisor for one day of salary.
const workingDaysPerMonth = 21

// EncashmentAmount converts a leave balance into money:
// floor(baseSalary / 21 * balanceDays). A zero or missing salary and a
// non-positive balance both pay out zero.
func EncashmentAmount(baseSalary decimal.Decimal, balanceDays int) decimal.Decimal {
	if balanceDays <= 0 || baseSalary.Sign() <= 0 {
		return decimal.Zero
	}
	daily := baseSalary.Div(decimal.NewFromInt(workingDaysPerMonth))
	return daily.Mul(decimal.NewFromInt(int64(balanceDays))).Floor()
}

// CurrentPeriod returns the first day of asOf's month, the key one
// encashment ledger row covers.
func CurrentPeriod(asOf time.Time) time.Time {
	return time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
}
