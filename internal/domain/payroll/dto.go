package payroll

import (
	"time"
)

// EligibleEmployee is an active employee with a positive leave balance and
// the payout they would receive today.
type EligibleEmployee struct {
	EmployeeID       string     `json:"employee_id"`
	FullName         string     `json:"full_name"`
	Department       string     `json:"department"`
	JoinDate         *time.Time `json:"join_date,omitempty"`
	AnnualQuota      int        `json:"annual_quota"`
	LeaveBalance     int        `json:"leave_balance"`
	EncashmentAmount string     `json:"encashment_amount"`
	// ZeroBaseSalary flags a payout computed from a missing or zero base
	// salary so the UI can warn before processing.
	ZeroBaseSalary bool `json:"zero_base_salary"`
}

type CashOutResponse struct {
	EmployeeID       string    `json:"employee_id"`
	Period           time.Time `json:"period"`
	DaysEncashed     int       `json:"days_encashed"`
	EncashmentAmount string    `json:"encashment_amount"`
	ZeroBaseSalary   bool      `json:"zero_base_salary"`
}

type AnnualResetRequest struct {
	Confirm bool `json:"confirm"`
}

type AnnualResetResponse struct {
	EmployeesReset int `json:"employees_reset"`
}

type HistoryEntry struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	Department       string    `json:"department"`
	Period           time.Time `json:"period"`
	DaysEncashed     int       `json:"days_encashed"`
	EncashmentAmount string    `json:"encashment_amount"`
	CreatedAt        time.Time `json:"created_at"`
}
