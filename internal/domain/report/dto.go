package report

// DepartmentUsage is the approved working-day total for one department in
// the report window.
type DepartmentUsage struct {
	Department   string `json:"department"`
	ApprovedDays int    `json:"approved_days"`
	RequestCount int    `json:"request_count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type LeaveTypeUsage struct {
	LeaveType string `json:"leave_type"`
	Count     int    `json:"count"`
}

type LeaveSummaryResponse struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	ByDepartment []DepartmentUsage `json:"by_department"`
	ByStatus     []StatusCount     `json:"by_status"`
	ByLeaveType  []LeaveTypeUsage  `json:"by_leave_type"`
}
