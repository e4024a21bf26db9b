package report

import "time"

// SummaryFilter narrows the leave-summary rollup. Zero values mean "all".
type SummaryFilter struct {
	From       *time.Time
	To         *time.Time
	Status     string
	Department string
}

type LeaveSummaryResponse struct {
	TotalRequests int64            `json:"total_requests"`
	ByStatus      map[string]int64 `json:"by_status"`
	ByType        map[string]int64 `json:"by_type"`
	ByDepartment  map[string]int64 `json:"by_department"`
	ApprovedDays  int64            `json:"approved_days"`
	Recent        []RecentLeave    `json:"recent"`
}

type RecentLeave struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	TotalDays    int    `json:"total_days"`
	Status       string `json:"status"`
}

type DepartmentReportRow struct {
	Department   string           `json:"department"`
	Employees    int64            `json:"employees"`
	Requests     int64            `json:"requests"`
	ByStatus     map[string]int64 `json:"by_status"`
	ByType       map[string]int64 `json:"by_type"`
	ApprovedDays int64            `json:"approved_days"`
}

type DepartmentReportResponse struct {
	Year        int                   `json:"year"`
	Departments []DepartmentReportRow `json:"departments"`
}

// EmployeeLeaveFilter narrows a single employee's history.
type EmployeeLeaveFilter struct {
	Year      int
	Status    string
	LeaveType string
}

type EmployeeLeaveReport struct {
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	Department   string           `json:"department"`
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	ApprovedDays int64            `json:"approved_days"`
	Leaves       []RecentLeave    `json:"leaves"`
}

type ActivityLogEntry struct {
	ID          string         `json:"id"`
	ActorID     string         `json:"actor_id"`
	Action      string         `json:"action"`
	TargetType  string         `json:"target_type"`
	TargetID    string         `json:"target_id"`
	Changes     map[string]any `json:"changes,omitempty"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
