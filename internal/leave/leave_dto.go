package leave

import "time"

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=CASUAL SICK EARNED"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required,min=10,max=500"`
}

type DecideLeaveRequest struct {
	Status          string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
	ApprovalComment string `json:"approval_comment" binding:"omitempty,max=300"`
}

// ListFilter narrows leave listings. Zero values mean "no filter".
type ListFilter struct {
	EmployeeID string
	Status     string
	LeaveType  string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	Department      string  `json:"department,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovedBy      *string `json:"approved_by,omitempty"`
	ApproverName    string  `json:"approver_name,omitempty"`
	ApprovalComment *string `json:"approval_comment,omitempty"`
	ApprovalDate    *string `json:"approval_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type BalanceResponse struct {
	Year         int            `json:"year"`
	Entitlements map[string]int `json:"entitlements"`
	Used         map[string]int `json:"used"`
	Balance      map[string]int `json:"balance"`
}
