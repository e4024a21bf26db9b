package employee

type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=50"`
	Phone       string `json:"phone" binding:"omitempty,len=10,numeric"`
	Department  string `json:"department" binding:"omitempty,min=2,max=50"`
	Designation string `json:"designation" binding:"omitempty,min=2,max=50"`
	ManagerID   string `json:"manager_id" binding:"omitempty,uuid"`
}

type ListFilter struct {
	Department string
	Status     string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Role        string  `json:"role"`
	Department  string  `json:"department"`
	Designation string  `json:"designation"`
	JoinDate    string  `json:"join_date,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName string  `json:"manager_name,omitempty"`
	Status      string  `json:"status"`
}
