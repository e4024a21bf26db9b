package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone" binding:"required,len=10,numeric"`
	Role        string `json:"role" binding:"required,oneof=HR_MANAGER EMPLOYEE"`
	Department  string `json:"department" binding:"required,min=2,max=50"`
	Designation string `json:"designation" binding:"required,min=2,max=50"`
	JoinDate    string `json:"join_date" binding:"omitempty"`
	ManagerID   string `json:"manager_id" binding:"omitempty,uuid"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Role        string  `json:"role"`
	Department  string  `json:"department,omitempty"`
	Designation string  `json:"designation,omitempty"`
	JoinDate    string  `json:"join_date,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName string  `json:"manager_name,omitempty"`
	Status      string  `json:"status"`
}
