package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCasual = "CASUAL"
	TypeSick   = "SICK"
	TypeEarned = "EARNED"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// Entitlements is the yearly allotment per leave type, fixed per type rather
// than per employee.
var Entitlements = map[string]int{
	TypeCasual: 12,
	TypeSick:   12,
	TypeEarned: 21,
}

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string    `gorm:"type:varchar(10);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays int       `gorm:"type:int;not null"`
	Reason    string    `gorm:"type:varchar(500);not null"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_status"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovalComment *string    `gorm:"type:varchar(300)"`
	ApprovalDate    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *LeaveEmployee `gorm:"foreignKey:EmployeeID"`
	Approver *LeaveEmployee `gorm:"foreignKey:ApprovedBy"`
}

// LeaveEmployee joins the minimal identity columns responses need.
type LeaveEmployee struct {
	ID          uuid.UUID `gorm:"primaryKey"`
	Name        string    `gorm:"column:name"`
	Email       string    `gorm:"column:email"`
	Department  string    `gorm:"column:department"`
	Designation string    `gorm:"column:designation"`
}

func (LeaveEmployee) TableName() string {
	return "users"
}
