package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleHRManager  = "HR_MANAGER"
	RoleEmployee   = "EMPLOYEE"
)

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// StaffRoles are the roles employee listings operate on. SUPER_ADMIN is an
// operator account, not staff.
var StaffRoles = []string{RoleHRManager, RoleEmployee}

// IsManagerRole reports whether the role may decide on leave requests and
// manage employee records.
func IsManagerRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleHRManager
}

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_name"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Phone        string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_users_phone"`
	Password     string     `gorm:"type:text;not null" json:"-"`
	Role         string     `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`
	Department   string     `gorm:"type:varchar(50)"`
	Designation  string     `gorm:"type:varchar(50)"`
	JoinDate     time.Time  `gorm:"type:date"`
	ManagerID    *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	RefreshToken string     `gorm:"type:text" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Manager *User `gorm:"foreignKey:ManagerID"`
}
