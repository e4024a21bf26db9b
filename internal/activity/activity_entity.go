package activity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionUserCreated     = "USER_CREATED"
	ActionUserUpdated     = "USER_UPDATED"
	ActionUserDeactivated = "USER_DEACTIVATED"
	ActionLeaveCreated    = "LEAVE_CREATED"
	ActionLeaveApproved   = "LEAVE_APPROVED"
	ActionLeaveRejected   = "LEAVE_REJECTED"
	ActionLeaveCancelled  = "LEAVE_CANCELLED"
)

const (
	TargetUser  = "USER"
	TargetLeave = "LEAVE"
)

// Entry is an append-only audit record. Rows are never updated or deleted.
type Entry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_actor"`
	Action      string    `gorm:"type:varchar(30);not null;index:idx_activity_action"`
	TargetType  string    `gorm:"type:varchar(10);not null;index:idx_activity_target"`
	TargetID    uuid.UUID `gorm:"type:uuid;not null;index:idx_activity_target"`
	Changes     []byte    `gorm:"type:jsonb"`
	Description string    `gorm:"type:text;not null"`
	Metadata    []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index:idx_activity_created_at"`
}

func (Entry) TableName() string {
	return "activity_logs"
}
