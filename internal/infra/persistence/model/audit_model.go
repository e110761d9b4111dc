package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel is the GORM-specific struct for the 'audit_logs' table.
type AuditLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EntityType string     `gorm:"type:varchar(50);not null;index:idx_audit_logs_entity,priority:1"`
	EntityID   string     `gorm:"type:varchar(64);not null;index:idx_audit_logs_entity,priority:2"`
	Action     string     `gorm:"type:varchar(20);not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	RequestID  string     `gorm:"type:varchar(64)"`
	OccurredAt time.Time  `gorm:"not null;index"`
	Details    *string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
