package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is the kind of mutation being recorded.
type AuditAction string

const (
	AuditCreate     AuditAction = "create"
	AuditUpdate     AuditAction = "update"
	AuditDeactivate AuditAction = "deactivate"
	AuditDelete     AuditAction = "delete"
	AuditSeed       AuditAction = "seed"
)

// AuditLog is a persisted audit entry written by the audit worker.
type AuditLog struct {
	ID         uuid.UUID   `json:"id"`
	EntityType string      `json:"entity_type"`
	EntityID   string      `json:"entity_id"`
	Action     AuditAction `json:"action"`
	ActorID    *uuid.UUID  `json:"actor_id,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Details    *string     `json:"details,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
