package service

import (
	"context"
	"time"
)

// AuditEvent describes one committed mutation. It is published after the
// transaction commits and persisted asynchronously by the audit worker.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Details    string    `json:"details,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAuditEvent publishes an audit event for async persistence
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
