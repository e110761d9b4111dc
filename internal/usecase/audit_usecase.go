package usecase

import (
	"context"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/service"
)

// AuditUsecase reads and stores the audit trail.
type AuditUsecase interface {
	// Store persists an event delivered to the audit worker. Redelivery of
	// the same event is a no-op.
	Store(ctx context.Context, event *service.AuditEvent) error

	// ListByEntity returns the newest entries first.
	ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]*entity.AuditLog, error)
}
