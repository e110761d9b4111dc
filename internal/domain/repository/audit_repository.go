package repository

import (
	"context"

	"careadmin/internal/domain/entity"
)

// AuditLogRepository stores audit entries written by the audit worker.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error

	// FindByEntity returns the newest entries first. An empty entityID lists
	// every entry of entityType.
	FindByEntity(ctx context.Context, entityType, entityID string, limit int) ([]*entity.AuditLog, error)
}
