package memory

import (
	"context"
	"slices"
	"strings"

	"careadmin/internal/domain/entity"
)

type auditLogRepository struct {
	store *store
}

func (repo *auditLogRepository) Create(_ context.Context, log *entity.AuditLog) error {
	if _, exists := repo.store.audit[log.ID]; exists {
		return nil
	}

	log.CreatedAt = repo.store.now()
	copied := *log
	repo.store.audit[log.ID] = &copied

	return nil
}

func (repo *auditLogRepository) FindByEntity(_ context.Context, entityType, entityID string, limit int) ([]*entity.AuditLog, error) {
	logs := make([]*entity.AuditLog, 0)
	for _, log := range repo.store.audit {
		if log.EntityType != entityType || (entityID != "" && log.EntityID != entityID) {
			continue
		}
		copied := *log
		logs = append(logs, &copied)
	}

	slices.SortFunc(logs, func(a, b *entity.AuditLog) int {
		if c := b.OccurredAt.Compare(a.OccurredAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	if limit > 0 && limit < len(logs) {
		logs = logs[:limit]
	}

	return logs, nil
}
