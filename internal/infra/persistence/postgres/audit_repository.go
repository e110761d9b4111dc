package postgres

import (
	"context"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
	"careadmin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create is idempotent on the log ID; Pub/Sub may redeliver the same event.
func (repo *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	logM := fromAuditLogDomain(log)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create audit log")
	}

	log.CreatedAt = logM.CreatedAt

	return nil
}

func (repo *auditLogRepository) FindByEntity(ctx context.Context, entityType, entityID string, limit int) ([]*entity.AuditLog, error) {
	var logModels []*model.AuditLogModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("entity_type = ?", entityType)
	if entityID != "" {
		query = query.Where("entity_id = ?", entityID)
	}

	if err := query.
		Order("occurred_at DESC, id").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find audit logs")
	}

	logs := make([]*entity.AuditLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toAuditLogDomain(logM))
	}

	return logs, nil
}

func fromAuditLogDomain(log *entity.AuditLog) *model.AuditLogModel {
	return &model.AuditLogModel{
		ID:         log.ID,
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		Action:     string(log.Action),
		ActorID:    log.ActorID,
		RequestID:  log.RequestID,
		OccurredAt: log.OccurredAt,
		Details:    log.Details,
		CreatedAt:  log.CreatedAt,
	}
}

func toAuditLogDomain(logM *model.AuditLogModel) *entity.AuditLog {
	return &entity.AuditLog{
		ID:         logM.ID,
		EntityType: logM.EntityType,
		EntityID:   logM.EntityID,
		Action:     entity.AuditAction(logM.Action),
		ActorID:    logM.ActorID,
		RequestID:  logM.RequestID,
		OccurredAt: logM.OccurredAt,
		Details:    logM.Details,
		CreatedAt:  logM.CreatedAt,
	}
}
