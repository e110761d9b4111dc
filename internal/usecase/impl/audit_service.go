package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/constants"
	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
	"careadmin/internal/domain/service"
	"careadmin/internal/usecase"
	"careadmin/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AuditUsecase {
	return &auditService{
		txManager: txManager,
		logger:    logger,
	}
}

// Store persists a delivered event. The event ID becomes the log ID, so
// redelivered events are absorbed by the store.
func (srv *auditService) Store(ctx context.Context, event *service.AuditEvent) error {
	log, err := auditLogFromEvent(event)
	if err != nil {
		return err
	}
	if log.RequestID == "" {
		log.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.AuditLogRepo().Create(ctx, log), "failed to store audit log")
	})
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Audit log stored",
		slog.String("event_id", event.EventID),
		slog.String("entity_type", event.EntityType),
		slog.String("action", event.Action),
	)

	return nil
}

func auditLogFromEvent(event *service.AuditEvent) (*entity.AuditLog, error) {
	if event == nil || event.EntityType == "" || event.Action == "" {
		return nil, validation.Failed("event", "entity_type and action are required")
	}

	id, err := uuid.Parse(event.EventID)
	if err != nil {
		return nil, validation.Failed("event_id", "must be a UUID")
	}

	log := &entity.AuditLog{
		ID:         id,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Action:     entity.AuditAction(event.Action),
		RequestID:  event.RequestID,
		OccurredAt: event.OccurredAt,
	}
	if log.OccurredAt.IsZero() {
		log.OccurredAt = time.Now().UTC()
	}
	if event.ActorID != "" {
		actorID, err := uuid.Parse(event.ActorID)
		if err != nil {
			return nil, validation.Failed("actor_id", "must be a UUID")
		}
		log.ActorID = &actorID
	}
	if event.Details != "" {
		details := event.Details
		log.Details = &details
	}

	return log, nil
}

func (srv *auditService) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]*entity.AuditLog, error) {
	if entityType == "" {
		return nil, validation.Failed("entity_type", "required")
	}
	if limit < 0 {
		return nil, validation.Failed("limit", "must not be negative")
	}
	switch {
	case limit == 0:
		limit = constants.DefaultPageLimit
	case limit > constants.MaxPageLimit:
		limit = constants.MaxPageLimit
	}

	var logs []*entity.AuditLog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AuditLogRepo().FindByEntity(ctx, entityType, entityID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list audit logs")
		}
		logs = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return logs, nil
}
