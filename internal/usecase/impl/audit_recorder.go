package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/lifecycle"
	"careadmin/internal/domain/service"

	"github.com/google/uuid"
)

// auditRecorder publishes an audit event for a committed mutation. It must
// only be called after the transaction commits. Failures are logged and
// never reach the caller.
type auditRecorder struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

func newAuditRecorder(publisher service.EventPublisher, logger *slog.Logger) *auditRecorder {
	return &auditRecorder{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (r *auditRecorder) record(ctx context.Context, entityType, entityID string, action entity.AuditAction, details string) {
	if r == nil || r.publisher == nil {
		return
	}

	event := &service.AuditEvent{
		EventID:    uuid.NewString(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     string(action),
		OccurredAt: r.now().UTC(),
		Details:    details,
	}
	if actorID, ok := deliverycontext.GetActorID(ctx); ok {
		event.ActorID = actorID.String()
	}

	// The request may be cancelled as soon as the response is written.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := r.publisher.PublishAuditEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, r.logger).Warn("Failed to publish audit event",
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
	}
}
