// Package pubsub publishes audit events for the audit worker.
package pubsub

import (
	"encoding/json"

	"careadmin/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys. The worker reads request_id for tracing.
const (
	AttrEventID    = "event_id"
	AttrEntityType = "entity_type"
	AttrAction     = "action"
	AttrRequestID  = "request_id"
)

func encodeAuditEvent(event *service.AuditEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventID:    event.EventID,
		AttrEntityType: event.EntityType,
		AttrAction:     event.Action,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
