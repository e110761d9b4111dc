package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/service"
	"careadmin/internal/infra/persistence/memory"
	"careadmin/internal/infra/pubsub"
	"careadmin/internal/usecase"
	"careadmin/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingAuditUsecase struct {
	usecase.AuditUsecase
}

func (failingAuditUsecase) Store(context.Context, *service.AuditEvent) error {
	return errors.New("database unavailable")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, event *service.AuditEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PubSubPushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = event.EventID

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func newEvent() *service.AuditEvent {
	return &service.AuditEvent{
		EventID:    uuid.NewString(),
		EntityType: "allergies",
		EntityID:   uuid.NewString(),
		Action:     string(entity.AuditCreate),
		ActorID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
	}
}

func TestHandlePush_StoresEvent(t *testing.T) {
	auditUC := impl.NewAuditService(memory.NewTransactionManager(), discardLogger())
	h := newPushHandler(auditUC, discardLogger(), nil)

	event := newEvent()
	body := pushBody(t, event, map[string]string{pubsub.AttrRequestID: "req-from-attribute"})

	rec := push(h, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Redelivery is acknowledged without a second row.
	rec = push(h, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	logs, err := auditUC.ListByEntity(context.Background(), event.EntityType, event.EntityID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "req-from-attribute", logs[0].RequestID)
	assert.Equal(t, entity.AuditCreate, logs[0].Action)
	require.NotNil(t, logs[0].ActorID)
	assert.Equal(t, event.ActorID, logs[0].ActorID.String())
}

func TestHandlePush_Responses(t *testing.T) {
	validEvent := newEvent()
	malformedEvent := newEvent()
	malformedEvent.EventID = "not-a-uuid"

	tests := []struct {
		name     string
		auditUC  usecase.AuditUsecase
		verify   PushVerifier
		body     string
		wantCode int
	}{
		{
			name:     "not json",
			body:     "{",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "data not base64",
			body:     `{"message":{"data":"%%%"}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid event is acknowledged",
			body:     pushBody(t, malformedEvent, nil),
			wantCode: http.StatusOK,
		},
		{
			name:     "storage failure asks for redelivery",
			auditUC:  failingAuditUsecase{},
			body:     pushBody(t, validEvent, nil),
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "rejected token",
			verify:   func(*http.Request) error { return errors.New("bad token") },
			body:     pushBody(t, validEvent, nil),
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditUC := tt.auditUC
			if auditUC == nil {
				auditUC = impl.NewAuditService(memory.NewTransactionManager(), discardLogger())
			}
			h := newPushHandler(auditUC, discardLogger(), tt.verify)

			rec := push(h, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestVerifyPubSubToken_RejectsMissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	require.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}
