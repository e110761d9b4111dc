package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/service"
	"careadmin/internal/infra/persistence/memory"
	mockSvc "careadmin/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditRecorder_PublishesActorAndRequestID(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	params := OwnedServiceParams{
		TxManager: memory.NewTransactionManager(),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	}
	actorID := uuid.New()
	ctx := deliverycontext.WithActorID(context.Background(), actorID)
	ctx = deliverycontext.WithRequestID(ctx, "req-123")

	var published *service.AuditEvent
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.AnythingOfType("*service.AuditEvent")).
		Run(func(_ context.Context, event *service.AuditEvent) { published = event }).
		Return(nil).
		Once()

	person, err := NewCaredPersonService(params).Create(ctx, &entity.CaredPerson{FullName: "Ada Lovelace"})
	require.NoError(t, err)

	require.NotNil(t, published)
	assert.Equal(t, "cared_persons", published.EntityType)
	assert.Equal(t, person.ID.String(), published.EntityID)
	assert.Equal(t, string(entity.AuditCreate), published.Action)
	assert.Equal(t, actorID.String(), published.ActorID)
	assert.Equal(t, "req-123", published.RequestID)
	_, err = uuid.Parse(published.EventID)
	assert.NoError(t, err)
}

func TestAuditRecorder_PublishFailureDoesNotFailMutation(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.Anything).
		Return(errors.New("pubsub unavailable"))
	srv := NewCatalogService(CatalogServiceParams{
		TxManager: memory.NewTransactionManager(),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	created, err := srv.Create(ctx, "alert_types", &entity.CatalogEntry{Name: "fall_detected"})
	require.NoError(t, err)

	found, err := srv.Get(ctx, "alert_types", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "fall_detected", found.Name)
}

func TestAuditRecorder_FailedMutationPublishesNothing(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewAllergyService(OwnedServiceParams{
		TxManager: memory.NewTransactionManager(),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	deleted, err := srv.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
	publisher.AssertNotCalled(t, "PublishAuditEvent", mock.Anything, mock.Anything)
}

// newRecordingParams captures the action of every published audit event.
func newRecordingParams(t *testing.T) (OwnedServiceParams, *[]string) {
	publisher := mockSvc.NewMockEventPublisher(t)
	var actions []string
	publisher.EXPECT().
		PublishAuditEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.AuditEvent) { actions = append(actions, event.Action) }).
		Return(nil).
		Maybe()

	return OwnedServiceParams{
		TxManager: memory.NewTransactionManager(),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	}, &actions
}

func TestAuditRecorder_RepeatedCatalogDeleteRecordsOnce(t *testing.T) {
	params, actions := newRecordingParams(t)
	srv := newTestCatalogService(t, params)
	ctx := context.Background()

	created, err := srv.Create(ctx, "reminder_types", &entity.CatalogEntry{Name: "hydration"})
	require.NoError(t, err)
	require.NoError(t, srv.Delete(ctx, "reminder_types", created.ID))
	require.NoError(t, srv.Delete(ctx, "reminder_types", created.ID))

	assert.Equal(t, []string{string(entity.AuditCreate), string(entity.AuditDeactivate)}, *actions)
}

func TestAuditRecorder_RepeatedPackageDeactivateRecordsOnce(t *testing.T) {
	params, actions := newRecordingParams(t)
	srv := NewPackageService(params)
	ctx := context.Background()

	created, err := srv.Create(ctx, testPackage("Starter", 1500, "alerts"))
	require.NoError(t, err)
	require.NoError(t, srv.Deactivate(ctx, created.ID))
	require.NoError(t, srv.Deactivate(ctx, created.ID))

	assert.Equal(t, []string{string(entity.AuditCreate), string(entity.AuditDeactivate)}, *actions)
}

func TestAuditService_StoreAndList(t *testing.T) {
	srv := NewAuditService(memory.NewTransactionManager(), newDiscardLogger())
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entityID := uuid.NewString()

	events := []*service.AuditEvent{
		{EventID: uuid.NewString(), EntityType: "allergies", EntityID: entityID, Action: "create", OccurredAt: base},
		{EventID: uuid.NewString(), EntityType: "allergies", EntityID: entityID, Action: "update", OccurredAt: base.Add(time.Minute), ActorID: uuid.NewString()},
		{EventID: uuid.NewString(), EntityType: "allergies", EntityID: uuid.NewString(), Action: "create", OccurredAt: base},
	}
	for _, event := range events {
		require.NoError(t, srv.Store(ctx, event))
	}
	require.NoError(t, srv.Store(ctx, events[1]), "redelivery is absorbed")

	logs, err := srv.ListByEntity(ctx, "allergies", entityID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditUpdate, logs[0].Action)
	require.NotNil(t, logs[0].ActorID)
	assert.Equal(t, events[1].ActorID, logs[0].ActorID.String())

	all, err := srv.ListByEntity(ctx, "allergies", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAuditService_StoreRejectsMalformedEvents(t *testing.T) {
	srv := NewAuditService(memory.NewTransactionManager(), newDiscardLogger())
	ctx := context.Background()

	tests := []struct {
		name  string
		event *service.AuditEvent
	}{
		{name: "nil", event: nil},
		{name: "bad event id", event: &service.AuditEvent{EventID: "x", EntityType: "allergies", Action: "create"}},
		{name: "bad actor id", event: &service.AuditEvent{EventID: uuid.NewString(), EntityType: "allergies", Action: "create", ActorID: "me"}},
		{name: "missing action", event: &service.AuditEvent{EventID: uuid.NewString(), EntityType: "allergies"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, domainerrors.IsValidation(srv.Store(ctx, tt.event)))
		})
	}

	_, err := srv.ListByEntity(ctx, "", "", 0)
	assert.True(t, domainerrors.IsValidation(err))
}
