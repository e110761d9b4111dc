package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"careadmin/internal/domain/entity"
	"careadmin/internal/infra/persistence/memory"
	mockSvc "careadmin/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newQuietPublisher accepts any number of audit events.
func newQuietPublisher(t *testing.T) *mockSvc.MockEventPublisher {
	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAuditEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

func newOwnedParams(t *testing.T) OwnedServiceParams {
	return OwnedServiceParams{
		TxManager: memory.NewTransactionManager(),
		Publisher: newQuietPublisher(t),
		Logger:    newDiscardLogger(),
	}
}

func createTestPerson(t *testing.T, params OwnedServiceParams) *entity.CaredPerson {
	t.Helper()

	person, err := NewCaredPersonService(params).Create(context.Background(), &entity.CaredPerson{FullName: "Ada Lovelace"})
	require.NoError(t, err)

	return person
}

func strPtr(s string) *string {
	return &s
}
