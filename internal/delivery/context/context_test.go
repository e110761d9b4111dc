package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-ctx")))
	assert.Equal(t, "req-ctx", GetRequestID(c))

	SetRequestID(c, "req-2")
	assert.Equal(t, "req-2", GetRequestID(c))
}

func TestActorID(t *testing.T) {
	_, ok := GetActorID(context.Background())
	assert.False(t, ok)

	_, ok = GetActorID(WithActorID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	id := uuid.New()
	got, ok := GetActorID(WithActorID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestActorRoles(t *testing.T) {
	ctx := WithActor(context.Background(), uuid.New(), []string{"admin"})

	assert.True(t, HasRole(ctx, "admin"))
	assert.False(t, HasRole(ctx, "caregiver"))
	assert.False(t, HasRole(context.Background(), "admin"))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := fallback.With("request_id", "x")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
