package context

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// WithActor returns a new context carrying the authenticated user and roles.
func WithActor(ctx context.Context, actorID uuid.UUID, roles []string) context.Context {
	ctx = context.WithValue(ctx, KeyActorID, actorID)

	return context.WithValue(ctx, KeyRoles, slices.Clone(roles))
}

// WithActorID returns a new context carrying the authenticated user ID.
func WithActorID(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyActorID, actorID)
}

// GetActorID returns the authenticated user ID, if any.
func GetActorID(ctx context.Context) (uuid.UUID, bool) {
	actorID, ok := lookup[uuid.UUID](ctx, KeyActorID)

	return actorID, ok && actorID != uuid.Nil
}

// HasRole reports whether the authenticated user holds role.
func HasRole(ctx context.Context, role string) bool {
	roles, _ := lookup[[]string](ctx, KeyRoles)

	return slices.Contains(roles, role)
}
