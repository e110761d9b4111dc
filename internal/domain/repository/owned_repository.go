package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OwnedRepository persists one kind of record scoped to a cared person.
// Reads only ever see active rows.
type OwnedRepository[E any] interface {
	// Create inserts record. An unknown owner surfaces as ErrInvalidReference.
	Create(ctx context.Context, record *E) error

	// FindActiveByID returns the active row or ErrNotFound.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*E, error)

	// FindActiveByOwner returns active rows ordered by created_at, id.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*E, error)

	// Update overwrites the mutable columns of an active row.
	Update(ctx context.Context, record *E) error

	// Deactivate flips an active row to inactive and reports whether it did.
	Deactivate(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}
