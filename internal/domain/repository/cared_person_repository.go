package repository

import (
	"context"

	"careadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// CaredPersonRepository defines persistence for cared persons.
type CaredPersonRepository interface {
	Create(ctx context.Context, person *entity.CaredPerson) error

	// FindActiveByID returns the active person or ErrNotFound.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.CaredPerson, error)

	// List returns active persons ordered by created_at, id.
	List(ctx context.Context, skip, limit int) ([]*entity.CaredPerson, error)

	Update(ctx context.Context, person *entity.CaredPerson) error

	// Delete removes the person; owned records go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}
