package usecase

import (
	"context"

	"careadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// CaredPersonUsecase manages the people whose records the service keeps.
type CaredPersonUsecase interface {
	Create(ctx context.Context, person *entity.CaredPerson) (*entity.CaredPerson, error)

	// Get returns an active person.
	Get(ctx context.Context, id uuid.UUID) (*entity.CaredPerson, error)

	List(ctx context.Context, skip, limit int) ([]*entity.CaredPerson, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.CaredPersonPatch) (*entity.CaredPerson, error)

	// Deactivate hides the person; owned records are kept.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Delete removes the person together with every owned record.
	Delete(ctx context.Context, id uuid.UUID) error
}
