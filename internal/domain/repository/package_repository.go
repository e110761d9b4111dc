package repository

import (
	"context"

	"careadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// PackageRepository defines persistence for care packages.
type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.CarePackage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CarePackage, error)

	// FindActive returns active packages, optionally of one type, cheapest first.
	FindActive(ctx context.Context, packageType string) ([]*entity.CarePackage, error)

	Update(ctx context.Context, pkg *entity.CarePackage) error
}
