package usecase

import (
	"context"

	"careadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// PackageUsecase manages care packages and recommends one for a prospect.
type PackageUsecase interface {
	Create(ctx context.Context, pkg *entity.CarePackage) (*entity.CarePackage, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.CarePackage, error)

	// ListActive returns active packages cheapest first; an empty
	// packageType lists every type.
	ListActive(ctx context.Context, packageType string) ([]*entity.CarePackage, error)

	// Deactivate withdraws a package from sale.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// Recommend picks the best active package for the request.
	Recommend(ctx context.Context, req *entity.PackageRecommendationRequest) (*entity.PackageRecommendation, error)
}
