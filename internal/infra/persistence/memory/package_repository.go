package memory

import (
	"cmp"
	"context"
	"slices"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type packageRepository struct {
	store *store
}

func clonePackage(pkg *entity.CarePackage) *entity.CarePackage {
	copied := *pkg
	copied.Features = slices.Clone(pkg.Features)
	if copied.Features == nil {
		copied.Features = []string{}
	}

	return &copied
}

func (repo *packageRepository) nameTaken(pkg *entity.CarePackage) bool {
	for _, other := range repo.store.packages {
		if other.ID != pkg.ID && other.Name == pkg.Name {
			return true
		}
	}

	return false
}

func (repo *packageRepository) Create(_ context.Context, pkg *entity.CarePackage) error {
	if _, exists := repo.store.packages[pkg.ID]; exists || repo.nameTaken(pkg) {
		return errors.Wrapf(repository.ErrDuplicate, "package %q", pkg.Name)
	}

	now := repo.store.now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	repo.store.packages[pkg.ID] = clonePackage(pkg)

	return nil
}

func (repo *packageRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CarePackage, error) {
	pkg, ok := repo.store.packages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return clonePackage(pkg), nil
}

func (repo *packageRepository) FindActive(_ context.Context, packageType string) ([]*entity.CarePackage, error) {
	packages := make([]*entity.CarePackage, 0)
	for _, pkg := range repo.store.packages {
		if !pkg.IsActive || (packageType != "" && pkg.PackageType != packageType) {
			continue
		}
		packages = append(packages, clonePackage(pkg))
	}

	slices.SortFunc(packages, func(a, b *entity.CarePackage) int {
		return cmp.Or(cmp.Compare(a.PriceMonthly, b.PriceMonthly), cmp.Compare(a.Name, b.Name))
	})

	return packages, nil
}

func (repo *packageRepository) Update(_ context.Context, pkg *entity.CarePackage) error {
	current, ok := repo.store.packages[pkg.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if repo.nameTaken(pkg) {
		return errors.Wrapf(repository.ErrDuplicate, "package %q", pkg.Name)
	}

	pkg.CreatedAt = current.CreatedAt
	pkg.UpdatedAt = repo.store.now()
	repo.store.packages[pkg.ID] = clonePackage(pkg)

	return nil
}
