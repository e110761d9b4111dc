package postgres

import (
	"context"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
	"careadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// packageRepository implements the repository.PackageRepository interface.
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{
		db: db,
	}
}

func (repo *packageRepository) Create(ctx context.Context, pkg *entity.CarePackage) error {
	pkgM := fromPackageDomain(pkg)

	if err := repo.db.WithContext(ctx).Create(pkgM).Error; err != nil {
		return translateWriteError(err, "failed to create package")
	}

	pkg.CreatedAt = pkgM.CreatedAt
	pkg.UpdatedAt = pkgM.UpdatedAt

	return nil
}

func (repo *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CarePackage, error) {
	var pkgM model.CarePackageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pkgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by ID")
	}

	return toPackageDomain(&pkgM), nil
}

// FindActive orders by price, then name so equal prices stay stable.
func (repo *packageRepository) FindActive(ctx context.Context, packageType string) ([]*entity.CarePackage, error) {
	var pkgModels []*model.CarePackageModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("is_active = ?", true)
	if packageType != "" {
		query = query.Where("package_type = ?", packageType)
	}

	if err := query.
		Order("price_monthly, name").
		Find(&pkgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active packages")
	}

	packages := make([]*entity.CarePackage, 0, len(pkgModels))
	for _, pkgM := range pkgModels {
		packages = append(packages, toPackageDomain(pkgM))
	}

	return packages, nil
}

func (repo *packageRepository) Update(ctx context.Context, pkg *entity.CarePackage) error {
	pkgM := fromPackageDomain(pkg)

	result := repo.db.WithContext(ctx).
		Model(pkgM).
		Select("*").
		Omit("id", "created_at").
		Updates(pkgM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update package")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	pkg.UpdatedAt = pkgM.UpdatedAt

	return nil
}

func fromPackageDomain(pkg *entity.CarePackage) *model.CarePackageModel {
	return &model.CarePackageModel{
		ID:           pkg.ID,
		PackageType:  pkg.PackageType,
		Name:         pkg.Name,
		Description:  pkg.Description,
		PriceMonthly: pkg.PriceMonthly,
		PriceYearly:  pkg.PriceYearly,
		Currency:     pkg.Currency,
		Features:     datatypes.NewJSONSlice(pkg.Features),
		IsFeatured:   pkg.IsFeatured,
		IsActive:     pkg.IsActive,
		CreatedAt:    pkg.CreatedAt,
		UpdatedAt:    pkg.UpdatedAt,
	}
}

func toPackageDomain(pkgM *model.CarePackageModel) *entity.CarePackage {
	features := []string(pkgM.Features)
	if features == nil {
		features = []string{}
	}

	return &entity.CarePackage{
		ID:           pkgM.ID,
		PackageType:  pkgM.PackageType,
		Name:         pkgM.Name,
		Description:  pkgM.Description,
		PriceMonthly: pkgM.PriceMonthly,
		PriceYearly:  pkgM.PriceYearly,
		Currency:     pkgM.Currency,
		Features:     features,
		IsFeatured:   pkgM.IsFeatured,
		IsActive:     pkgM.IsActive,
		CreatedAt:    pkgM.CreatedAt,
		UpdatedAt:    pkgM.UpdatedAt,
	}
}
