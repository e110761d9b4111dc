package postgres

import (
	"context"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
	"careadmin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// catalogRepository implements repository.CatalogRepository. Every kind
// shares one row shape, so the table is picked per call.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func (repo *catalogRepository) table(ctx context.Context, kind entity.CatalogKind) *gorm.DB {
	return repo.db.WithContext(ctx).Table(kind.String())
}

func (repo *catalogRepository) Create(ctx context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) error {
	entryM := fromCatalogDomain(entry)

	if err := repo.table(ctx, kind).Create(entryM).Error; err != nil {
		return translateWriteError(err, "failed to create "+kind.String()+" entry")
	}

	copyCatalogGenerated(entry, entryM)

	return nil
}

// CreateIfAbsent relies on the kind's unique index as the conflict target.
func (repo *catalogRepository) CreateIfAbsent(ctx context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) (bool, error) {
	entryM := fromCatalogDomain(entry)

	result := repo.table(ctx, kind).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entryM)
	if result.Error != nil {
		return false, translateWriteError(result.Error, "failed to seed "+kind.String()+" entry")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	copyCatalogGenerated(entry, entryM)

	return true, nil
}

func (repo *catalogRepository) FindByID(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogEntry, error) {
	var entryM model.CatalogEntryModel

	if err := repo.table(ctx, kind).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s entry by ID", kind)
	}

	return toCatalogDomain(&entryM), nil
}

func (repo *catalogRepository) FindActiveByName(ctx context.Context, kind entity.CatalogKind, name string, category *string) (*entity.CatalogEntry, error) {
	var entryM model.CatalogEntryModel

	query := repo.table(ctx, kind).Where("name = ? AND is_active = ?", name, true)
	if category != nil {
		query = query.Where("category = ?", *category)
	}

	if err := query.Order("id").First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s entry by name", kind)
	}

	return toCatalogDomain(&entryM), nil
}

// List reads from a replica when one is configured.
func (repo *catalogRepository) List(ctx context.Context, kind entity.CatalogKind, filter entity.CatalogFilter) ([]*entity.CatalogEntry, error) {
	var entryModels []*model.CatalogEntryModel

	query := repo.table(ctx, kind).Clauses(dbresolver.Read)
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if err := query.
		Order("id").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", kind)
	}

	entries := make([]*entity.CatalogEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toCatalogDomain(entryM))
	}

	return entries, nil
}

func (repo *catalogRepository) Count(ctx context.Context, kind entity.CatalogKind) (int64, error) {
	var count int64

	if err := repo.table(ctx, kind).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count %s", kind)
	}

	return count, nil
}

func (repo *catalogRepository) Update(ctx context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) error {
	entryM := fromCatalogDomain(entry)

	result := repo.table(ctx, kind).
		Where("id = ?", entry.ID).
		Select("name", "description", "category", "icon_name", "color_code", "is_active", "updated_at").
		Updates(entryM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update "+kind.String()+" entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

func (repo *catalogRepository) Delete(ctx context.Context, kind entity.CatalogKind, id int64) error {
	result := repo.table(ctx, kind).
		Where("id = ?", id).
		Delete(&model.CatalogEntryModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to purge "+kind.String()+" entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func fromCatalogDomain(entry *entity.CatalogEntry) *model.CatalogEntryModel {
	return &model.CatalogEntryModel{
		ID:          entry.ID,
		Name:        entry.Name,
		Description: entry.Description,
		Category:    entry.Category,
		IconName:    entry.IconName,
		ColorCode:   entry.ColorCode,
		IsActive:    entry.IsActive,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

func toCatalogDomain(entryM *model.CatalogEntryModel) *entity.CatalogEntry {
	return &entity.CatalogEntry{
		ID:          entryM.ID,
		Name:        entryM.Name,
		Description: entryM.Description,
		Category:    entryM.Category,
		IconName:    entryM.IconName,
		ColorCode:   entryM.ColorCode,
		IsActive:    entryM.IsActive,
		CreatedAt:   entryM.CreatedAt,
		UpdatedAt:   entryM.UpdatedAt,
	}
}

func copyCatalogGenerated(entry *entity.CatalogEntry, entryM *model.CatalogEntryModel) {
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt
}
