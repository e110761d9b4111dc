package postgres

import (
	"context"
	"time"

	"careadmin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownedRepository implements repository.OwnedRepository for one record type E
// stored as model M. The mappers are the only per-type code.
type ownedRepository[E any, M any] struct {
	db       *gorm.DB
	label    string
	toModel  func(*E) *M
	toDomain func(*M) *E
}

func (repo *ownedRepository[E, M]) Create(ctx context.Context, record *E) error {
	recordM := repo.toModel(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return translateWriteError(err, "failed to create "+repo.label)
	}

	*record = *repo.toDomain(recordM)

	return nil
}

func (repo *ownedRepository[E, M]) FindActiveByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var recordM M

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by ID", repo.label)
	}

	return repo.toDomain(&recordM), nil
}

func (repo *ownedRepository[E, M]) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*E, error) {
	var recordModels []*M

	if err := repo.db.WithContext(ctx).
		Where("cared_person_id = ? AND is_active = ?", ownerID, true).
		Order("created_at, id").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find %s by cared person", repo.label)
	}

	records := make([]*E, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, repo.toDomain(recordM))
	}

	return records, nil
}

// Update writes every column except the identity ones, so cleared fields
// become NULL. Inactive rows are left alone and reported as not found.
func (repo *ownedRepository[E, M]) Update(ctx context.Context, record *E) error {
	recordM := repo.toModel(record)

	result := repo.db.WithContext(ctx).
		Model(recordM).
		Where("is_active = ?", true).
		Select("*").
		Omit("id", "cared_person_id", "is_active", "created_at").
		Updates(recordM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update "+repo.label)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	*record = *repo.toDomain(recordM)

	return nil
}

func (repo *ownedRepository[E, M]) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	var recordM M

	result := repo.db.WithContext(ctx).
		Model(&recordM).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": at,
		})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to deactivate %s", repo.label)
	}

	return result.RowsAffected > 0, nil
}
