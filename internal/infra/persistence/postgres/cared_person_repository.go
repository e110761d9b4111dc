package postgres

import (
	"context"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
	"careadmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// caredPersonRepository implements the repository.CaredPersonRepository interface.
type caredPersonRepository struct {
	db *gorm.DB
}

// NewCaredPersonRepository is the constructor for caredPersonRepository.
func NewCaredPersonRepository(db *gorm.DB) repository.CaredPersonRepository {
	return &caredPersonRepository{
		db: db,
	}
}

// Create persists a new cared person. An unknown care type surfaces as
// repository.ErrInvalidReference.
func (repo *caredPersonRepository) Create(ctx context.Context, person *entity.CaredPerson) error {
	personM := fromCaredPersonDomain(person)

	if err := repo.db.WithContext(ctx).Create(personM).Error; err != nil {
		return translateWriteError(err, "failed to create cared person")
	}

	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

func (repo *caredPersonRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.CaredPerson, error) {
	var personM model.CaredPersonModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&personM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find cared person by ID")
	}

	return toCaredPersonDomain(&personM), nil
}

func (repo *caredPersonRepository) List(ctx context.Context, skip, limit int) ([]*entity.CaredPerson, error) {
	var personModels []*model.CaredPersonModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("is_active = ?", true).
		Order("created_at, id").
		Offset(skip).
		Limit(limit).
		Find(&personModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cared persons")
	}

	persons := make([]*entity.CaredPerson, 0, len(personModels))
	for _, personM := range personModels {
		persons = append(persons, toCaredPersonDomain(personM))
	}

	return persons, nil
}

// Update overwrites every mutable column, including is_active so the same
// call serves deactivation.
func (repo *caredPersonRepository) Update(ctx context.Context, person *entity.CaredPerson) error {
	personM := fromCaredPersonDomain(person)

	result := repo.db.WithContext(ctx).
		Model(personM).
		Select("*").
		Omit("id", "created_at").
		Updates(personM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update cared person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// Delete removes the person; the cared_person_id foreign keys cascade.
func (repo *caredPersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CaredPersonModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete cared person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func fromCaredPersonDomain(person *entity.CaredPerson) *model.CaredPersonModel {
	return &model.CaredPersonModel{
		ID:          person.ID,
		FullName:    person.FullName,
		DateOfBirth: person.DateOfBirth,
		CareTypeID:  person.CareTypeID,
		IsSelfCare:  person.IsSelfCare,
		Notes:       person.Notes,
		IsActive:    person.IsActive,
		CreatedAt:   person.CreatedAt,
		UpdatedAt:   person.UpdatedAt,
	}
}

func toCaredPersonDomain(personM *model.CaredPersonModel) *entity.CaredPerson {
	return &entity.CaredPerson{
		ID:          personM.ID,
		FullName:    personM.FullName,
		DateOfBirth: personM.DateOfBirth,
		CareTypeID:  personM.CareTypeID,
		IsSelfCare:  personM.IsSelfCare,
		Notes:       personM.Notes,
		IsActive:    personM.IsActive,
		CreatedAt:   personM.CreatedAt,
		UpdatedAt:   personM.UpdatedAt,
	}
}
