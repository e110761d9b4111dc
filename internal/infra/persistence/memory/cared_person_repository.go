package memory

import (
	"context"
	"slices"
	"strings"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type caredPersonRepository struct {
	store *store
}

func (repo *caredPersonRepository) checkRefs(person *entity.CaredPerson) error {
	if person.CareTypeID != nil && !repo.store.catalogHas(entity.CatalogCareTypes, *person.CareTypeID) {
		return errors.Wrap(repository.ErrInvalidReference, "unknown care type")
	}

	return nil
}

func (repo *caredPersonRepository) Create(_ context.Context, person *entity.CaredPerson) error {
	if err := repo.checkRefs(person); err != nil {
		return err
	}
	if _, exists := repo.store.persons[person.ID]; exists {
		return errors.Wrapf(repository.ErrDuplicate, "cared person %s", person.ID)
	}

	now := repo.store.now()
	person.CreatedAt = now
	person.UpdatedAt = now

	copied := *person
	repo.store.persons[person.ID] = &copied

	return nil
}

func (repo *caredPersonRepository) FindActiveByID(_ context.Context, id uuid.UUID) (*entity.CaredPerson, error) {
	person, ok := repo.store.persons[id]
	if !ok || !person.IsActive {
		return nil, repository.ErrNotFound
	}

	copied := *person

	return &copied, nil
}

func (repo *caredPersonRepository) List(_ context.Context, skip, limit int) ([]*entity.CaredPerson, error) {
	persons := make([]*entity.CaredPerson, 0, len(repo.store.persons))
	for _, person := range repo.store.persons {
		if person.IsActive {
			copied := *person
			persons = append(persons, &copied)
		}
	}

	slices.SortFunc(persons, func(a, b *entity.CaredPerson) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})

	if skip >= len(persons) {
		return []*entity.CaredPerson{}, nil
	}
	persons = persons[skip:]
	if limit > 0 && limit < len(persons) {
		persons = persons[:limit]
	}

	return persons, nil
}

func (repo *caredPersonRepository) Update(_ context.Context, person *entity.CaredPerson) error {
	current, ok := repo.store.persons[person.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if err := repo.checkRefs(person); err != nil {
		return err
	}

	person.CreatedAt = current.CreatedAt
	person.UpdatedAt = repo.store.now()

	copied := *person
	repo.store.persons[person.ID] = &copied

	return nil
}

func (repo *caredPersonRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := repo.store.persons[id]; !ok {
		return repository.ErrNotFound
	}

	delete(repo.store.persons, id)
	repo.store.deleteOwner(id)

	return nil
}
