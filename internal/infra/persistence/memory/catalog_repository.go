package memory

import (
	"context"
	"maps"
	"slices"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"

	"github.com/pkg/errors"
)

type catalogRepository struct {
	store *store
}

func (repo *catalogRepository) table(kind entity.CatalogKind) (*catalogTable, entity.CatalogSpec, error) {
	spec, ok := entity.LookupCatalog(kind.String())
	if !ok {
		return nil, entity.CatalogSpec{}, errors.Errorf("unknown catalog table %q", kind)
	}

	return repo.store.catalogs[kind], spec, nil
}

// conflicting returns the row that shares entry's unique key, if any. Like a
// PostgreSQL unique index, a NULL category never collides.
func conflicting(table *catalogTable, spec entity.CatalogSpec, entry *entity.CatalogEntry) *entity.CatalogEntry {
	if spec.Scope == entity.ScopeCategory && entry.Category == nil {
		return nil
	}

	key := spec.Key(entry.Name, entry.Category)
	for _, row := range table.rows {
		if row.ID == entry.ID {
			continue
		}
		if spec.Scope == entity.ScopeCategory && row.Category == nil {
			continue
		}
		if spec.Key(row.Name, row.Category) == key {
			return row
		}
	}

	return nil
}

func (repo *catalogRepository) insert(table *catalogTable, entry *entity.CatalogEntry) {
	table.nextID++
	now := repo.store.now()

	entry.ID = table.nextID
	entry.CreatedAt = now
	entry.UpdatedAt = now

	copied := *entry
	table.rows[entry.ID] = &copied
}

func (repo *catalogRepository) Create(_ context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) error {
	table, spec, err := repo.table(kind)
	if err != nil {
		return err
	}

	entry.ID = 0
	if conflicting(table, spec, entry) != nil {
		return errors.Wrapf(repository.ErrDuplicate, "%s %q", kind, entry.Name)
	}

	repo.insert(table, entry)

	return nil
}

func (repo *catalogRepository) CreateIfAbsent(_ context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) (bool, error) {
	table, spec, err := repo.table(kind)
	if err != nil {
		return false, err
	}

	entry.ID = 0
	if conflicting(table, spec, entry) != nil {
		return false, nil
	}

	repo.insert(table, entry)

	return true, nil
}

func (repo *catalogRepository) FindByID(_ context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogEntry, error) {
	table, _, err := repo.table(kind)
	if err != nil {
		return nil, err
	}

	row, ok := table.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copied := *row

	return &copied, nil
}

func (repo *catalogRepository) FindActiveByName(_ context.Context, kind entity.CatalogKind, name string, category *string) (*entity.CatalogEntry, error) {
	table, _, err := repo.table(kind)
	if err != nil {
		return nil, err
	}

	var found *entity.CatalogEntry
	for _, row := range table.rows {
		if !row.IsActive || row.Name != name {
			continue
		}
		if category != nil && (row.Category == nil || *row.Category != *category) {
			continue
		}
		if found == nil || row.ID < found.ID {
			found = row
		}
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}

	copied := *found

	return &copied, nil
}

func (repo *catalogRepository) List(_ context.Context, kind entity.CatalogKind, filter entity.CatalogFilter) ([]*entity.CatalogEntry, error) {
	table, _, err := repo.table(kind)
	if err != nil {
		return nil, err
	}

	ids := slices.Sorted(maps.Keys(table.rows))
	entries := make([]*entity.CatalogEntry, 0)
	skipped := 0
	for _, id := range ids {
		row := table.rows[id]
		if filter.ActiveOnly && !row.IsActive {
			continue
		}
		if filter.Category != nil && (row.Category == nil || *row.Category != *filter.Category) {
			continue
		}
		if skipped < filter.Skip {
			skipped++

			continue
		}
		if filter.Limit > 0 && len(entries) >= filter.Limit {
			break
		}

		copied := *row
		entries = append(entries, &copied)
	}

	return entries, nil
}

func (repo *catalogRepository) Count(_ context.Context, kind entity.CatalogKind) (int64, error) {
	table, _, err := repo.table(kind)
	if err != nil {
		return 0, err
	}

	return int64(len(table.rows)), nil
}

func (repo *catalogRepository) Update(_ context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) error {
	table, spec, err := repo.table(kind)
	if err != nil {
		return err
	}

	current, ok := table.rows[entry.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if conflicting(table, spec, entry) != nil {
		return errors.Wrapf(repository.ErrDuplicate, "%s %q", kind, entry.Name)
	}

	entry.CreatedAt = current.CreatedAt
	entry.UpdatedAt = repo.store.now()

	copied := *entry
	table.rows[entry.ID] = &copied

	return nil
}

func (repo *catalogRepository) Delete(_ context.Context, kind entity.CatalogKind, id int64) error {
	table, _, err := repo.table(kind)
	if err != nil {
		return err
	}

	if _, ok := table.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if repo.store.catalogReferenced(kind, id) {
		return errors.Wrapf(repository.ErrInvalidReference, "%s %d is still referenced", kind, id)
	}

	delete(table.rows, id)

	return nil
}
