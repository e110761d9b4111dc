package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ownedTable stores one owned record type. refs checks the record's foreign
// keys other than cared_person_id.
type ownedTable[E any, PE entity.OwnedRecord[E]] struct {
	name string
	rows map[uuid.UUID]*E
	refs func(s *store, record *E) error
	// typeID is set for tables whose rows carry a required catalog id.
	typeID func(record *E) int64
}

func newOwnedTable[E any, PE entity.OwnedRecord[E]](name string, refs func(*store, *E) error) *ownedTable[E, PE] {
	return &ownedTable[E, PE]{
		name: name,
		rows: make(map[uuid.UUID]*E),
		refs: refs,
	}
}

// newCatalogOwnedTable is for records whose only foreign key besides the
// owner is a required catalog id.
func newCatalogOwnedTable[E any, PE entity.OwnedRecord[E]](name string, kind entity.CatalogKind, typeID func(*E) int64) *ownedTable[E, PE] {
	t := newOwnedTable[E, PE](name, func(s *store, record *E) error {
		if !s.catalogHas(kind, typeID(record)) {
			return errors.Wrapf(repository.ErrInvalidReference, "unknown %s id %d", kind, typeID(record))
		}

		return nil
	})
	t.typeID = typeID

	return t
}

func (t *ownedTable[E, PE]) clone() *ownedTable[E, PE] {
	rows := make(map[uuid.UUID]*E, len(t.rows))
	for id, row := range t.rows {
		copied := *row
		rows[id] = &copied
	}

	return &ownedTable[E, PE]{name: t.name, rows: rows, refs: t.refs, typeID: t.typeID}
}

// references reports whether any row, active or not, carries catalog id.
func (t *ownedTable[E, PE]) references(id int64) bool {
	if t.typeID == nil {
		return false
	}
	for _, row := range t.rows {
		if t.typeID(row) == id {
			return true
		}
	}

	return false
}

func (t *ownedTable[E, PE]) deleteOwner(ownerID uuid.UUID) {
	maps.DeleteFunc(t.rows, func(_ uuid.UUID, row *E) bool {
		return PE(row).Base().CaredPersonID == ownerID
	})
}

func checkActivityRefs(s *store, activity *entity.Activity) error {
	if !s.catalogHas(entity.CatalogActivityTypes, activity.ActivityTypeID) {
		return errors.Wrap(repository.ErrInvalidReference, "unknown activity type")
	}
	if activity.DifficultyLevelID != nil && !s.catalogHas(entity.CatalogDifficultyLevels, *activity.DifficultyLevelID) {
		return errors.Wrap(repository.ErrInvalidReference, "unknown difficulty level")
	}

	return nil
}

func checkParticipationRefs(s *store, participation *entity.ActivityParticipation) error {
	if _, ok := s.activities.rows[participation.ActivityID]; !ok {
		return errors.Wrap(repository.ErrInvalidReference, "unknown activity")
	}

	return nil
}

// ownedRepository implements repository.OwnedRepository over one table of
// the shared store.
type ownedRepository[E any, PE entity.OwnedRecord[E]] struct {
	store *store
	table func(*store) *ownedTable[E, PE]
}

func (repo *ownedRepository[E, PE]) checkRefs(record *E) error {
	base := PE(record).Base()
	if _, ok := repo.store.persons[base.CaredPersonID]; !ok {
		return errors.Wrap(repository.ErrInvalidReference, "unknown cared person")
	}

	table := repo.table(repo.store)
	if table.refs != nil {
		return table.refs(repo.store, record)
	}

	return nil
}

func (repo *ownedRepository[E, PE]) Create(_ context.Context, record *E) error {
	if err := repo.checkRefs(record); err != nil {
		return err
	}

	table := repo.table(repo.store)
	base := PE(record).Base()
	if _, exists := table.rows[base.ID]; exists {
		return errors.Wrapf(repository.ErrDuplicate, "%s %s", table.name, base.ID)
	}

	now := repo.store.now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now

	copied := *record
	table.rows[base.ID] = &copied

	return nil
}

func (repo *ownedRepository[E, PE]) FindActiveByID(_ context.Context, id uuid.UUID) (*E, error) {
	row, ok := repo.table(repo.store).rows[id]
	if !ok || !PE(row).Base().IsActive {
		return nil, repository.ErrNotFound
	}

	copied := *row

	return &copied, nil
}

func (repo *ownedRepository[E, PE]) FindActiveByOwner(_ context.Context, ownerID uuid.UUID) ([]*E, error) {
	records := make([]*E, 0)
	for _, row := range repo.table(repo.store).rows {
		base := PE(row).Base()
		if base.CaredPersonID == ownerID && base.IsActive {
			copied := *row
			records = append(records, &copied)
		}
	}

	slices.SortFunc(records, func(a, b *E) int {
		baseA, baseB := PE(a).Base(), PE(b).Base()
		if c := baseA.CreatedAt.Compare(baseB.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(baseA.ID.String(), baseB.ID.String())
	})

	return records, nil
}

func (repo *ownedRepository[E, PE]) Update(_ context.Context, record *E) error {
	table := repo.table(repo.store)
	base := PE(record).Base()

	current, ok := table.rows[base.ID]
	if !ok || !PE(current).Base().IsActive {
		return repository.ErrNotFound
	}
	if err := repo.checkRefs(record); err != nil {
		return err
	}

	stored := PE(current).Base()
	base.CaredPersonID = stored.CaredPersonID
	base.CreatedAt = stored.CreatedAt
	base.IsActive = true
	base.UpdatedAt = repo.store.now()

	copied := *record
	table.rows[base.ID] = &copied

	return nil
}

func (repo *ownedRepository[E, PE]) Deactivate(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	row, ok := repo.table(repo.store).rows[id]
	if !ok {
		return false, nil
	}

	base := PE(row).Base()
	if !base.IsActive {
		return false, nil
	}
	base.IsActive = false
	base.UpdatedAt = at

	return true, nil
}
