// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"careadmin/internal/domain/entity"
)

// CatalogUsecase manages every lookup table through one set of operations.
// kind is the table name; unknown kinds fail with ErrCatalogKindNotFound.
type CatalogUsecase interface {
	// ListKinds describes every registered catalog.
	ListKinds(ctx context.Context) []entity.CatalogSpec

	// Create inserts a new active entry. A duplicate within the kind's
	// uniqueness scope fails with ErrDuplicate.
	Create(ctx context.Context, kind string, entry *entity.CatalogEntry) (*entity.CatalogEntry, error)

	// Get returns an entry whether active or not.
	Get(ctx context.Context, kind string, id int64) (*entity.CatalogEntry, error)

	// List returns a page ordered by id.
	List(ctx context.Context, kind string, filter entity.CatalogFilter) ([]*entity.CatalogEntry, error)

	// Update applies the supplied fields only.
	Update(ctx context.Context, kind string, id int64, patch entity.CatalogPatch) (*entity.CatalogEntry, error)

	// Delete deactivates an entry.
	Delete(ctx context.Context, kind string, id int64) error

	// Purge removes an entry for good. It fails with ErrInvalidReference while
	// other rows still point at it.
	Purge(ctx context.Context, kind string, id int64) error

	// SeedDefaults inserts the kind's missing default entries and returns how
	// many were added.
	SeedDefaults(ctx context.Context, kind string) (int, error)

	// SeedAll seeds every kind in one transaction.
	SeedAll(ctx context.Context) (map[entity.CatalogKind]int, error)

	// FindByName returns the active entry with name, narrowed by category
	// when one is given.
	FindByName(ctx context.Context, kind, name string, category *string) (*entity.CatalogEntry, error)
}
