// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"careadmin/internal/domain/entity"

	"github.com/pkg/errors"
)

// Persistence-level sentinel errors. Use cases translate them into
// application errors.
var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate key")
	// ErrInvalidReference is returned when a foreign key rejects a write or delete.
	ErrInvalidReference = errors.New("foreign key violation")
	// ErrConstraint is returned for not-null and check violations.
	ErrConstraint = errors.New("constraint violation")
)

// CatalogRepository persists rows of any catalog kind. Uniqueness is enforced
// by the store itself; writes report ErrDuplicate instead of being pre-checked.
type CatalogRepository interface {
	// Create inserts entry and fills in its ID and timestamps.
	Create(ctx context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) error

	// CreateIfAbsent inserts entry unless its uniqueness key already exists.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) (bool, error)

	// FindByID returns the row regardless of is_active.
	FindByID(ctx context.Context, kind entity.CatalogKind, id int64) (*entity.CatalogEntry, error)

	// FindActiveByName returns the active row with name (and category when given).
	FindActiveByName(ctx context.Context, kind entity.CatalogKind, name string, category *string) (*entity.CatalogEntry, error)

	// List returns a page ordered by id.
	List(ctx context.Context, kind entity.CatalogKind, filter entity.CatalogFilter) ([]*entity.CatalogEntry, error)

	// Count returns the number of rows, active or not.
	Count(ctx context.Context, kind entity.CatalogKind) (int64, error)

	// Update overwrites every mutable column of entry.
	Update(ctx context.Context, kind entity.CatalogKind, entry *entity.CatalogEntry) error

	// Delete physically removes the row.
	Delete(ctx context.Context, kind entity.CatalogKind, id int64) error
}
