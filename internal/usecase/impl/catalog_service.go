package impl

import (
	"context"
	"log/slog"
	"strconv"

	"careadmin/config"
	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/constants"
	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/repository"
	"careadmin/internal/domain/service"
	"careadmin/internal/usecase"
	"careadmin/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	audit        *auditRecorder
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		txManager:    params.TxManager,
		audit:        newAuditRecorder(params.Publisher, params.Logger),
		logger:       params.Logger,
		defaultLimit: constants.DefaultPageLimit,
		maxLimit:     constants.MaxPageLimit,
	}
	if cfg := params.Config; cfg != nil && cfg.Catalog != nil {
		srv.defaultLimit = cfg.Catalog.DefaultLimit
		srv.maxLimit = cfg.Catalog.MaxLimit
	}

	return srv
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func lookupSpec(kind string) (entity.CatalogSpec, error) {
	spec, ok := entity.LookupCatalog(kind)
	if !ok {
		return entity.CatalogSpec{}, domainerrors.ErrCatalogKindNotFound.WithDetails(kind)
	}

	return spec, nil
}

// validateEntry checks field rules plus the kind's category requirement.
func validateEntry(spec entity.CatalogSpec, entry *entity.CatalogEntry) error {
	if err := validation.Struct(entry); err != nil {
		return err
	}
	if spec.CategoryRequired && entry.CategoryValue() == "" {
		return validation.Failed("category", "required for "+spec.Kind.String())
	}

	return nil
}

func entryID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ListKinds describes every registered catalog.
func (srv *catalogService) ListKinds(_ context.Context) []entity.CatalogSpec {
	return entity.CatalogSpecs()
}

// Create inserts a new active entry; duplicates are rejected by the store.
func (srv *catalogService) Create(ctx context.Context, kind string, entry *entity.CatalogEntry) (*entity.CatalogEntry, error) {
	spec, err := lookupSpec(kind)
	if err != nil {
		return nil, err
	}

	created := *entry
	created.ID = 0
	created.IsActive = true
	if err := validateEntry(spec, &created); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translateRepoError(
			repoFactory.CatalogRepo().Create(ctx, spec.Kind, &created),
			domainerrors.ErrCatalogEntryNotFound,
			"failed to create "+kind+" entry",
		)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Catalog entry created", slog.String("kind", kind), slog.Int64("id", created.ID))
	srv.audit.record(ctx, kind, entryID(created.ID), entity.AuditCreate, created.Name)

	return &created, nil
}

// Get returns an entry regardless of is_active.
func (srv *catalogService) Get(ctx context.Context, kind string, id int64) (*entity.CatalogEntry, error) {
	spec, err := lookupSpec(kind)
	if err != nil {
		return nil, err
	}

	var entry *entity.CatalogEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CatalogRepo().FindByID(ctx, spec.Kind, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrCatalogEntryNotFound, kind+" entry not found")
		}
		entry = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// List returns a page in id order. A zero limit means the default; larger
// limits are capped.
func (srv *catalogService) List(ctx context.Context, kind string, filter entity.CatalogFilter) ([]*entity.CatalogEntry, error) {
	spec, err := lookupSpec(kind)
	if err != nil {
		return nil, err
	}

	if filter.Skip < 0 {
		return nil, validation.Failed("skip", "must not be negative")
	}
	if filter.Limit < 0 {
		return nil, validation.Failed("limit", "must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = srv.defaultLimit
	}
	filter.Limit = min(filter.Limit, srv.maxLimit)

	var entries []*entity.CatalogEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CatalogRepo().List(ctx, spec.Kind, filter)
		if err != nil {
			return errors.Wrapf(err, "failed to list %s", kind)
		}
		entries = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Update applies the patch to the stored entry and re-validates the result.
func (srv *catalogService) Update(ctx context.Context, kind string, id int64, patch entity.CatalogPatch) (*entity.CatalogEntry, error) {
	spec, err := lookupSpec(kind)
	if err != nil {
		return nil, err
	}

	var entry *entity.CatalogEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		found, err := catalogRepo.FindByID(ctx, spec.Kind, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrCatalogEntryNotFound, kind+" entry not found")
		}

		patch.ApplyTo(found)
		if err := validateEntry(spec, found); err != nil {
			return err
		}

		if err := catalogRepo.Update(ctx, spec.Kind, found); err != nil {
			return translateRepoError(err, domainerrors.ErrCatalogEntryNotFound, "failed to update "+kind+" entry")
		}
		entry = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.record(ctx, kind, entryID(id), entity.AuditUpdate, "")

	return entry, nil
}

// Delete deactivates the entry. Deleting an inactive entry succeeds.
func (srv *catalogService) Delete(ctx context.Context, kind string, id int64) error {
	spec, err := lookupSpec(kind)
	if err != nil {
		return err
	}

	var deactivated bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		found, err := catalogRepo.FindByID(ctx, spec.Kind, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrCatalogEntryNotFound, kind+" entry not found")
		}
		if !found.IsActive {
			return nil
		}

		found.IsActive = false
		if err := catalogRepo.Update(ctx, spec.Kind, found); err != nil {
			return translateRepoError(err, domainerrors.ErrCatalogEntryNotFound, "failed to deactivate "+kind+" entry")
		}
		deactivated = true

		return nil
	})
	if err != nil {
		return err
	}

	if deactivated {
		srv.audit.record(ctx, kind, entryID(id), entity.AuditDeactivate, "")
	}

	return nil
}

// Purge physically removes the entry.
func (srv *catalogService) Purge(ctx context.Context, kind string, id int64) error {
	spec, err := lookupSpec(kind)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translateRepoError(
			repoFactory.CatalogRepo().Delete(ctx, spec.Kind, id),
			domainerrors.ErrCatalogEntryNotFound,
			"failed to purge "+kind+" entry",
		)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Catalog entry purged", slog.String("kind", kind), slog.Int64("id", id))
	srv.audit.record(ctx, kind, entryID(id), entity.AuditDelete, "")

	return nil
}

// SeedDefaults inserts the default entries the kind is missing.
func (srv *catalogService) SeedDefaults(ctx context.Context, kind string) (int, error) {
	spec, err := lookupSpec(kind)
	if err != nil {
		return 0, err
	}

	var inserted int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := seedKind(ctx, repoFactory.CatalogRepo(), spec)
		inserted = n

		return err
	})
	if err != nil {
		return 0, err
	}

	srv.recordSeed(ctx, spec.Kind, inserted)

	return inserted, nil
}

// SeedAll seeds every kind atomically.
func (srv *catalogService) SeedAll(ctx context.Context) (map[entity.CatalogKind]int, error) {
	specs := entity.CatalogSpecs()
	inserted := make(map[entity.CatalogKind]int, len(specs))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()
		for _, spec := range specs {
			n, err := seedKind(ctx, catalogRepo, spec)
			if err != nil {
				return err
			}
			inserted[spec.Kind] = n
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for kind, n := range inserted {
		srv.recordSeed(ctx, kind, n)
	}

	return inserted, nil
}

func (srv *catalogService) recordSeed(ctx context.Context, kind entity.CatalogKind, inserted int) {
	if inserted == 0 {
		return
	}

	srv.log(ctx).Info("Catalog seeded", slog.String("kind", kind.String()), slog.Int("inserted", inserted))
	srv.audit.record(ctx, kind.String(), "*", entity.AuditSeed, strconv.Itoa(inserted)+" default entries")
}

// seedKind relies on the unique index to skip rows that already exist, so
// running it twice inserts nothing the second time.
func seedKind(ctx context.Context, catalogRepo repository.CatalogRepository, spec entity.CatalogSpec) (int, error) {
	inserted := 0
	for _, entry := range spec.Entries() {
		ok, err := catalogRepo.CreateIfAbsent(ctx, spec.Kind, entry)
		if err != nil {
			return 0, translateRepoError(err, domainerrors.ErrCatalogEntryNotFound, "failed to seed "+spec.Kind.String())
		}
		if ok {
			inserted++
		}
	}

	return inserted, nil
}

// FindByName returns the active entry with name.
func (srv *catalogService) FindByName(ctx context.Context, kind, name string, category *string) (*entity.CatalogEntry, error) {
	spec, err := lookupSpec(kind)
	if err != nil {
		return nil, err
	}

	var entry *entity.CatalogEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CatalogRepo().FindActiveByName(ctx, spec.Kind, name, category)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrCatalogEntryNotFound, kind+" entry not found")
		}
		entry = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
