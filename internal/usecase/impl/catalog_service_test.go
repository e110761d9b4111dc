package impl

import (
	"context"
	"strings"
	"testing"

	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService(t *testing.T, params OwnedServiceParams) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		TxManager: params.TxManager,
		Publisher: params.Publisher,
		Logger:    params.Logger,
	})
}

func countEntries(t *testing.T, srv usecase.CatalogUsecase, kind string) int {
	t.Helper()

	entries, err := srv.List(context.Background(), kind, entity.CatalogFilter{})
	require.NoError(t, err)

	return len(entries)
}

func TestCatalogService_SeedDefaults_Idempotent(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()
	spec, _ := entity.LookupCatalog("care_types")

	inserted, err := srv.SeedDefaults(ctx, "care_types")
	require.NoError(t, err)
	assert.Equal(t, len(spec.Defaults), inserted)

	inserted, err = srv.SeedDefaults(ctx, "care_types")
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Equal(t, len(spec.Defaults), countEntries(t, srv, "care_types"))
}

func TestCatalogService_SeedAll(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()

	first, err := srv.SeedAll(ctx)
	require.NoError(t, err)

	second, err := srv.SeedAll(ctx)
	require.NoError(t, err)

	for _, spec := range entity.CatalogSpecs() {
		assert.Equal(t, len(spec.Defaults), first[spec.Kind], spec.Kind)
		assert.Zero(t, second[spec.Kind], spec.Kind)
	}
}

func TestCatalogService_Create_DuplicateCareType(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()

	created, err := srv.Create(ctx, "care_types", &entity.CatalogEntry{Name: "chronic"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.True(t, created.IsActive)

	_, err = srv.Create(ctx, "care_types", &entity.CatalogEntry{Name: "chronic"})
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidation(err))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicate))
	assert.Equal(t, 1, countEntries(t, srv, "care_types"))
}

func TestCatalogService_Create_StatusTypesScopedByCategory(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()

	_, err := srv.Create(ctx, "status_types", &entity.CatalogEntry{Name: "open"})
	assert.True(t, domainerrors.IsValidation(err), "category is required")

	_, err = srv.Create(ctx, "status_types", &entity.CatalogEntry{Name: "open", Category: strPtr("alert")})
	require.NoError(t, err)
	_, err = srv.Create(ctx, "status_types", &entity.CatalogEntry{Name: "open", Category: strPtr("report")})
	require.NoError(t, err)

	_, err = srv.Create(ctx, "status_types", &entity.CatalogEntry{Name: "open", Category: strPtr("alert")})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicate))
	assert.Equal(t, 2, countEntries(t, srv, "status_types"))
}

func TestCatalogService_Create_InvalidInput(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()

	tests := []struct {
		name  string
		entry *entity.CatalogEntry
	}{
		{name: "empty name", entry: &entity.CatalogEntry{}},
		{name: "bad color", entry: &entity.CatalogEntry{Name: "red", ColorCode: strPtr("red")}},
		{name: "short color", entry: &entity.CatalogEntry{Name: "teal", ColorCode: strPtr("#abc")}},
		{name: "long icon", entry: &entity.CatalogEntry{Name: "icon", IconName: strPtr(strings.Repeat("x", 51))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Create(ctx, "alert_types", tt.entry)
			assert.True(t, domainerrors.IsValidation(err))
		})
	}
	assert.Zero(t, countEntries(t, srv, "alert_types"))
}

func TestCatalogService_UnknownKind(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))

	_, err := srv.Get(context.Background(), "no_such_types", 1)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogKindNotFound))
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestCatalogService_List_Paging(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := srv.Create(ctx, "report_types", &entity.CatalogEntry{Name: name})
		require.NoError(t, err)
	}

	page, err := srv.List(ctx, "report_types", entity.CatalogFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].Name)

	page, err = srv.List(ctx, "report_types", entity.CatalogFilter{Skip: 10})
	require.NoError(t, err)
	assert.Empty(t, page)

	_, err = srv.List(ctx, "report_types", entity.CatalogFilter{Skip: -1})
	assert.True(t, domainerrors.IsValidation(err))

	_, err = srv.List(ctx, "report_types", entity.CatalogFilter{Limit: -1})
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCatalogService_UpdateDeletePurge(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()

	created, err := srv.Create(ctx, "device_types", &entity.CatalogEntry{Name: "sensor", Description: strPtr("Sensor")})
	require.NoError(t, err)
	_, err = srv.Create(ctx, "device_types", &entity.CatalogEntry{Name: "camera"})
	require.NoError(t, err)

	updated, err := srv.Update(ctx, "device_types", created.ID, entity.CatalogPatch{Name: entity.Some("door_sensor")})
	require.NoError(t, err)
	assert.Equal(t, "door_sensor", updated.Name)
	assert.Equal(t, "Sensor", *updated.Description)

	_, err = srv.Update(ctx, "device_types", created.ID, entity.CatalogPatch{Name: entity.Some("camera")})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicate))

	require.NoError(t, srv.Delete(ctx, "device_types", created.ID))
	require.NoError(t, srv.Delete(ctx, "device_types", created.ID))

	found, err := srv.Get(ctx, "device_types", created.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	active, err := srv.List(ctx, "device_types", entity.CatalogFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 1)

	require.NoError(t, srv.Purge(ctx, "device_types", created.ID))
	_, err = srv.Get(ctx, "device_types", created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCatalogEntryNotFound))

	err = srv.Purge(ctx, "device_types", created.ID)
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestCatalogService_Purge_StillReferenced(t *testing.T) {
	params := newOwnedParams(t)
	srv := newTestCatalogService(t, params)
	ctx := context.Background()

	activityType, err := srv.Create(ctx, "activity_types", &entity.CatalogEntry{Name: "walking"})
	require.NoError(t, err)

	person := createTestPerson(t, params)
	_, err = NewActivityService(params).Create(ctx, person.ID, &entity.Activity{
		ActivityTypeID: activityType.ID,
		ActivityName:   "Morning walk",
	})
	require.NoError(t, err)

	err = srv.Purge(ctx, "activity_types", activityType.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
	assert.True(t, domainerrors.IsValidation(err))

	_, err = srv.Get(ctx, "activity_types", activityType.ID)
	assert.NoError(t, err)
}

func TestCatalogService_FindByName(t *testing.T) {
	srv := newTestCatalogService(t, newOwnedParams(t))
	ctx := context.Background()

	_, err := srv.SeedDefaults(ctx, "status_types")
	require.NoError(t, err)

	seeds, _ := entity.LookupCatalog("status_types")
	want := seeds.Defaults[0]

	found, err := srv.FindByName(ctx, "status_types", want.Name, strPtr(want.Category))
	require.NoError(t, err)
	assert.Equal(t, want.Name, found.Name)
	assert.Equal(t, want.Category, found.CategoryValue())

	_, err = srv.FindByName(ctx, "status_types", "no-such-status", nil)
	assert.True(t, domainerrors.IsNotFound(err))
}
