package impl

import (
	"context"
	"testing"

	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaredPersonService_CRUD(t *testing.T) {
	params := newOwnedParams(t)
	srv := NewCaredPersonService(params)
	ctx := context.Background()

	careType, err := newTestCatalogService(t, params).Create(ctx, "care_types", &entity.CatalogEntry{Name: "chronic"})
	require.NoError(t, err)

	person, err := srv.Create(ctx, &entity.CaredPerson{FullName: "Grace Hopper", CareTypeID: &careType.ID})
	require.NoError(t, err)
	assert.True(t, person.IsActive)

	updated, err := srv.Update(ctx, person.ID, entity.CaredPersonPatch{Notes: entity.Some(strPtr("Prefers mornings"))})
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", updated.FullName)
	assert.Equal(t, "Prefers mornings", *updated.Notes)
	assert.Equal(t, careType.ID, *updated.CareTypeID)

	people, err := srv.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, people, 1)

	require.NoError(t, srv.Deactivate(ctx, person.ID))
	_, err = srv.Get(ctx, person.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrCaredPersonNotFound))
}

func TestCaredPersonService_UnknownCareType(t *testing.T) {
	srv := NewCaredPersonService(newOwnedParams(t))
	careTypeID := int64(42)

	_, err := srv.Create(context.Background(), &entity.CaredPerson{FullName: "Alan Turing", CareTypeID: &careTypeID})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestCaredPersonService_DeleteCascades(t *testing.T) {
	params := newOwnedParams(t)
	srv := NewCaredPersonService(params)
	allergies := NewAllergyService(params)
	ctx := context.Background()

	person := createTestPerson(t, params)
	allergy, err := allergies.Create(ctx, person.ID, &entity.Allergy{AllergenName: "Shellfish"})
	require.NoError(t, err)

	require.NoError(t, srv.Delete(ctx, person.ID))

	_, err = allergies.GetByID(ctx, allergy.ID)
	assert.True(t, domainerrors.IsNotFound(err))

	err = srv.Delete(ctx, person.ID)
	assert.True(t, domainerrors.IsNotFound(err))
}
