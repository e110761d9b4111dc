package postgres

import (
	"context"
	"testing"
	"time"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

func TestCatalogRepository_DuplicateRejectedByConstraint(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewCatalogRepository(tx)

	name := "chronic-" + uuid.NewString()[:8]
	first := &entity.CatalogEntry{Name: name, IsActive: true}
	require.NoError(t, repo.Create(ctx, entity.CatalogCareTypes, first))
	assert.NotZero(t, first.ID)

	before, err := repo.Count(ctx, entity.CatalogCareTypes)
	require.NoError(t, err)

	err = savepoint(tx, func(nested *gorm.DB) error {
		return NewCatalogRepository(nested).Create(ctx, entity.CatalogCareTypes, &entity.CatalogEntry{Name: name, IsActive: true})
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	after, err := repo.Count(ctx, entity.CatalogCareTypes)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCatalogRepository_CategoryScopedUniqueness(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewCatalogRepository(tx)

	name := "pending-" + uuid.NewString()[:8]
	require.NoError(t, repo.Create(ctx, entity.CatalogStatusTypes, &entity.CatalogEntry{Name: name, Category: strPtr("alert"), IsActive: true}))
	require.NoError(t, repo.Create(ctx, entity.CatalogStatusTypes, &entity.CatalogEntry{Name: name, Category: strPtr("report"), IsActive: true}))

	inserted, err := repo.CreateIfAbsent(ctx, entity.CatalogStatusTypes, &entity.CatalogEntry{Name: name, Category: strPtr("alert"), IsActive: true})
	require.NoError(t, err)
	assert.False(t, inserted)

	found, err := repo.FindActiveByName(ctx, entity.CatalogStatusTypes, name, strPtr("report"))
	require.NoError(t, err)
	assert.Equal(t, "report", found.CategoryValue())
}

func TestCatalogRepository_ListAndUpdate(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewCatalogRepository(tx)

	category := "cat-" + uuid.NewString()[:8]
	var ids []int64
	for i := range 3 {
		entry := &entity.CatalogEntry{Name: category + "-" + string(rune('a'+i)), Category: &category, IsActive: true}
		require.NoError(t, repo.Create(ctx, entity.CatalogReportTypes, entry))
		ids = append(ids, entry.ID)
	}

	page, err := repo.List(ctx, entity.CatalogReportTypes, entity.CatalogFilter{Skip: 1, Limit: 10, Category: &category})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[1], page[0].ID)

	entry, err := repo.FindByID(ctx, entity.CatalogReportTypes, ids[0])
	require.NoError(t, err)
	entry.IsActive = false
	entry.Description = strPtr("retired")
	require.NoError(t, repo.Update(ctx, entity.CatalogReportTypes, entry))

	active, err := repo.List(ctx, entity.CatalogReportTypes, entity.CatalogFilter{Limit: 10, Category: &category, ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	reloaded, err := repo.FindByID(ctx, entity.CatalogReportTypes, ids[0])
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
	assert.Equal(t, "retired", *reloaded.Description)
}

func TestCatalogRepository_PurgeReferencedRow(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	catalogs := NewCatalogRepository(tx)

	careType := &entity.CatalogEntry{Name: "ref-" + uuid.NewString()[:8], IsActive: true}
	require.NoError(t, catalogs.Create(ctx, entity.CatalogCareTypes, careType))

	person := &entity.CaredPerson{ID: uuid.New(), FullName: "Ana", CareTypeID: &careType.ID, IsActive: true}
	require.NoError(t, NewCaredPersonRepository(tx).Create(ctx, person))

	err := savepoint(tx, func(nested *gorm.DB) error {
		return NewCatalogRepository(nested).Delete(ctx, entity.CatalogCareTypes, careType.ID)
	})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)

	assert.ErrorIs(t, catalogs.Delete(ctx, entity.CatalogCareTypes, -1), repository.ErrNotFound)
}

func TestOwnedRepository_Lifecycle(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()

	person := &entity.CaredPerson{ID: uuid.New(), FullName: "Luis", IsActive: true}
	require.NoError(t, NewCaredPersonRepository(tx).Create(ctx, person))

	repo := NewAllergyRepository(tx)
	allergy := &entity.Allergy{
		OwnedBase:    entity.OwnedBase{ID: uuid.New(), CaredPersonID: person.ID, IsActive: true},
		AllergenName: "Penicillin",
		Severity:     strPtr("high"),
	}
	require.NoError(t, repo.Create(ctx, allergy))

	allergy.Severity = nil
	require.NoError(t, repo.Update(ctx, allergy))

	found, err := repo.FindActiveByID(ctx, allergy.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Severity)

	ok, err := repo.Deactivate(ctx, allergy.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Deactivate(ctx, allergy.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.FindActiveByID(ctx, allergy.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, allergy), repository.ErrNotFound)
}

func TestOwnedRepository_UnknownOwner(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()

	err := savepoint(tx, func(nested *gorm.DB) error {
		return NewMedicationRepository(nested).Create(ctx, &entity.Medication{
			OwnedBase:      entity.OwnedBase{ID: uuid.New(), CaredPersonID: uuid.New(), IsActive: true},
			MedicationName: "Aspirin",
		})
	})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestReminderRepository_CatalogReference(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	catalogs := NewCatalogRepository(tx)

	person := &entity.CaredPerson{ID: uuid.New(), FullName: "Marta", IsActive: true}
	require.NoError(t, NewCaredPersonRepository(tx).Create(ctx, person))

	reminderType := &entity.CatalogEntry{Name: "ref-" + uuid.NewString()[:8], IsActive: true}
	require.NoError(t, catalogs.Create(ctx, entity.CatalogReminderTypes, reminderType))

	newReminder := func(typeID int64) *entity.Reminder {
		return &entity.Reminder{
			OwnedBase:      entity.OwnedBase{ID: uuid.New(), CaredPersonID: person.ID, IsActive: true},
			ReminderTypeID: typeID,
			Title:          "Blood pressure check",
			ScheduledTime:  "08:15",
			DaysOfWeek:     []int{1, 3, 5},
		}
	}

	err := savepoint(tx, func(nested *gorm.DB) error {
		return NewReminderRepository(nested).Create(ctx, newReminder(-1))
	})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)

	repo := NewReminderRepository(tx)
	reminder := newReminder(reminderType.ID)
	require.NoError(t, repo.Create(ctx, reminder))

	found, err := repo.FindActiveByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, found.DaysOfWeek)

	err = savepoint(tx, func(nested *gorm.DB) error {
		return NewCatalogRepository(nested).Delete(ctx, entity.CatalogReminderTypes, reminderType.ID)
	})
	assert.ErrorIs(t, err, repository.ErrInvalidReference)
}

func TestCaredPersonRepository_DeleteCascades(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	persons := NewCaredPersonRepository(tx)
	vitals := NewVitalSignRepository(tx)

	person := &entity.CaredPerson{ID: uuid.New(), FullName: "Marta", IsActive: true}
	require.NoError(t, persons.Create(ctx, person))

	vital := &entity.VitalSign{
		OwnedBase:  entity.OwnedBase{ID: uuid.New(), CaredPersonID: person.ID, IsActive: true},
		MeasuredAt: time.Now(),
	}
	require.NoError(t, vitals.Create(ctx, vital))

	require.NoError(t, persons.Delete(ctx, person.ID))

	records, err := vitals.FindActiveByOwner(ctx, person.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPackageRepository_FindActiveCheapestFirst(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewPackageRepository(tx)

	packageType := "type-" + uuid.NewString()[:8]
	for i, price := range []int64{3000, 1000, 2000} {
		require.NoError(t, repo.Create(ctx, &entity.CarePackage{
			ID:           uuid.New(),
			PackageType:  packageType,
			Name:         packageType + "-" + string(rune('a'+i)),
			PriceMonthly: price,
			Currency:     "ARS",
			Features:     []string{"alerts"},
			IsActive:     true,
		}))
	}

	packages, err := repo.FindActive(ctx, packageType)
	require.NoError(t, err)
	require.Len(t, packages, 3)
	assert.Equal(t, int64(1000), packages[0].PriceMonthly)
	assert.Equal(t, []string{"alerts"}, packages[0].Features)
}

func TestAuditLogRepository_CreateIsIdempotent(t *testing.T) {
	tx := testTx(t)
	ctx := context.Background()
	repo := NewAuditLogRepository(tx)

	log := &entity.AuditLog{
		ID:         uuid.New(),
		EntityType: "allergies",
		EntityID:   uuid.NewString(),
		Action:     entity.AuditCreate,
		OccurredAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, log))
	require.NoError(t, repo.Create(ctx, log))

	logs, err := repo.FindByEntity(ctx, log.EntityType, log.EntityID, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
