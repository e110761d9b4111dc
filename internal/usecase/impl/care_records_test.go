package impl

import (
	"context"
	"testing"
	"time"

	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareRecords_CatalogReferences(t *testing.T) {
	shiftStart := time.Date(2024, 4, 1, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		kind   string
		create func(params OwnedServiceParams, ownerID uuid.UUID, typeID int64) error
	}{
		{
			kind: "caregiver_assignment_types",
			create: func(params OwnedServiceParams, ownerID uuid.UUID, typeID int64) error {
				_, err := NewCaregiverAssignmentService(params).Create(context.Background(), ownerID, &entity.CaregiverAssignment{
					CaregiverAssignmentTypeID: typeID,
					CaregiverID:               uuid.New(),
				})

				return err
			},
		},
		{
			kind: "shift_observation_types",
			create: func(params OwnedServiceParams, ownerID uuid.UUID, typeID int64) error {
				_, err := NewShiftObservationService(params).Create(context.Background(), ownerID, &entity.ShiftObservation{
					ShiftObservationTypeID: typeID,
					CaregiverID:            uuid.New(),
					ShiftStart:             shiftStart,
					ShiftEnd:               shiftStart.Add(8 * time.Hour),
				})

				return err
			},
		},
		{
			kind: "reminder_types",
			create: func(params OwnedServiceParams, ownerID uuid.UUID, typeID int64) error {
				_, err := NewReminderService(params).Create(context.Background(), ownerID, &entity.Reminder{
					ReminderTypeID: typeID,
					Title:          "Evening pills",
					ScheduledTime:  "20:30",
				})

				return err
			},
		},
		{
			kind: "alert_types",
			create: func(params OwnedServiceParams, ownerID uuid.UUID, typeID int64) error {
				_, err := NewAlertService(params).Create(context.Background(), ownerID, &entity.Alert{
					AlertTypeID: typeID,
					Message:     "No movement for two hours",
				})

				return err
			},
		},
		{
			kind: "device_types",
			create: func(params OwnedServiceParams, ownerID uuid.UUID, typeID int64) error {
				_, err := NewDeviceService(params).Create(context.Background(), ownerID, &entity.Device{
					DeviceTypeID: typeID,
					SerialNumber: "ESP32-0001",
					Name:         "Wrist band",
				})

				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			params := newOwnedParams(t)
			catalogs := newTestCatalogService(t, params)
			ctx := context.Background()
			person := createTestPerson(t, params)

			entry, err := catalogs.Create(ctx, tt.kind, &entity.CatalogEntry{Name: "standard"})
			require.NoError(t, err)

			err = tt.create(params, person.ID, entry.ID+100)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))

			require.NoError(t, tt.create(params, person.ID, entry.ID))

			err = catalogs.Purge(ctx, tt.kind, entry.ID)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))

			_, err = catalogs.Get(ctx, tt.kind, entry.ID)
			assert.NoError(t, err)
		})
	}
}

func seedType(t *testing.T, params OwnedServiceParams, kind string) int64 {
	t.Helper()

	entry, err := newTestCatalogService(t, params).Create(context.Background(), kind, &entity.CatalogEntry{Name: "general"})
	require.NoError(t, err)

	return entry.ID
}

func TestCareRecords_Defaults(t *testing.T) {
	params := newOwnedParams(t)
	ctx := context.Background()
	person := createTestPerson(t, params)

	alert, err := NewAlertService(params).Create(ctx, person.ID, &entity.Alert{
		AlertTypeID: seedType(t, params, "alert_types"),
		Message:     "SOS button pressed",
	})
	require.NoError(t, err)
	assert.Equal(t, "medium", alert.Severity)
	assert.False(t, alert.IsResolved)

	device, err := NewDeviceService(params).Create(ctx, person.ID, &entity.Device{
		DeviceTypeID: seedType(t, params, "device_types"),
		SerialNumber: "ESP32-0002",
		Name:         "Door sensor",
	})
	require.NoError(t, err)
	assert.Equal(t, "ready", device.Status)

	observations := NewShiftObservationService(params)
	start := time.Date(2024, 4, 1, 22, 0, 0, 0, time.UTC)
	observation, err := observations.Create(ctx, person.ID, &entity.ShiftObservation{
		ShiftObservationTypeID: seedType(t, params, "shift_observation_types"),
		CaregiverID:            uuid.New(),
		ShiftStart:             start,
		ShiftEnd:               start.Add(8 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", observation.Status)

	reminder, err := NewReminderService(params).Create(ctx, person.ID, &entity.Reminder{
		ReminderTypeID: seedType(t, params, "reminder_types"),
		Title:          "Drink water",
		ScheduledTime:  "10:00",
	})
	require.NoError(t, err)
	assert.Empty(t, reminder.DaysOfWeek)
	assert.NotNil(t, reminder.DaysOfWeek)

	srv := NewCaregiverAssignmentService(params).(*ownedService[entity.CaregiverAssignment, *entity.CaregiverAssignment, entity.CaregiverAssignmentPatch])
	fixed := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return fixed }
	assignment, err := srv.Create(ctx, person.ID, &entity.CaregiverAssignment{
		CaregiverAssignmentTypeID: seedType(t, params, "caregiver_assignment_types"),
		CaregiverID:               uuid.New(),
		IsPrimary:                 true,
	})
	require.NoError(t, err)
	assert.True(t, assignment.StartDate.Equal(fixed))
}

func TestCareRecords_Validation(t *testing.T) {
	params := newOwnedParams(t)
	ctx := context.Background()
	person := createTestPerson(t, params)

	reminders := NewReminderService(params)
	reminderType := seedType(t, params, "reminder_types")
	for _, tt := range []struct {
		name     string
		reminder *entity.Reminder
	}{
		{name: "bad time", reminder: &entity.Reminder{ReminderTypeID: reminderType, Title: "Walk", ScheduledTime: "25:00"}},
		{name: "bad weekday", reminder: &entity.Reminder{ReminderTypeID: reminderType, Title: "Walk", ScheduledTime: "09:00", DaysOfWeek: []int{1, 8}}},
		{name: "repeated weekday", reminder: &entity.Reminder{ReminderTypeID: reminderType, Title: "Walk", ScheduledTime: "09:00", DaysOfWeek: []int{2, 2}}},
		{name: "missing type", reminder: &entity.Reminder{Title: "Walk", ScheduledTime: "09:00"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reminders.Create(ctx, person.ID, tt.reminder)
			assert.True(t, domainerrors.IsValidation(err))
		})
	}

	start := time.Date(2024, 4, 1, 7, 0, 0, 0, time.UTC)
	_, err := NewShiftObservationService(params).Create(ctx, person.ID, &entity.ShiftObservation{
		ShiftObservationTypeID: seedType(t, params, "shift_observation_types"),
		CaregiverID:            uuid.New(),
		ShiftStart:             start,
		ShiftEnd:               start.Add(-time.Hour),
	})
	assert.True(t, domainerrors.IsValidation(err))

	alerts := NewAlertService(params)
	alert, err := alerts.Create(ctx, person.ID, &entity.Alert{
		AlertTypeID: seedType(t, params, "alert_types"),
		Message:     "Temperature high",
		Severity:    "high",
	})
	require.NoError(t, err)

	_, err = alerts.Update(ctx, alert.ID, entity.AlertPatch{Severity: entity.Some("urgent")})
	assert.True(t, domainerrors.IsValidation(err))

	resolvedAt := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	resolved, err := alerts.Update(ctx, alert.ID, entity.AlertPatch{
		IsResolved: entity.Some(true),
		ResolvedAt: entity.Some(&resolvedAt),
	})
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	assert.Equal(t, "high", resolved.Severity)

	assignments := NewCaregiverAssignmentService(params)
	assignment, err := assignments.Create(ctx, person.ID, &entity.CaregiverAssignment{
		CaregiverAssignmentTypeID: seedType(t, params, "caregiver_assignment_types"),
		CaregiverID:               uuid.New(),
		StartDate:                 start,
	})
	require.NoError(t, err)

	endBefore := start.Add(-24 * time.Hour)
	_, err = assignments.Update(ctx, assignment.ID, entity.CaregiverAssignmentPatch{EndDate: entity.Some(&endBefore)})
	assert.True(t, domainerrors.IsValidation(err))
}

func TestCareRecords_DeletedWithOwner(t *testing.T) {
	params := newOwnedParams(t)
	ctx := context.Background()
	person := createTestPerson(t, params)
	devices := NewDeviceService(params)

	device, err := devices.Create(ctx, person.ID, &entity.Device{
		DeviceTypeID: seedType(t, params, "device_types"),
		SerialNumber: "ESP32-0003",
		Name:         "Motion sensor",
	})
	require.NoError(t, err)

	require.NoError(t, NewCaredPersonService(params).Delete(ctx, person.ID))

	_, err = devices.GetByID(ctx, device.ID)
	assert.True(t, domainerrors.IsNotFound(err))

	listed, err := devices.ListByOwner(ctx, person.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
