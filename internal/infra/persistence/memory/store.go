// Package memory is an in-process persistence driver. It mirrors the
// PostgreSQL schema rules (unique keys, foreign keys, cascades) so use cases
// behave the same against either driver.
package memory

import (
	"maps"
	"slices"
	"time"

	"careadmin/internal/domain/entity"

	"github.com/google/uuid"
)

type catalogTable struct {
	rows   map[int64]*entity.CatalogEntry
	nextID int64
}

func (t *catalogTable) clone() *catalogTable {
	rows := make(map[int64]*entity.CatalogEntry, len(t.rows))
	for id, row := range t.rows {
		copied := *row
		rows[id] = &copied
	}

	return &catalogTable{rows: rows, nextID: t.nextID}
}

// store holds every table. It is only touched while the transaction
// manager's mutex is held.
type store struct {
	catalogs map[entity.CatalogKind]*catalogTable
	persons  map[uuid.UUID]*entity.CaredPerson
	packages map[uuid.UUID]*entity.CarePackage
	audit    map[uuid.UUID]*entity.AuditLog

	allergies      *ownedTable[entity.Allergy, *entity.Allergy]
	medications    *ownedTable[entity.Medication, *entity.Medication]
	conditions     *ownedTable[entity.MedicalCondition, *entity.MedicalCondition]
	vitalSigns     *ownedTable[entity.VitalSign, *entity.VitalSign]
	activities     *ownedTable[entity.Activity, *entity.Activity]
	participations *ownedTable[entity.ActivityParticipation, *entity.ActivityParticipation]

	caregiverAssignments *ownedTable[entity.CaregiverAssignment, *entity.CaregiverAssignment]
	shiftObservations    *ownedTable[entity.ShiftObservation, *entity.ShiftObservation]
	reminders            *ownedTable[entity.Reminder, *entity.Reminder]
	alerts               *ownedTable[entity.Alert, *entity.Alert]
	devices              *ownedTable[entity.Device, *entity.Device]

	now func() time.Time
}

func newStore() *store {
	s := &store{
		catalogs: make(map[entity.CatalogKind]*catalogTable),
		persons:  make(map[uuid.UUID]*entity.CaredPerson),
		packages: make(map[uuid.UUID]*entity.CarePackage),
		audit:    make(map[uuid.UUID]*entity.AuditLog),

		allergies:      newOwnedTable[entity.Allergy]("allergies", nil),
		medications:    newOwnedTable[entity.Medication]("medications", nil),
		conditions:     newOwnedTable[entity.MedicalCondition]("medical_conditions", nil),
		vitalSigns:     newOwnedTable[entity.VitalSign]("vital_signs", nil),
		activities:     newOwnedTable[entity.Activity]("activities", checkActivityRefs),
		participations: newOwnedTable[entity.ActivityParticipation]("activity_participations", checkParticipationRefs),

		caregiverAssignments: newCatalogOwnedTable[entity.CaregiverAssignment]("caregiver_assignments", entity.CatalogCaregiverAssignmentType,
			func(a *entity.CaregiverAssignment) int64 { return a.CaregiverAssignmentTypeID }),
		shiftObservations: newCatalogOwnedTable[entity.ShiftObservation]("shift_observations", entity.CatalogShiftObservationTypes,
			func(o *entity.ShiftObservation) int64 { return o.ShiftObservationTypeID }),
		reminders: newCatalogOwnedTable[entity.Reminder]("reminders", entity.CatalogReminderTypes,
			func(r *entity.Reminder) int64 { return r.ReminderTypeID }),
		alerts: newCatalogOwnedTable[entity.Alert]("alerts", entity.CatalogAlertTypes,
			func(a *entity.Alert) int64 { return a.AlertTypeID }),
		devices: newCatalogOwnedTable[entity.Device]("devices", entity.CatalogDeviceTypes,
			func(d *entity.Device) int64 { return d.DeviceTypeID }),

		now: time.Now,
	}
	for _, spec := range entity.CatalogSpecs() {
		s.catalogs[spec.Kind] = &catalogTable{rows: make(map[int64]*entity.CatalogEntry)}
	}

	return s
}

// snapshot deep-copies every table so a failed transaction can be undone.
func (s *store) snapshot() *store {
	cp := &store{
		catalogs: make(map[entity.CatalogKind]*catalogTable, len(s.catalogs)),
		persons:  make(map[uuid.UUID]*entity.CaredPerson, len(s.persons)),
		packages: make(map[uuid.UUID]*entity.CarePackage, len(s.packages)),
		audit:    maps.Clone(s.audit),

		allergies:      s.allergies.clone(),
		medications:    s.medications.clone(),
		conditions:     s.conditions.clone(),
		vitalSigns:     s.vitalSigns.clone(),
		activities:     s.activities.clone(),
		participations: s.participations.clone(),

		caregiverAssignments: s.caregiverAssignments.clone(),
		shiftObservations:    s.shiftObservations.clone(),
		reminders:            s.reminders.clone(),
		alerts:               s.alerts.clone(),
		devices:              s.devices.clone(),

		now: s.now,
	}
	for kind, table := range s.catalogs {
		cp.catalogs[kind] = table.clone()
	}
	for id, person := range s.persons {
		copied := *person
		cp.persons[id] = &copied
	}
	for id, pkg := range s.packages {
		copied := *pkg
		copied.Features = slices.Clone(pkg.Features)
		cp.packages[id] = &copied
	}

	return cp
}

// deleteOwner cascades a cared person delete through every owned table.
func (s *store) deleteOwner(ownerID uuid.UUID) {
	s.allergies.deleteOwner(ownerID)
	s.medications.deleteOwner(ownerID)
	s.conditions.deleteOwner(ownerID)
	s.vitalSigns.deleteOwner(ownerID)
	s.participations.deleteOwner(ownerID)
	s.activities.deleteOwner(ownerID)
	s.caregiverAssignments.deleteOwner(ownerID)
	s.shiftObservations.deleteOwner(ownerID)
	s.reminders.deleteOwner(ownerID)
	s.alerts.deleteOwner(ownerID)
	s.devices.deleteOwner(ownerID)

	// activity_participations.activity_id cascades too.
	maps.DeleteFunc(s.participations.rows, func(_ uuid.UUID, row *entity.ActivityParticipation) bool {
		_, ok := s.activities.rows[row.ActivityID]

		return !ok
	})
}

func (s *store) catalogHas(kind entity.CatalogKind, id int64) bool {
	_, ok := s.catalogs[kind].rows[id]

	return ok
}

// catalogReferenced reports whether any row points at the catalog row.
func (s *store) catalogReferenced(kind entity.CatalogKind, id int64) bool {
	switch kind {
	case entity.CatalogCareTypes:
		for _, person := range s.persons {
			if person.CareTypeID != nil && *person.CareTypeID == id {
				return true
			}
		}
	case entity.CatalogActivityTypes:
		for _, activity := range s.activities.rows {
			if activity.ActivityTypeID == id {
				return true
			}
		}
	case entity.CatalogDifficultyLevels:
		for _, activity := range s.activities.rows {
			if activity.DifficultyLevelID != nil && *activity.DifficultyLevelID == id {
				return true
			}
		}
	case entity.CatalogCaregiverAssignmentType:
		return s.caregiverAssignments.references(id)
	case entity.CatalogShiftObservationTypes:
		return s.shiftObservations.references(id)
	case entity.CatalogReminderTypes:
		return s.reminders.references(id)
	case entity.CatalogAlertTypes:
		return s.alerts.references(id)
	case entity.CatalogDeviceTypes:
		return s.devices.references(id)
	}

	return false
}
