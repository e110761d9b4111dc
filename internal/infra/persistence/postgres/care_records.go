package postgres

import (
	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
	"careadmin/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewCaregiverAssignmentRepository is the constructor for the caregiver assignments repository.
func NewCaregiverAssignmentRepository(db *gorm.DB) repository.OwnedRepository[entity.CaregiverAssignment] {
	return &ownedRepository[entity.CaregiverAssignment, model.CaregiverAssignmentModel]{
		db:    db,
		label: "caregiver assignment",
		toModel: func(a *entity.CaregiverAssignment) *model.CaregiverAssignmentModel {
			return &model.CaregiverAssignmentModel{
				OwnedColumns:              fromOwnedBase(&a.OwnedBase),
				CaregiverAssignmentTypeID: a.CaregiverAssignmentTypeID,
				CaregiverID:               a.CaregiverID,
				IsPrimary:                 a.IsPrimary,
				StartDate:                 a.StartDate,
				EndDate:                   a.EndDate,
				Schedule:                  a.Schedule,
				Notes:                     a.Notes,
			}
		},
		toDomain: func(m *model.CaregiverAssignmentModel) *entity.CaregiverAssignment {
			return &entity.CaregiverAssignment{
				OwnedBase:                 toOwnedBase(&m.OwnedColumns),
				CaregiverAssignmentTypeID: m.CaregiverAssignmentTypeID,
				CaregiverID:               m.CaregiverID,
				IsPrimary:                 m.IsPrimary,
				StartDate:                 m.StartDate,
				EndDate:                   m.EndDate,
				Schedule:                  m.Schedule,
				Notes:                     m.Notes,
			}
		},
	}
}

// NewShiftObservationRepository is the constructor for the shift observations repository.
func NewShiftObservationRepository(db *gorm.DB) repository.OwnedRepository[entity.ShiftObservation] {
	return &ownedRepository[entity.ShiftObservation, model.ShiftObservationModel]{
		db:    db,
		label: "shift observation",
		toModel: func(o *entity.ShiftObservation) *model.ShiftObservationModel {
			return &model.ShiftObservationModel{
				OwnedColumns:           fromOwnedBase(&o.OwnedBase),
				ShiftObservationTypeID: o.ShiftObservationTypeID,
				CaregiverID:            o.CaregiverID,
				ShiftStart:             o.ShiftStart,
				ShiftEnd:               o.ShiftEnd,
				PhysicalCondition:      o.PhysicalCondition,
				MentalState:            o.MentalState,
				PainLevel:              o.PainLevel,
				IncidentsOccurred:      o.IncidentsOccurred,
				IncidentDetails:        o.IncidentDetails,
				HandoverNotes:          o.HandoverNotes,
				Status:                 o.Status,
			}
		},
		toDomain: func(m *model.ShiftObservationModel) *entity.ShiftObservation {
			return &entity.ShiftObservation{
				OwnedBase:              toOwnedBase(&m.OwnedColumns),
				ShiftObservationTypeID: m.ShiftObservationTypeID,
				CaregiverID:            m.CaregiverID,
				ShiftStart:             m.ShiftStart,
				ShiftEnd:               m.ShiftEnd,
				PhysicalCondition:      m.PhysicalCondition,
				MentalState:            m.MentalState,
				PainLevel:              m.PainLevel,
				IncidentsOccurred:      m.IncidentsOccurred,
				IncidentDetails:        m.IncidentDetails,
				HandoverNotes:          m.HandoverNotes,
				Status:                 m.Status,
			}
		},
	}
}

// NewReminderRepository is the constructor for the reminders repository.
// Weekdays are stored as a JSON array.
func NewReminderRepository(db *gorm.DB) repository.OwnedRepository[entity.Reminder] {
	return &ownedRepository[entity.Reminder, model.ReminderModel]{
		db:    db,
		label: "reminder",
		toModel: func(r *entity.Reminder) *model.ReminderModel {
			return &model.ReminderModel{
				OwnedColumns:   fromOwnedBase(&r.OwnedBase),
				ReminderTypeID: r.ReminderTypeID,
				Title:          r.Title,
				Description:    r.Description,
				ScheduledTime:  r.ScheduledTime,
				DaysOfWeek:     datatypes.NewJSONSlice(r.DaysOfWeek),
			}
		},
		toDomain: func(m *model.ReminderModel) *entity.Reminder {
			days := []int(m.DaysOfWeek)
			if days == nil {
				days = []int{}
			}

			return &entity.Reminder{
				OwnedBase:      toOwnedBase(&m.OwnedColumns),
				ReminderTypeID: m.ReminderTypeID,
				Title:          m.Title,
				Description:    m.Description,
				ScheduledTime:  m.ScheduledTime,
				DaysOfWeek:     days,
			}
		},
	}
}

// NewAlertRepository is the constructor for the alerts repository.
func NewAlertRepository(db *gorm.DB) repository.OwnedRepository[entity.Alert] {
	return &ownedRepository[entity.Alert, model.AlertModel]{
		db:    db,
		label: "alert",
		toModel: func(a *entity.Alert) *model.AlertModel {
			return &model.AlertModel{
				OwnedColumns: fromOwnedBase(&a.OwnedBase),
				AlertTypeID:  a.AlertTypeID,
				Message:      a.Message,
				Severity:     a.Severity,
				IsResolved:   a.IsResolved,
				ResolvedAt:   a.ResolvedAt,
			}
		},
		toDomain: func(m *model.AlertModel) *entity.Alert {
			return &entity.Alert{
				OwnedBase:   toOwnedBase(&m.OwnedColumns),
				AlertTypeID: m.AlertTypeID,
				Message:     m.Message,
				Severity:    m.Severity,
				IsResolved:  m.IsResolved,
				ResolvedAt:  m.ResolvedAt,
			}
		},
	}
}

// NewDeviceRepository is the constructor for the devices repository.
func NewDeviceRepository(db *gorm.DB) repository.OwnedRepository[entity.Device] {
	return &ownedRepository[entity.Device, model.DeviceModel]{
		db:    db,
		label: "device",
		toModel: func(d *entity.Device) *model.DeviceModel {
			return &model.DeviceModel{
				OwnedColumns:  fromOwnedBase(&d.OwnedBase),
				DeviceTypeID:  d.DeviceTypeID,
				SerialNumber:  d.SerialNumber,
				Name:          d.Name,
				Location:      d.Location,
				Status:        d.Status,
				LastHeartbeat: d.LastHeartbeat,
			}
		},
		toDomain: func(m *model.DeviceModel) *entity.Device {
			return &entity.Device{
				OwnedBase:     toOwnedBase(&m.OwnedColumns),
				DeviceTypeID:  m.DeviceTypeID,
				SerialNumber:  m.SerialNumber,
				Name:          m.Name,
				Location:      m.Location,
				Status:        m.Status,
				LastHeartbeat: m.LastHeartbeat,
			}
		},
	}
}
