package handler

import (
	"net/http"

	"careadmin/internal/delivery/api/response"
	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OwnedHandler serves one owned record type: creation and listing below
// /cared-persons/:id, reads and writes at /<records>/:id.
type OwnedHandler[E any, P entity.OwnedPatch[E]] struct {
	name    string
	ownedUC usecase.OwnedUsecase[E, P]
}

// NewOwnedHandler returns a handler for the records mounted under name.
func NewOwnedHandler[E any, P entity.OwnedPatch[E]](name string, ownedUC usecase.OwnedUsecase[E, P]) *OwnedHandler[E, P] {
	return &OwnedHandler[E, P]{name: name, ownedUC: ownedUC}
}

// Name is the path segment the records are mounted under.
func (h *OwnedHandler[E, P]) Name() string {
	return h.name
}

// Create handles POST /cared-persons/:id/<records>.
func (h *OwnedHandler[E, P]) Create(c echo.Context) error {
	ownerID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	record := new(E)
	if err := decode(c, record); err != nil {
		return err
	}

	created, err := h.ownedUC.Create(c.Request().Context(), ownerID, record)
	if err != nil {
		return err
	}

	return response.Created(c, created)
}

// ListByOwner handles GET /cared-persons/:id/<records>.
func (h *OwnedHandler[E, P]) ListByOwner(c echo.Context) error {
	ownerID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	records, err := h.ownedUC.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return response.OK(c, records)
}

func (h *OwnedHandler[E, P]) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	record, err := h.ownedUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, record)
}

func (h *OwnedHandler[E, P]) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var patch P
	if err := bind(c, &patch); err != nil {
		return err
	}

	record, err := h.ownedUC.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, record)
}

// Delete answers 204 the first time and 404 once the record is inactive.
func (h *OwnedHandler[E, P]) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.ownedUC.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrRecordNotFound.WithDetails(h.name + " " + id.String())
	}

	return c.NoContent(http.StatusNoContent)
}

// OwnedRoutes is the route set of one owned record type.
type OwnedRoutes interface {
	Name() string
	Create(c echo.Context) error
	ListByOwner(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

func NewAllergyHandler(uc usecase.AllergyUsecase) OwnedRoutes {
	return NewOwnedHandler("allergies", uc)
}

func NewMedicationHandler(uc usecase.MedicationUsecase) OwnedRoutes {
	return NewOwnedHandler("medications", uc)
}

func NewMedicalConditionHandler(uc usecase.MedicalConditionUsecase) OwnedRoutes {
	return NewOwnedHandler("medical-conditions", uc)
}

func NewVitalSignHandler(uc usecase.VitalSignUsecase) OwnedRoutes {
	return NewOwnedHandler("vital-signs", uc)
}

func NewActivityHandler(uc usecase.ActivityUsecase) OwnedRoutes {
	return NewOwnedHandler("activities", uc)
}

func NewActivityParticipationHandler(uc usecase.ActivityParticipationUsecase) OwnedRoutes {
	return NewOwnedHandler("activity-participations", uc)
}

func NewCaregiverAssignmentHandler(uc usecase.CaregiverAssignmentUsecase) OwnedRoutes {
	return NewOwnedHandler("caregiver-assignments", uc)
}

func NewShiftObservationHandler(uc usecase.ShiftObservationUsecase) OwnedRoutes {
	return NewOwnedHandler("shift-observations", uc)
}

func NewReminderHandler(uc usecase.ReminderUsecase) OwnedRoutes {
	return NewOwnedHandler("reminders", uc)
}

func NewAlertHandler(uc usecase.AlertUsecase) OwnedRoutes {
	return NewOwnedHandler("alerts", uc)
}

func NewDeviceHandler(uc usecase.DeviceUsecase) OwnedRoutes {
	return NewOwnedHandler("devices", uc)
}
