package handler

import (
	"net/http"

	"careadmin/internal/delivery/api/response"
	"careadmin/internal/domain/entity"
	"careadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CaredPersonHandler serves /cared-persons.
type CaredPersonHandler struct {
	caredPersonUC usecase.CaredPersonUsecase
}

// NewCaredPersonHandler is the constructor for CaredPersonHandler
func NewCaredPersonHandler(caredPersonUC usecase.CaredPersonUsecase) *CaredPersonHandler {
	return &CaredPersonHandler{caredPersonUC: caredPersonUC}
}

func (h *CaredPersonHandler) Create(c echo.Context) error {
	var person entity.CaredPerson
	if err := bind(c, &person); err != nil {
		return err
	}

	created, err := h.caredPersonUC.Create(c.Request().Context(), &person)
	if err != nil {
		return err
	}

	return response.Created(c, created)
}

func (h *CaredPersonHandler) List(c echo.Context) error {
	skip, limit, err := paging(c)
	if err != nil {
		return err
	}

	persons, err := h.caredPersonUC.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}

	return response.Page(c, persons, skip, limit)
}

func (h *CaredPersonHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	person, err := h.caredPersonUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, person)
}

func (h *CaredPersonHandler) Update(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var patch entity.CaredPersonPatch
	if err := bind(c, &patch); err != nil {
		return err
	}

	person, err := h.caredPersonUC.Update(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, person)
}

// Delete deactivates the person; ?purge=true deletes it with every owned record.
func (h *CaredPersonHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	purge, err := boolQuery(c, "purge")
	if err != nil {
		return err
	}

	if purge {
		err = h.caredPersonUC.Delete(c.Request().Context(), id)
	} else {
		err = h.caredPersonUC.Deactivate(c.Request().Context(), id)
	}
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
