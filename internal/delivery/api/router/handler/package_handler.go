package handler

import (
	"net/http"

	"careadmin/internal/delivery/api/response"
	"careadmin/internal/domain/entity"
	"careadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PackageHandler serves /packages.
type PackageHandler struct {
	packageUC usecase.PackageUsecase
}

// NewPackageHandler is the constructor for PackageHandler
func NewPackageHandler(packageUC usecase.PackageUsecase) *PackageHandler {
	return &PackageHandler{packageUC: packageUC}
}

func (h *PackageHandler) Create(c echo.Context) error {
	var pkg entity.CarePackage
	if err := bind(c, &pkg); err != nil {
		return err
	}

	created, err := h.packageUC.Create(c.Request().Context(), &pkg)
	if err != nil {
		return err
	}

	return response.Created(c, created)
}

// List handles GET /packages?package_type=.
func (h *PackageHandler) List(c echo.Context) error {
	packages, err := h.packageUC.ListActive(c.Request().Context(), c.QueryParam("package_type"))
	if err != nil {
		return err
	}

	return response.OK(c, packages)
}

func (h *PackageHandler) Get(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	pkg, err := h.packageUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, pkg)
}

func (h *PackageHandler) Delete(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.packageUC.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Recommend handles POST /packages/recommend.
func (h *PackageHandler) Recommend(c echo.Context) error {
	var req entity.PackageRecommendationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	recommendation, err := h.packageUC.Recommend(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.OK(c, recommendation)
}
