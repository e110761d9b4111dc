package handler

import (
	"log/slog"
	"net/http"

	"careadmin/internal/delivery/api/response"
	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/entity"
	"careadmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves every lookup table under /catalogs/:kind.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CatalogEntryRequest is the body of a catalog create.
type CatalogEntryRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	IconName    *string `json:"icon_name" validate:"omitempty,max=50"`
	ColorCode   *string `json:"color_code" validate:"omitempty,len=7,hexcolor"`
}

// SeedResult reports how many default entries a seed inserted per kind.
type SeedResult struct {
	Inserted map[entity.CatalogKind]int `json:"inserted"`
}

// ListKinds describes the registered catalogs.
func (h *CatalogHandler) ListKinds(c echo.Context) error {
	return response.OK(c, h.catalogUC.ListKinds(c.Request().Context()))
}

// Create handles POST /catalogs/:kind.
func (h *CatalogHandler) Create(c echo.Context) error {
	var req CatalogEntryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	entry, err := h.catalogUC.Create(c.Request().Context(), c.Param("kind"), &entity.CatalogEntry{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IconName:    req.IconName,
		ColorCode:   req.ColorCode,
	})
	if err != nil {
		return err
	}

	return response.Created(c, entry)
}

// List handles GET /catalogs/:kind?skip=&limit=&category=&active_only=.
func (h *CatalogHandler) List(c echo.Context) error {
	skip, limit, err := paging(c)
	if err != nil {
		return err
	}
	activeOnly, err := boolQuery(c, "active_only")
	if err != nil {
		return err
	}

	filter := entity.CatalogFilter{Skip: skip, Limit: limit, ActiveOnly: activeOnly}
	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}

	entries, err := h.catalogUC.List(c.Request().Context(), c.Param("kind"), filter)
	if err != nil {
		return err
	}

	return response.Page(c, entries, skip, limit)
}

// Get handles GET /catalogs/:kind/:id.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	entry, err := h.catalogUC.Get(c.Request().Context(), c.Param("kind"), id)
	if err != nil {
		return err
	}

	return response.OK(c, entry)
}

// Update handles PATCH and PUT /catalogs/:kind/:id. Only fields present in
// the body are changed; an explicit null clears an optional field.
func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var patch entity.CatalogPatch
	if err := bind(c, &patch); err != nil {
		return err
	}

	entry, err := h.catalogUC.Update(c.Request().Context(), c.Param("kind"), id, patch)
	if err != nil {
		return err
	}

	return response.OK(c, entry)
}

// Delete handles DELETE /catalogs/:kind/:id. ?purge=true removes the row
// instead of deactivating it.
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}
	purge, err := boolQuery(c, "purge")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	kind := c.Param("kind")
	if purge {
		err = h.catalogUC.Purge(ctx, kind, id)
	} else {
		err = h.catalogUC.Delete(ctx, kind, id)
	}
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Seed handles POST /catalogs/:kind/seed.
func (h *CatalogHandler) Seed(c echo.Context) error {
	kind := c.Param("kind")

	inserted, err := h.catalogUC.SeedDefaults(c.Request().Context(), kind)
	if err != nil {
		return err
	}

	return response.OK(c, SeedResult{Inserted: map[entity.CatalogKind]int{entity.CatalogKind(kind): inserted}})
}

// SeedAll handles POST /catalogs/seed.
func (h *CatalogHandler) SeedAll(c echo.Context) error {
	ctx := c.Request().Context()

	inserted, err := h.catalogUC.SeedAll(ctx)
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Catalogs seeded on request", slog.Int("kinds", len(inserted)))

	return response.OK(c, SeedResult{Inserted: inserted})
}
