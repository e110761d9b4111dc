// Package router registers the admin API routes.
package router

import (
	"careadmin/internal/delivery/api/middleware"
	"careadmin/internal/delivery/api/router/handler"
	"careadmin/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler     *handler.CatalogHandler
	CaredPersonHandler *handler.CaredPersonHandler
	PackageHandler     *handler.PackageHandler
	AuditHandler       *handler.AuditHandler
	OwnedHandlers      []handler.OwnedRoutes `group:"owned_routes"`
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler     *handler.CatalogHandler
	caredPersonHandler *handler.CaredPersonHandler
	packageHandler     *handler.PackageHandler
	auditHandler       *handler.AuditHandler
	ownedHandlers      []handler.OwnedRoutes
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:     params.CatalogHandler,
		caredPersonHandler: params.CaredPersonHandler,
		packageHandler:     params.PackageHandler,
		auditHandler:       params.AuditHandler,
		ownedHandlers:      params.OwnedHandlers,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Catalog writes need the admin role
	catalogs := apiV1.Group("/catalogs", r.authMiddleware.RequireRoleForWrites(entity.RoleAdmin))
	{
		catalogs.GET("", r.catalogHandler.ListKinds)
		catalogs.POST("/seed", r.catalogHandler.SeedAll)
		catalogs.POST("/:kind", r.catalogHandler.Create)
		catalogs.GET("/:kind", r.catalogHandler.List)
		catalogs.POST("/:kind/seed", r.catalogHandler.Seed)
		catalogs.GET("/:kind/:id", r.catalogHandler.Get)
		catalogs.PATCH("/:kind/:id", r.catalogHandler.Update)
		catalogs.PUT("/:kind/:id", r.catalogHandler.Update)
		catalogs.DELETE("/:kind/:id", r.catalogHandler.Delete)
	}

	persons := apiV1.Group("/cared-persons")
	{
		persons.POST("", r.caredPersonHandler.Create)
		persons.GET("", r.caredPersonHandler.List)
		persons.GET("/:id", r.caredPersonHandler.Get)
		persons.PATCH("/:id", r.caredPersonHandler.Update)
		persons.DELETE("/:id", r.caredPersonHandler.Delete)
	}

	for _, owned := range r.ownedHandlers {
		persons.POST("/:id/"+owned.Name(), owned.Create)
		persons.GET("/:id/"+owned.Name(), owned.ListByOwner)

		records := apiV1.Group("/" + owned.Name())
		records.GET("/:id", owned.Get)
		records.PATCH("/:id", owned.Update)
		records.DELETE("/:id", owned.Delete)
	}

	packages := apiV1.Group("/packages")
	{
		packages.GET("", r.packageHandler.List)
		packages.GET("/:id", r.packageHandler.Get)
		packages.POST("/recommend", r.packageHandler.Recommend)

		requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)
		packages.POST("", r.packageHandler.Create, requireAdmin)
		packages.DELETE("/:id", r.packageHandler.Delete, requireAdmin)
	}

	apiV1.GET("/audit-logs", r.auditHandler.List)
}
